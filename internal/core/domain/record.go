package domain

import "time"

// Record is implemented by every console record stored in a repository.
// Key returns the record's identity (id, code, ticket id, ...).
type Record interface {
	Key() string
}

// Schedule is the active window of a banner, coupon or deal. A zero End
// means open-ended.
type Schedule struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end,omitempty"`
}

// Contains reports whether t falls within the schedule.
func (s Schedule) Contains(t time.Time) bool {
	if !s.Start.IsZero() && t.Before(s.Start) {
		return false
	}
	if !s.End.IsZero() && t.After(s.End) {
		return false
	}
	return true
}

// Address is a postal address.
type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

func oneOf[S ~string](v S, set ...S) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerBlocked  CustomerStatus = "blocked"
)

func (s CustomerStatus) Valid() bool {
	return oneOf(s, CustomerActive, CustomerInactive, CustomerBlocked)
}

type CustomerSegment string

const (
	SegmentVIP     CustomerSegment = "vip"
	SegmentRegular CustomerSegment = "regular"
	SegmentNew     CustomerSegment = "new"
	SegmentAtRisk  CustomerSegment = "at_risk"
	SegmentChurned CustomerSegment = "churned"
)

type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	Status        CustomerStatus  `json:"status"`
	Segment       CustomerSegment `json:"segment"`
	Address       Address         `json:"address"`
	Orders        int64           `json:"orders"`
	TotalSpent    int64           `json:"totalSpent"`    // cents
	AvgOrderValue int64           `json:"avgOrderValue"` // cents, as reported
	LoyaltyPoints int64           `json:"loyaltyPoints"`
	Tags          []string        `json:"tags"`
	LastOrderAt   *time.Time      `json:"lastOrderAt,omitempty"`
	JoinedAt      time.Time       `json:"joinedAt"`
}

func (c Customer) Key() string { return c.ID }

var CustomerStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(CustomerActive):   {Tone: "green", Icon: "user-check"},
	string(CustomerInactive): {Tone: "gray", Icon: "user"},
	string(CustomerBlocked):  {Tone: "red", Icon: "user-x"},
})

var CustomerSegmentBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(SegmentVIP):     {Tone: "purple", Icon: "crown"},
	string(SegmentRegular): {Tone: "blue", Icon: "user"},
	string(SegmentNew):     {Tone: "green", Icon: "sparkles"},
	string(SegmentAtRisk):  {Tone: "orange", Icon: "alert-triangle"},
	string(SegmentChurned): {Tone: "red", Icon: "user-minus"},
})

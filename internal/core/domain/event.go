package domain

import (
	"time"
)

const EventStatusChanged = "status_changed"

// Event is an audit record of a change made through the console.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Kind       string    `json:"kind"` // record kind, e.g. "banners"
	RecordID   string    `json:"recordId"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestPending    RequestStatus = "pending"
	RequestResolved   RequestStatus = "resolved"
	RequestClosed     RequestStatus = "closed"
)

func (s RequestStatus) Valid() bool {
	return oneOf(s, RequestOpen, RequestInProgress, RequestPending, RequestResolved, RequestClosed)
}

// Unresolved reports whether the ticket still needs work.
func (s RequestStatus) Unresolved() bool {
	return oneOf(s, RequestOpen, RequestInProgress, RequestPending)
}

type RequestPriority string

const (
	RequestLow    RequestPriority = "low"
	RequestMedium RequestPriority = "medium"
	RequestHigh   RequestPriority = "high"
	RequestUrgent RequestPriority = "urgent"
)

type RequestCategory string

const (
	CategoryOrder     RequestCategory = "order"
	CategoryRefund    RequestCategory = "refund"
	CategoryProduct   RequestCategory = "product"
	CategoryShipping  RequestCategory = "shipping"
	CategoryAccount   RequestCategory = "account"
	CategoryTechnical RequestCategory = "technical"
)

// CustomerRequest is a support ticket.
type CustomerRequest struct {
	TicketID     string          `json:"ticketId"`
	Requester    Requester       `json:"requester"`
	Subject      string          `json:"subject"`
	Description  string          `json:"description"`
	Category     RequestCategory `json:"category"`
	Priority     RequestPriority `json:"priority"`
	Status       RequestStatus   `json:"status"`
	AssignedTo   string          `json:"assignedTo,omitempty"`
	SLA          SLA             `json:"sla"`
	Messages     []Message       `json:"messages"`
	Satisfaction *int            `json:"satisfaction,omitempty"` // 1..5
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (r CustomerRequest) Key() string { return r.TicketID }

type Requester struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SLA tracks response and resolution times in minutes against a target.
type SLA struct {
	ResponseMinutes   int64 `json:"responseMinutes"`
	ResolutionMinutes int64 `json:"resolutionMinutes"`
	TargetMinutes     int64 `json:"targetMinutes"`
	Breached          bool  `json:"breached"`
}

type Message struct {
	Author   string    `json:"author"`
	Body     string    `json:"body"`
	At       time.Time `json:"at"`
	Internal bool      `json:"internal"`
}

var RequestStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(RequestOpen):       {Tone: "blue", Icon: "inbox"},
	string(RequestInProgress): {Tone: "yellow", Icon: "loader"},
	string(RequestPending):    {Tone: "orange", Icon: "clock"},
	string(RequestResolved):   {Tone: "green", Icon: "check"},
	string(RequestClosed):     {Tone: "gray", Icon: "archive"},
})

var RequestPriorityBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(RequestLow):    {Tone: "gray", Icon: "arrow-down"},
	string(RequestMedium): {Tone: "blue", Icon: "minus"},
	string(RequestHigh):   {Tone: "orange", Icon: "arrow-up"},
	string(RequestUrgent): {Tone: "red", Icon: "alert-octagon"},
})

package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "pending"
	DeliveryPickedUp       DeliveryStatus = "picked_up"
	DeliveryInTransit      DeliveryStatus = "in_transit"
	DeliveryOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
	DeliveryFailed         DeliveryStatus = "failed"
	DeliveryReturned       DeliveryStatus = "returned"
)

func (s DeliveryStatus) Valid() bool {
	return oneOf(s, DeliveryPending, DeliveryPickedUp, DeliveryInTransit,
		DeliveryOutForDelivery, DeliveryDelivered, DeliveryFailed, DeliveryReturned)
}

// Moving reports whether the parcel has left the warehouse but is not
// yet delivered.
func (s DeliveryStatus) Moving() bool {
	return oneOf(s, DeliveryPickedUp, DeliveryInTransit, DeliveryOutForDelivery)
}

type DeliveryPriority string

const (
	PriorityStandard DeliveryPriority = "standard"
	PriorityExpress  DeliveryPriority = "express"
	PrioritySameDay  DeliveryPriority = "same_day"
)

type Delivery struct {
	TrackingNumber string           `json:"trackingNumber"`
	OrderID        string           `json:"orderId"`
	Recipient      Recipient        `json:"recipient"`
	Carrier        string           `json:"carrier"`
	Driver         string           `json:"driver,omitempty"`
	Status         DeliveryStatus   `json:"status"`
	Priority       DeliveryPriority `json:"priority"`
	Cost           int64            `json:"cost"`
	DistanceKm     float64          `json:"distanceKm"`
	Attempts       int              `json:"attempts"`
	EstimatedAt    time.Time        `json:"estimatedAt"`
	DeliveredAt    *time.Time       `json:"deliveredAt,omitempty"`
	Timeline       []DeliveryEvent  `json:"timeline"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func (d Delivery) Key() string { return d.TrackingNumber }

// OnTime reports whether a delivered parcel arrived no later than its
// estimate.
func (d Delivery) OnTime() bool {
	return d.Status == DeliveryDelivered && d.DeliveredAt != nil && !d.DeliveredAt.After(d.EstimatedAt)
}

type Recipient struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type DeliveryEvent struct {
	Status   DeliveryStatus `json:"status"`
	At       time.Time      `json:"at"`
	Location string         `json:"location,omitempty"`
	Note     string         `json:"note,omitempty"`
}

var DeliveryStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(DeliveryPending):        {Tone: "yellow", Icon: "clock"},
	string(DeliveryPickedUp):       {Tone: "blue", Icon: "package"},
	string(DeliveryInTransit):      {Tone: "blue", Icon: "truck"},
	string(DeliveryOutForDelivery): {Tone: "purple", Icon: "navigation"},
	string(DeliveryDelivered):      {Tone: "green", Icon: "check-circle"},
	string(DeliveryFailed):         {Tone: "red", Icon: "x-circle"},
	string(DeliveryReturned):       {Tone: "orange", Icon: "rotate-ccw"},
})

var DeliveryPriorityBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(PriorityStandard): {Tone: "gray"},
	string(PriorityExpress):  {Tone: "orange", Icon: "zap"},
	string(PrioritySameDay):  {Tone: "red", Icon: "flame"},
})

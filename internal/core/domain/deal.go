package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type DealStatus string

const (
	DealActive    DealStatus = "active"
	DealScheduled DealStatus = "scheduled"
	DealPaused    DealStatus = "paused"
	DealEnded     DealStatus = "ended"
	DealDraft     DealStatus = "draft"
)

func (s DealStatus) Valid() bool {
	return oneOf(s, DealActive, DealScheduled, DealPaused, DealEnded, DealDraft)
}

type DealType string

const (
	DealFlashSale DealType = "flash_sale"
	DealDaily     DealType = "daily_deal"
	DealBundle    DealType = "bundle"
	DealClearance DealType = "clearance"
	DealSeasonal  DealType = "seasonal"
)

// Deal is a time-boxed promotion over one or more products.
type Deal struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Type            DealType        `json:"type"`
	Status          DealStatus      `json:"status"`
	DiscountPercent float64         `json:"discountPercent"`
	Products        []DealProduct   `json:"products"`
	Schedule        Schedule        `json:"schedule"`
	Performance     DealPerformance `json:"performance"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (d Deal) Key() string { return d.ID }

type DealProduct struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	OriginalPrice int64  `json:"originalPrice"`
	DealPrice     int64  `json:"dealPrice"`
}

// DealPerformance holds reported analytics. ConversionRate and ROI are
// percentages stored as reported.
type DealPerformance struct {
	Views          int64   `json:"views"`
	Orders         int64   `json:"orders"`
	Revenue        int64   `json:"revenue"`
	Spend          int64   `json:"spend"`
	ConversionRate float64 `json:"conversionRate"`
	ROI            float64 `json:"roi"`
}

var DealStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(DealActive):    {Tone: "green", Icon: "zap"},
	string(DealScheduled): {Tone: "blue", Icon: "calendar"},
	string(DealPaused):    {Tone: "yellow", Icon: "pause"},
	string(DealEnded):     {Tone: "gray", Icon: "flag"},
	string(DealDraft):     {Tone: "gray", Icon: "edit"},
})

var DealTypeBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(DealFlashSale): {Tone: "red", Icon: "zap"},
	string(DealDaily):     {Tone: "blue", Icon: "sun"},
	string(DealBundle):    {Tone: "purple", Icon: "layers"},
	string(DealClearance): {Tone: "orange", Icon: "tag"},
	string(DealSeasonal):  {Tone: "teal", Icon: "leaf"},
})

package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type BannerStatus string

const (
	BannerActive    BannerStatus = "active"
	BannerInactive  BannerStatus = "inactive"
	BannerScheduled BannerStatus = "scheduled"
	BannerExpired   BannerStatus = "expired"
	BannerDraft     BannerStatus = "draft"
)

func (s BannerStatus) Valid() bool {
	return oneOf(s, BannerActive, BannerInactive, BannerScheduled, BannerExpired, BannerDraft)
}

type BannerPosition string

const (
	PositionHero     BannerPosition = "hero"
	PositionSidebar  BannerPosition = "sidebar"
	PositionFooter   BannerPosition = "footer"
	PositionPopup    BannerPosition = "popup"
	PositionCategory BannerPosition = "category"
)

type BannerType string

const (
	BannerPromotional   BannerType = "promotional"
	BannerInformational BannerType = "informational"
	BannerSeasonal      BannerType = "seasonal"
	BannerProduct       BannerType = "product"
)

// Banner is a merchandising banner placed on the storefront.
type Banner struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	LinkURL     string          `json:"linkUrl"`
	Position    BannerPosition  `json:"position"`
	Type        BannerType      `json:"type"`
	Status      BannerStatus    `json:"status"`
	Priority    int             `json:"priority"`
	Schedule    Schedule        `json:"schedule"`
	Targeting   BannerTargeting `json:"targeting"`
	Performance AdPerformance   `json:"performance"`
	Tags        []string        `json:"tags"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (b Banner) Key() string { return b.ID }

// BannerTargeting describes who should see a banner.
type BannerTargeting struct {
	Audience  string   `json:"audience"`
	Devices   []string `json:"devices"`
	Locations []string `json:"locations"`
}

// AdPerformance is the analytics block of a banner. CTR is stored as
// reported and is not recomputed from clicks and impressions.
type AdPerformance struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Conversions int64   `json:"conversions"`
	Revenue     int64   `json:"revenue"` // cents
}

var BannerStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(BannerActive):    {Tone: "green", Icon: "play"},
	string(BannerInactive):  {Tone: "gray", Icon: "pause"},
	string(BannerScheduled): {Tone: "blue", Icon: "calendar"},
	string(BannerExpired):   {Tone: "red", Icon: "clock"},
	string(BannerDraft):     {Tone: "yellow", Icon: "edit"},
})

var BannerTypeBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(BannerPromotional):   {Tone: "purple", Icon: "megaphone"},
	string(BannerInformational): {Tone: "blue", Icon: "info"},
	string(BannerSeasonal):      {Tone: "orange", Icon: "sun"},
	string(BannerProduct):       {Tone: "teal", Icon: "package"},
})

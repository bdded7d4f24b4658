package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type VendorStatus string

const (
	VendorActive    VendorStatus = "active"
	VendorPending   VendorStatus = "pending"
	VendorSuspended VendorStatus = "suspended"
	VendorRejected  VendorStatus = "rejected"
)

func (s VendorStatus) Valid() bool {
	return oneOf(s, VendorActive, VendorPending, VendorSuspended, VendorRejected)
}

type VendorTier string

const (
	TierPlatinum VendorTier = "platinum"
	TierGold     VendorTier = "gold"
	TierSilver   VendorTier = "silver"
	TierBronze   VendorTier = "bronze"
)

// KYCStatus is the state of a vendor's identity verification.
type KYCStatus string

const (
	KYCVerified     KYCStatus = "verified"
	KYCPending      KYCStatus = "pending"
	KYCRejected     KYCStatus = "rejected"
	KYCNotSubmitted KYCStatus = "not_submitted"
)

type Vendor struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	BusinessName   string           `json:"businessName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone,omitempty"`
	Status         VendorStatus     `json:"status"`
	Tier           VendorTier       `json:"tier"`
	KYCStatus      KYCStatus        `json:"kycStatus"`
	Categories     []string         `json:"categories"`
	Documents      []VendorDocument `json:"documents"`
	Address        Address          `json:"address"`
	Rating         float64          `json:"rating"` // 0 when unrated
	ProductCount   int64            `json:"productCount"`
	TotalSales     int64            `json:"totalSales"`
	CommissionRate float64          `json:"commissionRate"` // percent
	JoinedAt       time.Time        `json:"joinedAt"`
}

func (v Vendor) Key() string { return v.ID }

type VendorDocument struct {
	Type       string    `json:"type"`
	Status     KYCStatus `json:"status"`
	UploadedAt time.Time `json:"uploadedAt"`
}

var VendorStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(VendorActive):    {Tone: "green", Icon: "store"},
	string(VendorPending):   {Tone: "yellow", Icon: "hourglass"},
	string(VendorSuspended): {Tone: "orange", Icon: "pause-circle"},
	string(VendorRejected):  {Tone: "red", Icon: "ban"},
})

var KYCBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(KYCVerified):     {Tone: "green", Icon: "shield-check"},
	string(KYCPending):      {Tone: "yellow", Icon: "shield"},
	string(KYCRejected):     {Tone: "red", Icon: "shield-x"},
	string(KYCNotSubmitted): {Tone: "gray", Icon: "shield-off"},
})

var VendorTierBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(TierPlatinum): {Tone: "slate", Icon: "gem"},
	string(TierGold):     {Tone: "yellow", Icon: "award"},
	string(TierSilver):   {Tone: "gray", Icon: "award"},
	string(TierBronze):   {Tone: "orange", Icon: "award"},
})

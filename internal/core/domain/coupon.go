package domain

import (
	"time"

	"backoffice/internal/core/listing"
)

type CouponStatus string

const (
	CouponActive    CouponStatus = "active"
	CouponInactive  CouponStatus = "inactive"
	CouponExpired   CouponStatus = "expired"
	CouponScheduled CouponStatus = "scheduled"
)

func (s CouponStatus) Valid() bool {
	return oneOf(s, CouponActive, CouponInactive, CouponExpired, CouponScheduled)
}

type CouponType string

const (
	CouponPercentage   CouponType = "percentage"
	CouponFixedAmount  CouponType = "fixed_amount"
	CouponFreeShipping CouponType = "free_shipping"
	CouponBuyXGetY     CouponType = "buy_x_get_y"
)

// Coupon is a discount code. Value is a percentage for percentage
// coupons and cents for fixed amount coupons.
type Coupon struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        CouponType       `json:"type"`
	Value       int64            `json:"value"`
	Status      CouponStatus     `json:"status"`
	Conditions  CouponConditions `json:"conditions"`
	Usage       CouponUsage      `json:"usage"`
	Schedule    Schedule         `json:"schedule"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (c Coupon) Key() string { return c.Code }

// CouponConditions restricts when a coupon applies. Zero limits mean
// unlimited.
type CouponConditions struct {
	MinOrderAmount   int64    `json:"minOrderAmount"`
	MaxDiscount      int64    `json:"maxDiscount"`
	UsageLimit       int64    `json:"usageLimit"`
	PerCustomerLimit int64    `json:"perCustomerLimit"`
	Categories       []string `json:"categories"`
	FirstOrderOnly   bool     `json:"firstOrderOnly"`
}

type CouponUsage struct {
	Used     int64 `json:"used"`
	Revenue  int64 `json:"revenue"`
	Discount int64 `json:"discount"`
}

var CouponStatusBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(CouponActive):    {Tone: "green", Icon: "check"},
	string(CouponInactive):  {Tone: "gray", Icon: "pause"},
	string(CouponExpired):   {Tone: "red", Icon: "clock"},
	string(CouponScheduled): {Tone: "blue", Icon: "calendar"},
})

var CouponTypeBadges = listing.NewBadgeTable(listing.DefaultBadge, map[string]listing.Badge{
	string(CouponPercentage):   {Tone: "purple", Icon: "percent"},
	string(CouponFixedAmount):  {Tone: "green", Icon: "dollar"},
	string(CouponFreeShipping): {Tone: "blue", Icon: "truck"},
	string(CouponBuyXGetY):     {Tone: "orange", Icon: "gift"},
})

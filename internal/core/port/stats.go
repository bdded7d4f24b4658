package port

// Money amounts are cents. Rates are percentages in [0,100] unless noted.

type BannerStats struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     int64   `json:"revenue"`
	AvgCTR      float64 `json:"avgCtr"`
}

type CouponStats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	Expired        int     `json:"expired"`
	TotalUsage     int64   `json:"totalUsage"`
	Revenue        int64   `json:"revenue"`
	DiscountGiven  int64   `json:"discountGiven"`
	RedemptionRate float64 `json:"redemptionRate"`
}

type CustomerStats struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	VIP              int     `json:"vip"`
	NewThisMonth     int     `json:"newThisMonth"`
	Orders           int64   `json:"orders"`
	Revenue          int64   `json:"revenue"`
	AvgOrderValue    float64 `json:"avgOrderValue"`
	AvgLifetimeValue float64 `json:"avgLifetimeValue"`
}

type DealStats struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Scheduled     int     `json:"scheduled"`
	Views         int64   `json:"views"`
	Orders        int64   `json:"orders"`
	Revenue       int64   `json:"revenue"`
	Spend         int64   `json:"spend"`
	AvgConversion float64 `json:"avgConversion"`
	AvgROI        float64 `json:"avgRoi"`
}

type DeliveryStats struct {
	Total      int     `json:"total"`
	Delivered  int     `json:"delivered"`
	InTransit  int     `json:"inTransit"`
	Failed     int     `json:"failed"`
	Returned   int     `json:"returned"`
	OnTimeRate float64 `json:"onTimeRate"`
	AvgCost    float64 `json:"avgCost"`
}

type RequestStats struct {
	Total              int     `json:"total"`
	Open               int     `json:"open"`
	Resolved           int     `json:"resolved"`
	Urgent             int     `json:"urgent"`
	SLABreached        int     `json:"slaBreached"`
	AvgResponseMinutes float64 `json:"avgResponseMinutes"`
	AvgSatisfaction    float64 `json:"avgSatisfaction"` // 1..5 scale
}

type TransactionStats struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	Pending     int     `json:"pending"`
	Failed      int     `json:"failed"`
	Volume      int64   `json:"volume"`
	Refunded    int64   `json:"refunded"`
	Fees        int64   `json:"fees"`
	Net         int64   `json:"net"`
	SuccessRate float64 `json:"successRate"`
}

type VendorStats struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Pending     int     `json:"pending"`
	KYCVerified int     `json:"kycVerified"`
	TotalSales  int64   `json:"totalSales"`
	Commission  int64   `json:"commission"`
	AvgRating   float64 `json:"avgRating"` // 0..5 scale
}

type ProductStats struct {
	Total          int   `json:"total"`
	Active         int   `json:"active"`
	OutOfStock     int   `json:"outOfStock"`
	LowStock       int   `json:"lowStock"`
	InventoryValue int64 `json:"inventoryValue"`
	Revenue        int64 `json:"revenue"`
	UnitsSold      int64 `json:"unitsSold"`
}

// Overview gathers every page's statistics for the dashboard home.
type Overview struct {
	Banners      BannerStats      `json:"banners"`
	Coupons      CouponStats      `json:"coupons"`
	Customers    CustomerStats    `json:"customers"`
	Deals        DealStats        `json:"deals"`
	Deliveries   DeliveryStats    `json:"deliveries"`
	Products     ProductStats     `json:"products"`
	Requests     RequestStats     `json:"requests"`
	Transactions TransactionStats `json:"transactions"`
	Vendors      VendorStats      `json:"vendors"`
}

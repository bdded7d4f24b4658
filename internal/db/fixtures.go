package db

import (
	"time"

	"backoffice/internal/core/domain"
)

// Fixtures is the demo data set of the console. Dates are relative to
// the clock passed to NewFixtures so that schedules stay current.
type Fixtures struct {
	Banners      []domain.Banner
	Coupons      []domain.Coupon
	Customers    []domain.Customer
	Deals        []domain.Deal
	Deliveries   []domain.Delivery
	Products     []domain.Product
	Requests     []domain.CustomerRequest
	Transactions []domain.Transaction
	Vendors      []domain.Vendor
}

func NewFixtures(now time.Time) Fixtures {
	now = now.UTC().Truncate(time.Hour)
	day := 24 * time.Hour
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	in := func(d time.Duration) time.Time { return now.Add(d) }
	ptr := func(t time.Time) *time.Time { return &t }
	rating := func(v int) *int { return &v }

	return Fixtures{
		Banners: []domain.Banner{
			{
				ID: "BNR-001", Title: "Summer Sale", Description: "Up to 50% off summer collection",
				ImageURL: "https://cdn.example.com/banners/summer.jpg", LinkURL: "/sale/summer",
				Position: domain.PositionHero, Type: domain.BannerPromotional, Status: domain.BannerActive, Priority: 1,
				Schedule:    domain.Schedule{Start: ago(10 * day), End: in(20 * day)},
				Targeting:   domain.BannerTargeting{Audience: "all", Devices: []string{"desktop", "mobile"}, Locations: []string{"US", "CA"}},
				Performance: domain.AdPerformance{Impressions: 125000, Clicks: 4375, CTR: 3.5, Conversions: 612, Revenue: 4589000},
				Tags:        []string{"summer", "sale"}, CreatedBy: "Sarah Johnson", CreatedAt: ago(12 * day),
			},
			{
				ID: "BNR-002", Title: "Free Shipping Weekend", Description: "Free shipping on all orders over $50",
				ImageURL: "https://cdn.example.com/banners/shipping.jpg", LinkURL: "/shipping",
				Position: domain.PositionSidebar, Type: domain.BannerInformational, Status: domain.BannerScheduled, Priority: 2,
				Schedule:  domain.Schedule{Start: in(3 * day), End: in(5 * day)},
				Targeting: domain.BannerTargeting{Audience: "returning", Devices: []string{"mobile"}, Locations: []string{"US"}},
				Tags:      []string{"shipping"}, CreatedBy: "Mike Chen", CreatedAt: ago(2 * day),
			},
			{
				ID: "BNR-003", Title: "Holiday Gift Guide", Description: "Find the perfect gift for everyone",
				ImageURL: "https://cdn.example.com/banners/gifts.jpg", LinkURL: "/gifts",
				Position: domain.PositionCategory, Type: domain.BannerSeasonal, Status: domain.BannerExpired, Priority: 3,
				Schedule:    domain.Schedule{Start: ago(60 * day), End: ago(30 * day)},
				Targeting:   domain.BannerTargeting{Audience: "all", Devices: []string{"desktop", "mobile", "tablet"}},
				Performance: domain.AdPerformance{Impressions: 98000, Clicks: 2450, CTR: 2.5, Conversions: 301, Revenue: 2150000},
				Tags:        []string{"holiday", "gifts"}, CreatedBy: "Sarah Johnson", CreatedAt: ago(65 * day),
			},
			{
				ID: "BNR-004", Title: "New Arrivals: Wireless Audio", Description: "Discover the latest headphones",
				ImageURL: "https://cdn.example.com/banners/audio.jpg", LinkURL: "/c/audio",
				Position: domain.PositionPopup, Type: domain.BannerProduct, Status: domain.BannerDraft, Priority: 4,
				Tags: []string{"audio"}, CreatedBy: "Alex Rivera", CreatedAt: ago(day),
			},
			{
				ID: "BNR-005", Title: "Loyalty Program", Description: "Earn points with every purchase",
				ImageURL: "https://cdn.example.com/banners/loyalty.jpg", LinkURL: "/loyalty",
				Position: domain.PositionFooter, Type: domain.BannerInformational, Status: domain.BannerActive, Priority: 5,
				Schedule:    domain.Schedule{Start: ago(90 * day)},
				Performance: domain.AdPerformance{Impressions: 45000, Clicks: 540, CTR: 1.2, Conversions: 88, Revenue: 0},
				Tags:        []string{"loyalty"}, CreatedBy: "Mike Chen", CreatedAt: ago(91 * day),
			},
		},
		Coupons: []domain.Coupon{
			{
				Code: "SUMMER25", Name: "Summer 25%", Description: "25% off summer collection",
				Type: domain.CouponPercentage, Value: 25, Status: domain.CouponActive,
				Conditions: domain.CouponConditions{MinOrderAmount: 5000, MaxDiscount: 10000, UsageLimit: 1000, PerCustomerLimit: 1, Categories: []string{"apparel"}},
				Usage:      domain.CouponUsage{Used: 342, Revenue: 2856000, Discount: 714000},
				Schedule:   domain.Schedule{Start: ago(10 * day), End: in(20 * day)}, CreatedAt: ago(11 * day),
			},
			{
				Code: "WELCOME10", Name: "Welcome $10", Description: "$10 off your first order",
				Type: domain.CouponFixedAmount, Value: 1000, Status: domain.CouponActive,
				Conditions: domain.CouponConditions{MinOrderAmount: 3000, FirstOrderOnly: true},
				Usage:      domain.CouponUsage{Used: 1250, Revenue: 8750000, Discount: 1250000},
				Schedule:   domain.Schedule{Start: ago(365 * day)}, CreatedAt: ago(365 * day),
			},
			{
				Code: "FREESHIP", Name: "Free shipping", Description: "Free standard shipping",
				Type: domain.CouponFreeShipping, Status: domain.CouponScheduled,
				Conditions: domain.CouponConditions{UsageLimit: 500},
				Schedule:   domain.Schedule{Start: in(3 * day), End: in(5 * day)}, CreatedAt: ago(day),
			},
			{
				Code: "BOGO-SOCKS", Name: "Buy one get one socks", Description: "Second pair free",
				Type: domain.CouponBuyXGetY, Status: domain.CouponExpired,
				Conditions: domain.CouponConditions{UsageLimit: 200, Categories: []string{"accessories"}},
				Usage:      domain.CouponUsage{Used: 200, Revenue: 360000, Discount: 180000},
				Schedule:   domain.Schedule{Start: ago(50 * day), End: ago(20 * day)}, CreatedAt: ago(51 * day),
			},
		},
		Customers: []domain.Customer{
			{
				ID: "CUS-001", Name: "Emma Wilson", Email: "emma.wilson@example.com", Phone: "+1 555 0101",
				Status: domain.CustomerActive, Segment: domain.SegmentVIP,
				Address: domain.Address{Line1: "12 Oak St", City: "Seattle", Region: "WA", PostalCode: "98101", Country: "US"},
				Orders:  48, TotalSpent: 1254000, AvgOrderValue: 26125, LoyaltyPoints: 12540,
				Tags: []string{"newsletter"}, LastOrderAt: ptr(ago(2 * day)), JoinedAt: ago(800 * day),
			},
			{
				ID: "CUS-002", Name: "James Rodriguez", Email: "j.rodriguez@example.com", Phone: "+1 555 0102",
				Status: domain.CustomerActive, Segment: domain.SegmentRegular,
				Address: domain.Address{Line1: "4 Pine Ave", City: "Austin", Region: "TX", Country: "US"},
				Orders:  12, TotalSpent: 189000, AvgOrderValue: 15750, LoyaltyPoints: 1890,
				LastOrderAt: ptr(ago(20 * day)), JoinedAt: ago(300 * day),
			},
			{
				ID: "CUS-003", Name: "Aiko Tanaka", Email: "aiko.t@example.com",
				Status: domain.CustomerActive, Segment: domain.SegmentNew,
				Address: domain.Address{City: "Toronto", Country: "CA"},
				Orders:  1, TotalSpent: 4599, AvgOrderValue: 4599, LoyaltyPoints: 45,
				LastOrderAt: ptr(now), JoinedAt: now,
			},
			{
				ID: "CUS-004", Name: "Liam O'Brien", Email: "liam.obrien@example.com", Phone: "+353 1 555 0104",
				Status: domain.CustomerInactive, Segment: domain.SegmentAtRisk,
				Address: domain.Address{City: "Dublin", Country: "IE"},
				Orders:  5, TotalSpent: 42000, AvgOrderValue: 8400,
				LastOrderAt: ptr(ago(150 * day)), JoinedAt: ago(500 * day),
			},
			{
				ID: "CUS-005", Name: "Fraud Test", Email: "blocked@example.com",
				Status: domain.CustomerBlocked, Segment: domain.SegmentChurned,
				Tags: []string{"chargeback"}, JoinedAt: ago(200 * day),
			},
		},
		Deals: []domain.Deal{
			{
				ID: "DEAL-001", Title: "Flash Sale: Headphones", Description: "48 hours only, premium audio",
				Type: domain.DealFlashSale, Status: domain.DealActive, DiscountPercent: 40,
				Products:    []domain.DealProduct{{ProductID: "PRD-001", Name: "Wireless Headphones Pro", OriginalPrice: 19999, DealPrice: 11999}},
				Schedule:    domain.Schedule{Start: ago(day), End: in(day)},
				Performance: domain.DealPerformance{Views: 18400, Orders: 920, Revenue: 11039080, Spend: 1500000, ConversionRate: 5, ROI: 635.9},
				CreatedAt:   ago(3 * day),
			},
			{
				ID: "DEAL-002", Title: "Back to School Bundle", Description: "Backpack, bottle and notebook set",
				Type: domain.DealBundle, Status: domain.DealScheduled, DiscountPercent: 20,
				Products: []domain.DealProduct{
					{ProductID: "PRD-003", Name: "Canvas Backpack", OriginalPrice: 5999, DealPrice: 4799},
					{ProductID: "PRD-004", Name: "Steel Water Bottle", OriginalPrice: 2499, DealPrice: 1999},
				},
				Schedule:  domain.Schedule{Start: in(7 * day), End: in(21 * day)},
				CreatedAt: ago(day),
			},
			{
				ID: "DEAL-003", Title: "Winter Clearance", Description: "Last season coats and boots",
				Type: domain.DealClearance, Status: domain.DealEnded, DiscountPercent: 60,
				Schedule:    domain.Schedule{Start: ago(120 * day), End: ago(90 * day)},
				Performance: domain.DealPerformance{Views: 32000, Orders: 1100, Revenue: 4400000, Spend: 800000, ConversionRate: 3.4, ROI: 450},
				CreatedAt:   ago(125 * day),
			},
			{
				ID: "DEAL-004", Title: "Daily Deal: Smart Lamp", Description: "Today's pick for the home",
				Type: domain.DealDaily, Status: domain.DealPaused, DiscountPercent: 15,
				Products:    []domain.DealProduct{{ProductID: "PRD-005", Name: "Smart Desk Lamp", OriginalPrice: 4999, DealPrice: 4249}},
				Schedule:    domain.Schedule{Start: ago(day), End: now},
				Performance: domain.DealPerformance{Views: 2100, Orders: 35, Revenue: 148715, Spend: 50000, ConversionRate: 1.7, ROI: 197.4},
				CreatedAt:   ago(2 * day),
			},
		},
		Deliveries: []domain.Delivery{
			{
				TrackingNumber: "TRK-100001", OrderID: "ORD-5001", Carrier: "UPS", Driver: "Carlos Mendez",
				Recipient: domain.Recipient{Name: "Emma Wilson", Phone: "+1 555 0101", Address: domain.Address{Line1: "12 Oak St", City: "Seattle", Country: "US"}},
				Status:    domain.DeliveryDelivered, Priority: domain.PriorityExpress, Cost: 1299, DistanceKm: 12.4, Attempts: 1,
				EstimatedAt: ago(day), DeliveredAt: ptr(ago(day + 2*time.Hour)),
				Timeline: []domain.DeliveryEvent{
					{Status: domain.DeliveryPickedUp, At: ago(2 * day), Location: "Seattle hub"},
					{Status: domain.DeliveryDelivered, At: ago(day + 2*time.Hour), Location: "Seattle"},
				},
				CreatedAt: ago(3 * day),
			},
			{
				TrackingNumber: "TRK-100002", OrderID: "ORD-5002", Carrier: "FedEx", Driver: "Nina Patel",
				Recipient: domain.Recipient{Name: "James Rodriguez", Phone: "+1 555 0102", Address: domain.Address{City: "Austin", Country: "US"}},
				Status:    domain.DeliveryInTransit, Priority: domain.PriorityStandard, Cost: 699, DistanceKm: 240, Attempts: 0,
				EstimatedAt: in(2 * day),
				Timeline:    []domain.DeliveryEvent{{Status: domain.DeliveryPickedUp, At: ago(day), Location: "Dallas hub"}},
				CreatedAt:   ago(2 * day),
			},
			{
				TrackingNumber: "TRK-100003", OrderID: "ORD-5003", Carrier: "DHL",
				Recipient: domain.Recipient{Name: "Liam O'Brien", Address: domain.Address{City: "Dublin", Country: "IE"}},
				Status:    domain.DeliveryFailed, Priority: domain.PriorityStandard, Cost: 2499, DistanceKm: 5400, Attempts: 3,
				EstimatedAt: ago(5 * day),
				Timeline:    []domain.DeliveryEvent{{Status: domain.DeliveryFailed, At: ago(4 * day), Note: "recipient not available"}},
				CreatedAt:   ago(10 * day),
			},
			{
				TrackingNumber: "TRK-100004", OrderID: "ORD-5004", Carrier: "UPS", Driver: "Carlos Mendez",
				Recipient: domain.Recipient{Name: "Aiko Tanaka", Address: domain.Address{City: "Toronto", Country: "CA"}},
				Status:    domain.DeliveryDelivered, Priority: domain.PrioritySameDay, Cost: 1999, DistanceKm: 8, Attempts: 1,
				EstimatedAt: ago(3 * day), DeliveredAt: ptr(ago(2 * day)),
				CreatedAt: ago(3 * day),
			},
			{
				TrackingNumber: "TRK-100005", OrderID: "ORD-5005", Carrier: "USPS",
				Recipient: domain.Recipient{Name: "Emma Wilson", Address: domain.Address{City: "Seattle", Country: "US"}},
				Status:    domain.DeliveryPending, Priority: domain.PriorityStandard, Cost: 499,
				EstimatedAt: in(4 * day), CreatedAt: now,
			},
		},
		Products: []domain.Product{
			{
				ID: "PRD-001", Name: "Wireless Headphones Pro", SKU: "WHP-001", Description: "Noise cancelling over-ear headphones",
				Category: "electronics", Brand: "SoundMax", Status: domain.ProductActive,
				Price: 19999, CompareAtPrice: 24999, Cost: 9000, Stock: 150,
				Variants: []domain.Variant{{SKU: "WHP-001-BLK", Name: "Black", Price: 19999, Stock: 100}, {SKU: "WHP-001-WHT", Name: "White", Price: 19999, Stock: 50}},
				Images:   []string{"https://cdn.example.com/p/whp-001.jpg"}, Tags: []string{"audio", "wireless"},
				Rating: 4.6, Sales: 1840, Revenue: 29438160, CreatedAt: ago(200 * day),
			},
			{
				ID: "PRD-002", Name: "Organic Cotton T-Shirt", SKU: "OCT-002", Description: "Soft everyday tee",
				Category: "apparel", Brand: "GreenWear", Status: domain.ProductActive,
				Price: 2999, Cost: 900, Stock: 8,
				Variants: []domain.Variant{{SKU: "OCT-002-M", Name: "M", Price: 2999, Stock: 5}, {SKU: "OCT-002-L", Name: "L", Price: 2999, Stock: 3}},
				Tags:     []string{"organic"}, Rating: 4.3, Sales: 640, Revenue: 1919360, CreatedAt: ago(150 * day),
			},
			{
				ID: "PRD-003", Name: "Canvas Backpack", SKU: "CBP-003", Description: "Water resistant 20L backpack",
				Category: "accessories", Brand: "TrailCo", Status: domain.ProductOutOfStock,
				Price: 5999, Cost: 2100, Stock: 0, Rating: 4.1, Sales: 410, Revenue: 2459590, CreatedAt: ago(120 * day),
			},
			{
				ID: "PRD-004", Name: "Steel Water Bottle", SKU: "SWB-004", Description: "Insulated 750ml bottle",
				Category: "accessories", Brand: "TrailCo", Status: domain.ProductActive,
				Price: 2499, Cost: 700, Stock: 320, Rating: 4.8, Sales: 2200, Revenue: 5497800, CreatedAt: ago(90 * day),
			},
			{
				ID: "PRD-005", Name: "Smart Desk Lamp", SKU: "SDL-005", Description: "Dimmable lamp with app control",
				Category: "home", Brand: "Lumio", Status: domain.ProductDraft,
				Price: 4999, Cost: 2000, Stock: 60, CreatedAt: ago(5 * day),
			},
		},
		Requests: []domain.CustomerRequest{
			{
				TicketID: "TKT-2001", Requester: domain.Requester{Name: "Emma Wilson", Email: "emma.wilson@example.com"},
				Subject: "Order arrived damaged", Description: "The headphone case was cracked",
				Category: domain.CategoryOrder, Priority: domain.RequestHigh, Status: domain.RequestInProgress, AssignedTo: "Support Team A",
				SLA:       domain.SLA{ResponseMinutes: 25, TargetMinutes: 240},
				Messages:  []domain.Message{{Author: "Emma Wilson", Body: "Photos attached", At: ago(day)}},
				CreatedAt: ago(day), UpdatedAt: ago(2 * time.Hour),
			},
			{
				TicketID: "TKT-2002", Requester: domain.Requester{Name: "James Rodriguez", Email: "j.rodriguez@example.com"},
				Subject: "Refund not received", Description: "Refund for order ORD-4990 still pending",
				Category: domain.CategoryRefund, Priority: domain.RequestUrgent, Status: domain.RequestOpen,
				SLA:       domain.SLA{ResponseMinutes: 300, TargetMinutes: 120, Breached: true},
				CreatedAt: ago(2 * day), UpdatedAt: ago(2 * day),
			},
			{
				TicketID: "TKT-2003", Requester: domain.Requester{Name: "Aiko Tanaka", Email: "aiko.t@example.com"},
				Subject: "How do I change my password?", Description: "Cannot find the setting",
				Category: domain.CategoryAccount, Priority: domain.RequestLow, Status: domain.RequestResolved, AssignedTo: "Support Team B",
				SLA:          domain.SLA{ResponseMinutes: 10, ResolutionMinutes: 45, TargetMinutes: 1440},
				Satisfaction: rating(5), CreatedAt: ago(6 * day), UpdatedAt: ago(6 * day),
			},
			{
				TicketID: "TKT-2004", Requester: domain.Requester{Name: "Liam O'Brien", Email: "liam.obrien@example.com"},
				Subject: "Package never arrived", Description: "Tracking says failed delivery",
				Category: domain.CategoryShipping, Priority: domain.RequestMedium, Status: domain.RequestClosed, AssignedTo: "Support Team A",
				SLA:          domain.SLA{ResponseMinutes: 60, ResolutionMinutes: 2880, TargetMinutes: 1440, Breached: true},
				Satisfaction: rating(2), CreatedAt: ago(9 * day), UpdatedAt: ago(7 * day),
			},
		},
		Transactions: []domain.Transaction{
			{
				ID: "TXN-9001", OrderID: "ORD-5001", Party: domain.Party{Name: "Emma Wilson", Email: "emma.wilson@example.com"},
				Type: domain.TxPayment, Status: domain.TxCompleted, Method: domain.MethodCreditCard,
				Amount: 21298, Fee: 647, Net: 20651, Currency: "USD", Gateway: "stripe", Reference: "ch_3Nx01", CreatedAt: ago(3 * day),
			},
			{
				ID: "TXN-9002", OrderID: "ORD-5002", Party: domain.Party{Name: "James Rodriguez", Email: "j.rodriguez@example.com"},
				Type: domain.TxPayment, Status: domain.TxPending, Method: domain.MethodPayPal,
				Amount: 5998, Fee: 0, Net: 0, Currency: "USD", Gateway: "paypal", CreatedAt: ago(2 * day),
			},
			{
				ID: "TXN-9003", OrderID: "ORD-4990", Party: domain.Party{Name: "James Rodriguez", Email: "j.rodriguez@example.com"},
				Type: domain.TxRefund, Status: domain.TxCompleted, Method: domain.MethodPayPal,
				Amount: 3499, Fee: 0, Net: -3499, Currency: "USD", Gateway: "paypal", CreatedAt: ago(day),
			},
			{
				ID: "TXN-9004", OrderID: "ORD-5003", Party: domain.Party{Name: "Liam O'Brien", Email: "liam.obrien@example.com"},
				Type: domain.TxPayment, Status: domain.TxFailed, Method: domain.MethodCreditCard,
				Amount: 8999, Currency: "EUR", Gateway: "stripe", Description: "card declined", CreatedAt: ago(10 * day),
			},
			{
				ID: "TXN-9005", Party: domain.Party{Name: "TrailCo Outfitters", Email: "payouts@trailco.example.com"},
				Type: domain.TxPayout, Status: domain.TxCompleted, Method: domain.MethodBankTransfer,
				Amount: 450000, Fee: 250, Net: 449750, Currency: "USD", Gateway: "wise", CreatedAt: ago(7 * day),
			},
			{
				ID: "TXN-9006", OrderID: "ORD-4800", Party: domain.Party{Name: "Fraud Test", Email: "blocked@example.com"},
				Type: domain.TxChargeback, Status: domain.TxDisputed, Method: domain.MethodCreditCard,
				Amount: 15999, Fee: 1500, Currency: "USD", Gateway: "stripe", CreatedAt: ago(30 * day),
			},
		},
		Vendors: []domain.Vendor{
			{
				ID: "VND-001", Name: "Olivia Park", BusinessName: "SoundMax Audio LLC", Email: "olivia@soundmax.example.com",
				Status: domain.VendorActive, Tier: domain.TierPlatinum, KYCStatus: domain.KYCVerified,
				Categories: []string{"electronics"},
				Documents: []domain.VendorDocument{
					{Type: "business_license", Status: domain.KYCVerified, UploadedAt: ago(400 * day)},
					{Type: "tax_id", Status: domain.KYCVerified, UploadedAt: ago(400 * day)},
				},
				Address: domain.Address{City: "San Jose", Country: "US"},
				Rating:  4.8, ProductCount: 42, TotalSales: 29438160, CommissionRate: 8, JoinedAt: ago(410 * day),
			},
			{
				ID: "VND-002", Name: "Ben Hughes", BusinessName: "TrailCo Outfitters", Email: "ben@trailco.example.com",
				Status: domain.VendorActive, Tier: domain.TierGold, KYCStatus: domain.KYCVerified,
				Categories: []string{"accessories", "outdoor"},
				Rating:     4.4, ProductCount: 18, TotalSales: 7957390, CommissionRate: 10, JoinedAt: ago(250 * day),
			},
			{
				ID: "VND-003", Name: "Maya Singh", BusinessName: "GreenWear Co", Email: "maya@greenwear.example.com",
				Status: domain.VendorPending, Tier: domain.TierBronze, KYCStatus: domain.KYCPending,
				Categories:   []string{"apparel"},
				Documents:    []domain.VendorDocument{{Type: "business_license", Status: domain.KYCPending, UploadedAt: ago(2 * day)}},
				ProductCount: 6, CommissionRate: 12, JoinedAt: ago(3 * day),
			},
			{
				ID: "VND-004", Name: "Tom Becker", BusinessName: "Cheap Gadgets Ltd", Email: "tom@cheapgadgets.example.com",
				Status: domain.VendorSuspended, Tier: domain.TierSilver, KYCStatus: domain.KYCRejected,
				Categories: []string{"electronics"},
				Rating:     2.1, ProductCount: 120, TotalSales: 1200000, CommissionRate: 15, JoinedAt: ago(500 * day),
			},
		},
	}
}

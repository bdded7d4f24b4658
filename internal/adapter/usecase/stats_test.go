package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
	"backoffice/internal/db"
)

func TestBannerStats(t *testing.T) {
	s := BannerStats(sampleBanners())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, int64(4000), s.Impressions)
	assert.Equal(t, int64(100), s.Clicks)
	assert.Equal(t, int64(6), s.Conversions)
	assert.Equal(t, int64(12500), s.Revenue)
	assert.InDelta(t, 2.5, s.AvgCTR, 1e-9)
}

func TestCouponStats_RedemptionOnlyCountsLimitedCoupons(t *testing.T) {
	s := CouponStats([]domain.Coupon{
		{Code: "A", Status: domain.CouponActive, Conditions: domain.CouponConditions{UsageLimit: 100},
			Usage: domain.CouponUsage{Used: 40, Revenue: 1000, Discount: 100}},
		{Code: "B", Status: domain.CouponExpired, Usage: domain.CouponUsage{Used: 500}},
		{Code: "C", Status: domain.CouponScheduled, Conditions: domain.CouponConditions{UsageLimit: 100},
			Usage: domain.CouponUsage{Used: 10}},
	})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Expired)
	assert.Equal(t, int64(550), s.TotalUsage)
	assert.Equal(t, int64(1000), s.Revenue)
	assert.Equal(t, int64(100), s.DiscountGiven)
	assert.InDelta(t, 25.0, s.RedemptionRate, 1e-9)
}

func TestCustomerStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s := CustomerStats([]domain.Customer{
		{ID: "1", Status: domain.CustomerActive, Segment: domain.SegmentVIP, Orders: 4, TotalSpent: 1000,
			JoinedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Status: domain.CustomerInactive, Segment: domain.SegmentNew,
			JoinedAt: time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)},
		{ID: "3", Status: domain.CustomerActive, Segment: domain.SegmentRegular, Orders: 6, TotalSpent: 2000,
			JoinedAt: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	}, now)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.VIP)
	assert.Equal(t, 1, s.NewThisMonth)
	assert.Equal(t, int64(10), s.Orders)
	assert.Equal(t, int64(3000), s.Revenue)
	assert.InDelta(t, 300.0, s.AvgOrderValue, 1e-9)
	assert.InDelta(t, 1000.0, s.AvgLifetimeValue, 1e-9)
}

func TestDealStats_RatesFromSums(t *testing.T) {
	s := DealStats([]domain.Deal{
		{ID: "1", Status: domain.DealActive, Performance: domain.DealPerformance{Views: 1000, Orders: 50, Revenue: 2000, Spend: 1000, ConversionRate: 99, ROI: 99}},
		{ID: "2", Status: domain.DealScheduled, Performance: domain.DealPerformance{Revenue: 1000}},
		{ID: "3", Status: domain.DealEnded},
	})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Scheduled)
	assert.InDelta(t, 5.0, s.AvgConversion, 1e-9)
	assert.InDelta(t, 200.0, s.AvgROI, 1e-9)
}

func TestDeliveryStats(t *testing.T) {
	est := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	early := est.Add(-time.Hour)
	late := est.Add(time.Hour)
	s := DeliveryStats([]domain.Delivery{
		{TrackingNumber: "1", Status: domain.DeliveryDelivered, EstimatedAt: est, DeliveredAt: &early, Cost: 100},
		{TrackingNumber: "2", Status: domain.DeliveryDelivered, EstimatedAt: est, DeliveredAt: &late, Cost: 200},
		{TrackingNumber: "3", Status: domain.DeliveryInTransit, Cost: 300},
		{TrackingNumber: "4", Status: domain.DeliveryOutForDelivery},
		{TrackingNumber: "5", Status: domain.DeliveryFailed, Cost: 400},
		{TrackingNumber: "6", Status: domain.DeliveryReturned},
		{TrackingNumber: "7", Status: domain.DeliveryPending, Cost: 200},
	})

	assert.Equal(t, 7, s.Total)
	assert.Equal(t, 2, s.Delivered)
	assert.Equal(t, 2, s.InTransit)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Returned)
	assert.InDelta(t, 50.0, s.OnTimeRate, 1e-9)
	assert.InDelta(t, 1200.0/7, s.AvgCost, 1e-9)
}

func TestRequestStats_SatisfactionOnlyRated(t *testing.T) {
	four, five := 4, 5
	s := RequestStats([]domain.CustomerRequest{
		{TicketID: "1", Status: domain.RequestOpen, Priority: domain.RequestUrgent, SLA: domain.SLA{ResponseMinutes: 30, Breached: true}},
		{TicketID: "2", Status: domain.RequestResolved, SLA: domain.SLA{ResponseMinutes: 10}, Satisfaction: &four},
		{TicketID: "3", Status: domain.RequestClosed, SLA: domain.SLA{ResponseMinutes: 20}, Satisfaction: &five},
		{TicketID: "4", Status: domain.RequestPending, Priority: domain.RequestHigh},
	})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Open)
	assert.Equal(t, 2, s.Resolved)
	assert.Equal(t, 1, s.Urgent)
	assert.Equal(t, 1, s.SLABreached)
	assert.InDelta(t, 15.0, s.AvgResponseMinutes, 1e-9)
	assert.InDelta(t, 4.5, s.AvgSatisfaction, 1e-9)
}

func TestTransactionStats(t *testing.T) {
	s := TransactionStats([]domain.Transaction{
		{ID: "1", Type: domain.TxPayment, Status: domain.TxCompleted, Amount: 1000, Fee: 30, Net: 970},
		{ID: "2", Type: domain.TxRefund, Status: domain.TxCompleted, Amount: 200, Net: -200},
		{ID: "3", Type: domain.TxPayment, Status: domain.TxPending, Amount: 500},
		{ID: "4", Type: domain.TxPayment, Status: domain.TxFailed, Amount: 300},
		{ID: "5", Type: domain.TxPayment, Status: domain.TxRefunded, Amount: 400},
	})

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, int64(1000), s.Volume)
	assert.Equal(t, int64(600), s.Refunded)
	assert.Equal(t, int64(30), s.Fees)
	assert.Equal(t, int64(770), s.Net)
	assert.InDelta(t, 40.0, s.SuccessRate, 1e-9)
}

func TestVendorStats_UnratedExcluded(t *testing.T) {
	s := VendorStats([]domain.Vendor{
		{ID: "1", Status: domain.VendorActive, KYCStatus: domain.KYCVerified, TotalSales: 10000, CommissionRate: 10, Rating: 4},
		{ID: "2", Status: domain.VendorPending, KYCStatus: domain.KYCPending, CommissionRate: 12},
		{ID: "3", Status: domain.VendorSuspended, KYCStatus: domain.KYCVerified, TotalSales: 5000, CommissionRate: 5, Rating: 5},
	})

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 2, s.KYCVerified)
	assert.Equal(t, int64(15000), s.TotalSales)
	assert.Equal(t, int64(1250), s.Commission)
	assert.InDelta(t, 4.5, s.AvgRating, 1e-9)
}

func TestProductStats_StockBuckets(t *testing.T) {
	s := ProductStats([]domain.Product{
		{ID: "1", Status: domain.ProductActive, Stock: 100, Price: 10, Revenue: 500, Sales: 50},
		{ID: "2", Status: domain.ProductActive, Stock: 5, Price: 20},
		{ID: "3", Status: domain.ProductOutOfStock, Stock: 0, Price: 30},
		{ID: "4", Status: domain.ProductDraft, Stock: 10, Price: 1},
		{ID: "5", Status: domain.ProductActive, Stock: 0, Price: 99, Revenue: 100, Sales: 3},
	}, 10)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 3, s.Active)
	assert.Equal(t, 2, s.OutOfStock)
	assert.Equal(t, 2, s.LowStock)
	assert.Equal(t, int64(1110), s.InventoryValue)
	assert.Equal(t, int64(600), s.Revenue)
	assert.Equal(t, int64(53), s.UnitsSold)
}

func TestStats_EmptySetsHaveZeroAverages(t *testing.T) {
	assert.Equal(t, port.BannerStats{}, BannerStats(nil))
	assert.Equal(t, port.CouponStats{}, CouponStats(nil))
	assert.Equal(t, port.CustomerStats{}, CustomerStats(nil, time.Now()))
	assert.Equal(t, port.DealStats{}, DealStats(nil))
	assert.Equal(t, port.DeliveryStats{}, DeliveryStats(nil))
	assert.Equal(t, port.RequestStats{}, RequestStats(nil))
	assert.Equal(t, port.TransactionStats{}, TransactionStats(nil))
	assert.Equal(t, port.VendorStats{}, VendorStats(nil))
	assert.Equal(t, port.ProductStats{}, ProductStats(nil, 10))
}

func TestMatchers(t *testing.T) {
	assert.True(t, MatchCoupon(port.CouponFilter{Search: "summ"}, domain.Coupon{Code: "SUMMER25"}))
	assert.False(t, MatchCoupon(port.CouponFilter{Type: "percentage"}, domain.Coupon{Type: domain.CouponFixedAmount}))

	assert.True(t, MatchCustomer(port.CustomerFilter{Search: "EXAMPLE.COM", Segment: "vip"},
		domain.Customer{Email: "a@example.com", Segment: domain.SegmentVIP}))

	assert.True(t, MatchDelivery(port.DeliveryFilter{Search: "trk-1", Carrier: "UPS"},
		domain.Delivery{TrackingNumber: "TRK-100", Carrier: "UPS"}))
	assert.False(t, MatchDelivery(port.DeliveryFilter{Carrier: "ups"}, domain.Delivery{Carrier: "UPS"}))

	assert.True(t, MatchRequest(port.RequestFilter{Search: "refund", Category: "refund"},
		domain.CustomerRequest{Subject: "Refund not received", Category: domain.CategoryRefund}))

	assert.True(t, MatchTransaction(port.TransactionFilter{Method: "all", Type: "payout"},
		domain.Transaction{Type: domain.TxPayout, Method: domain.MethodBankTransfer}))

	assert.True(t, MatchVendor(port.VendorFilter{KYCStatus: "verified", Tier: "gold"},
		domain.Vendor{KYCStatus: domain.KYCVerified, Tier: domain.TierGold}))

	assert.True(t, MatchDeal(port.DealFilter{Search: "flash"}, domain.Deal{Title: "Flash Sale"}))

	assert.True(t, MatchProduct(port.ProductFilter{Search: "whp", Category: "electronics"},
		domain.Product{SKU: "WHP-001", Category: "electronics"}))
}

// split returns the records kept by keep and their complement.
func split[T any](items []T, keep func(T) bool) (in, out []T) {
	in = listing.Filter(items, keep)
	out = listing.Filter(items, func(v T) bool { return !keep(v) })
	return in, out
}

func TestBannerStats_FilterAndComplementSumToFullSet(t *testing.T) {
	banners := db.NewFixtures(testNow).Banners
	filters := []port.BannerFilter{
		{Status: string(domain.BannerActive)},
		{Position: string(domain.PositionHero)},
		{Search: "sale"},
		{Type: string(domain.BannerSeasonal), Status: string(domain.BannerScheduled)},
	}
	full := BannerStats(banners)
	for _, f := range filters {
		in, out := split(banners, func(b domain.Banner) bool { return MatchBanner(f, b) })
		a, b := BannerStats(in), BannerStats(out)

		assert.Equal(t, full.Total, a.Total+b.Total, "%+v", f)
		assert.Equal(t, full.Active, a.Active+b.Active, "%+v", f)
		assert.Equal(t, full.Impressions, a.Impressions+b.Impressions, "%+v", f)
		assert.Equal(t, full.Clicks, a.Clicks+b.Clicks, "%+v", f)
		assert.Equal(t, full.Conversions, a.Conversions+b.Conversions, "%+v", f)
		assert.Equal(t, full.Revenue, a.Revenue+b.Revenue, "%+v", f)
	}
}

func TestTransactionStats_FilterAndComplementSumToFullSet(t *testing.T) {
	txs := db.NewFixtures(testNow).Transactions
	filters := []port.TransactionFilter{
		{Status: string(domain.TxCompleted)},
		{Type: string(domain.TxRefund)},
		{Method: string(domain.MethodCreditCard)},
		{Search: "TXN-900"},
	}
	full := TransactionStats(txs)
	for _, f := range filters {
		in, out := split(txs, func(tx domain.Transaction) bool { return MatchTransaction(f, tx) })
		a, b := TransactionStats(in), TransactionStats(out)

		assert.Equal(t, full.Total, a.Total+b.Total, "%+v", f)
		assert.Equal(t, full.Completed, a.Completed+b.Completed, "%+v", f)
		assert.Equal(t, full.Pending, a.Pending+b.Pending, "%+v", f)
		assert.Equal(t, full.Failed, a.Failed+b.Failed, "%+v", f)
		assert.Equal(t, full.Volume, a.Volume+b.Volume, "%+v", f)
		assert.Equal(t, full.Refunded, a.Refunded+b.Refunded, "%+v", f)
		assert.Equal(t, full.Fees, a.Fees+b.Fees, "%+v", f)
		assert.Equal(t, full.Net, a.Net+b.Net, "%+v", f)
	}
}

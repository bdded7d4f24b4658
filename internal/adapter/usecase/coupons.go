package usecase

import (
	"context"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) couponPage() page[domain.Coupon, port.CouponStats] {
	return page[domain.Coupon, port.CouponStats]{
		kind:   KindCoupons,
		repo:   u.repos.Coupons,
		reduce: CouponStats,
		badges: func(c domain.Coupon) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status": domain.CouponStatusBadges.Lookup(string(c.Status)),
				"type":   domain.CouponTypeBadges.Lookup(string(c.Type)),
			}
		},
	}
}

func MatchCoupon(f port.CouponFilter, c domain.Coupon) bool {
	return listing.MatchesSearch(f.Search, c.Code, c.Name, c.Description) &&
		listing.MatchesSelector(f.Status, string(c.Status)) &&
		listing.MatchesSelector(f.Type, string(c.Type))
}

// CouponStats reduces coupons into the page summary. The redemption rate
// only considers coupons with a usage limit.
func CouponStats(coupons []domain.Coupon) port.CouponStats {
	var (
		s             port.CouponStats
		limited, used int64
	)
	for _, c := range coupons {
		s.Total++
		switch c.Status {
		case domain.CouponActive:
			s.Active++
		case domain.CouponExpired:
			s.Expired++
		}
		s.TotalUsage += c.Usage.Used
		s.Revenue += c.Usage.Revenue
		s.DiscountGiven += c.Usage.Discount
		if c.Conditions.UsageLimit > 0 {
			limited += c.Conditions.UsageLimit
			used += c.Usage.Used
		}
	}
	s.RedemptionRate = listing.Percent(float64(used), float64(limited))
	return s
}

func (u *ConsoleUseCase) ListCoupons(ctx context.Context, f port.CouponFilter) (*port.Listing[domain.Coupon, port.CouponStats], error) {
	live := u.running(f.Live)
	return u.couponPage().list(ctx, func(c domain.Coupon) bool { return MatchCoupon(f, c) && live(c.Schedule) }, f.Page)
}

func (u *ConsoleUseCase) GetCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	return u.couponPage().get(ctx, code)
}

func (u *ConsoleUseCase) SetCouponStatus(ctx context.Context, code string, status domain.CouponStatus) (*domain.Coupon, error) {
	return setStatus(ctx, u, u.couponPage(), code, status, status.Valid(),
		func(c *domain.Coupon) *domain.CouponStatus { return &c.Status })
}

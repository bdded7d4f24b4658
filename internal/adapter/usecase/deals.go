package usecase

import (
	"context"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) dealPage() page[domain.Deal, port.DealStats] {
	return page[domain.Deal, port.DealStats]{
		kind:   KindDeals,
		repo:   u.repos.Deals,
		reduce: DealStats,
		badges: func(d domain.Deal) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status": domain.DealStatusBadges.Lookup(string(d.Status)),
				"type":   domain.DealTypeBadges.Lookup(string(d.Type)),
			}
		},
	}
}

func MatchDeal(f port.DealFilter, d domain.Deal) bool {
	return listing.MatchesSearch(f.Search, d.Title, d.Description) &&
		listing.MatchesSelector(f.Status, string(d.Status)) &&
		listing.MatchesSelector(f.Type, string(d.Type))
}

// DealStats reduces deals into the page summary. Conversion is orders
// over views and ROI is (revenue - spend) over spend, both from sums.
func DealStats(deals []domain.Deal) port.DealStats {
	var s port.DealStats
	for _, d := range deals {
		s.Total++
		switch d.Status {
		case domain.DealActive:
			s.Active++
		case domain.DealScheduled:
			s.Scheduled++
		}
		s.Views += d.Performance.Views
		s.Orders += d.Performance.Orders
		s.Revenue += d.Performance.Revenue
		s.Spend += d.Performance.Spend
	}
	s.AvgConversion = listing.Percent(float64(s.Orders), float64(s.Views))
	s.AvgROI = listing.Percent(float64(s.Revenue-s.Spend), float64(s.Spend))
	return s
}

func (u *ConsoleUseCase) ListDeals(ctx context.Context, f port.DealFilter) (*port.Listing[domain.Deal, port.DealStats], error) {
	live := u.running(f.Live)
	return u.dealPage().list(ctx, func(d domain.Deal) bool { return MatchDeal(f, d) && live(d.Schedule) }, f.Page)
}

func (u *ConsoleUseCase) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	return u.dealPage().get(ctx, id)
}

func (u *ConsoleUseCase) SetDealStatus(ctx context.Context, id string, status domain.DealStatus) (*domain.Deal, error) {
	return setStatus(ctx, u, u.dealPage(), id, status, status.Valid(),
		func(d *domain.Deal) *domain.DealStatus { return &d.Status })
}

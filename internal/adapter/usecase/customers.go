package usecase

import (
	"context"
	"time"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) customerPage() page[domain.Customer, port.CustomerStats] {
	now := u.now()
	return page[domain.Customer, port.CustomerStats]{
		kind:   KindCustomers,
		repo:   u.repos.Customers,
		reduce: func(cs []domain.Customer) port.CustomerStats { return CustomerStats(cs, now) },
		badges: func(c domain.Customer) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status":  domain.CustomerStatusBadges.Lookup(string(c.Status)),
				"segment": domain.CustomerSegmentBadges.Lookup(string(c.Segment)),
			}
		},
	}
}

func MatchCustomer(f port.CustomerFilter, c domain.Customer) bool {
	return listing.MatchesSearch(f.Search, c.Name, c.Email, c.Phone) &&
		listing.MatchesSelector(f.Status, string(c.Status)) &&
		listing.MatchesSelector(f.Segment, string(c.Segment))
}

// CustomerStats reduces customers into the page summary. NewThisMonth
// counts customers who joined in the calendar month of now.
func CustomerStats(customers []domain.Customer, now time.Time) port.CustomerStats {
	var s port.CustomerStats
	y, m, _ := now.Date()
	for _, c := range customers {
		s.Total++
		if c.Status == domain.CustomerActive {
			s.Active++
		}
		if c.Segment == domain.SegmentVIP {
			s.VIP++
		}
		if jy, jm, _ := c.JoinedAt.In(now.Location()).Date(); jy == y && jm == m {
			s.NewThisMonth++
		}
		s.Orders += c.Orders
		s.Revenue += c.TotalSpent
	}
	s.AvgOrderValue = listing.Ratio(float64(s.Revenue), float64(s.Orders))
	s.AvgLifetimeValue = listing.Ratio(float64(s.Revenue), float64(s.Total))
	return s
}

func (u *ConsoleUseCase) ListCustomers(ctx context.Context, f port.CustomerFilter) (*port.Listing[domain.Customer, port.CustomerStats], error) {
	return u.customerPage().list(ctx, func(c domain.Customer) bool { return MatchCustomer(f, c) }, f.Page)
}

func (u *ConsoleUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return u.customerPage().get(ctx, id)
}

func (u *ConsoleUseCase) SetCustomerStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error) {
	return setStatus(ctx, u, u.customerPage(), id, status, status.Valid(),
		func(c *domain.Customer) *domain.CustomerStatus { return &c.Status })
}

package usecase

import (
	"context"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) deliveryPage() page[domain.Delivery, port.DeliveryStats] {
	return page[domain.Delivery, port.DeliveryStats]{
		kind:   KindDeliveries,
		repo:   u.repos.Deliveries,
		reduce: DeliveryStats,
		badges: func(d domain.Delivery) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status":   domain.DeliveryStatusBadges.Lookup(string(d.Status)),
				"priority": domain.DeliveryPriorityBadges.Lookup(string(d.Priority)),
			}
		},
	}
}

func MatchDelivery(f port.DeliveryFilter, d domain.Delivery) bool {
	return listing.MatchesSearch(f.Search, d.TrackingNumber, d.OrderID, d.Recipient.Name, d.Driver) &&
		listing.MatchesSelector(f.Status, string(d.Status)) &&
		listing.MatchesSelector(f.Priority, string(d.Priority)) &&
		listing.MatchesSelector(f.Carrier, d.Carrier)
}

// DeliveryStats reduces deliveries into the page summary. The on-time
// rate is measured over delivered parcels only.
func DeliveryStats(deliveries []domain.Delivery) port.DeliveryStats {
	var (
		s      port.DeliveryStats
		onTime int
		cost   int64
	)
	for _, d := range deliveries {
		s.Total++
		switch {
		case d.Status == domain.DeliveryDelivered:
			s.Delivered++
			if d.OnTime() {
				onTime++
			}
		case d.Status.Moving():
			s.InTransit++
		case d.Status == domain.DeliveryFailed:
			s.Failed++
		case d.Status == domain.DeliveryReturned:
			s.Returned++
		}
		cost += d.Cost
	}
	s.OnTimeRate = listing.Percent(float64(onTime), float64(s.Delivered))
	s.AvgCost = listing.Ratio(float64(cost), float64(s.Total))
	return s
}

func (u *ConsoleUseCase) ListDeliveries(ctx context.Context, f port.DeliveryFilter) (*port.Listing[domain.Delivery, port.DeliveryStats], error) {
	return u.deliveryPage().list(ctx, func(d domain.Delivery) bool { return MatchDelivery(f, d) }, f.Page)
}

func (u *ConsoleUseCase) GetDelivery(ctx context.Context, trackingNumber string) (*domain.Delivery, error) {
	return u.deliveryPage().get(ctx, trackingNumber)
}

func (u *ConsoleUseCase) SetDeliveryStatus(ctx context.Context, trackingNumber string, status domain.DeliveryStatus) (*domain.Delivery, error) {
	return setStatus(ctx, u, u.deliveryPage(), trackingNumber, status, status.Valid(),
		func(d *domain.Delivery) *domain.DeliveryStatus { return &d.Status })
}

package usecase

import (
	"context"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) requestPage() page[domain.CustomerRequest, port.RequestStats] {
	return page[domain.CustomerRequest, port.RequestStats]{
		kind:   KindRequests,
		repo:   u.repos.Requests,
		reduce: RequestStats,
		badges: func(r domain.CustomerRequest) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status":   domain.RequestStatusBadges.Lookup(string(r.Status)),
				"priority": domain.RequestPriorityBadges.Lookup(string(r.Priority)),
			}
		},
	}
}

func MatchRequest(f port.RequestFilter, r domain.CustomerRequest) bool {
	return listing.MatchesSearch(f.Search, r.TicketID, r.Subject, r.Requester.Name, r.Requester.Email) &&
		listing.MatchesSelector(f.Status, string(r.Status)) &&
		listing.MatchesSelector(f.Priority, string(r.Priority)) &&
		listing.MatchesSelector(f.Category, string(r.Category))
}

// RequestStats reduces support tickets into the page summary. Average
// satisfaction only counts rated tickets.
func RequestStats(requests []domain.CustomerRequest) port.RequestStats {
	var (
		s                     port.RequestStats
		response              int64
		ratingSum, ratedCount int
	)
	for _, r := range requests {
		s.Total++
		switch {
		case r.Status.Unresolved():
			s.Open++
		case r.Status == domain.RequestResolved, r.Status == domain.RequestClosed:
			s.Resolved++
		}
		if r.Priority == domain.RequestUrgent {
			s.Urgent++
		}
		if r.SLA.Breached {
			s.SLABreached++
		}
		response += r.SLA.ResponseMinutes
		if r.Satisfaction != nil {
			ratingSum += *r.Satisfaction
			ratedCount++
		}
	}
	s.AvgResponseMinutes = listing.Ratio(float64(response), float64(s.Total))
	s.AvgSatisfaction = listing.Ratio(float64(ratingSum), float64(ratedCount))
	return s
}

func (u *ConsoleUseCase) ListRequests(ctx context.Context, f port.RequestFilter) (*port.Listing[domain.CustomerRequest, port.RequestStats], error) {
	return u.requestPage().list(ctx, func(r domain.CustomerRequest) bool { return MatchRequest(f, r) }, f.Page)
}

func (u *ConsoleUseCase) GetRequest(ctx context.Context, ticketID string) (*domain.CustomerRequest, error) {
	return u.requestPage().get(ctx, ticketID)
}

func (u *ConsoleUseCase) SetRequestStatus(ctx context.Context, ticketID string, status domain.RequestStatus) (*domain.CustomerRequest, error) {
	return setStatus(ctx, u, u.requestPage(), ticketID, status, status.Valid(),
		func(r *domain.CustomerRequest) *domain.RequestStatus { return &r.Status })
}

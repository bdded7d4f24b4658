package usecase

import (
	"context"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) transactionPage() page[domain.Transaction, port.TransactionStats] {
	return page[domain.Transaction, port.TransactionStats]{
		kind:   KindTransactions,
		repo:   u.repos.Transactions,
		reduce: TransactionStats,
		badges: func(t domain.Transaction) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status": domain.TransactionStatusBadges.Lookup(string(t.Status)),
				"type":   domain.TransactionTypeBadges.Lookup(string(t.Type)),
			}
		},
	}
}

func MatchTransaction(f port.TransactionFilter, t domain.Transaction) bool {
	return listing.MatchesSearch(f.Search, t.ID, t.OrderID, t.Party.Name, t.Party.Email) &&
		listing.MatchesSelector(f.Status, string(t.Status)) &&
		listing.MatchesSelector(f.Type, string(t.Type)) &&
		listing.MatchesSelector(f.Method, string(t.Method))
}

// TransactionStats reduces transactions into the page summary. Volume is
// the amount of completed payments; Refunded adds completed refunds and
// payments marked refunded.
func TransactionStats(txs []domain.Transaction) port.TransactionStats {
	var s port.TransactionStats
	for _, t := range txs {
		s.Total++
		switch t.Status {
		case domain.TxCompleted:
			s.Completed++
			switch t.Type {
			case domain.TxPayment:
				s.Volume += t.Amount
			case domain.TxRefund:
				s.Refunded += t.Amount
			}
			s.Fees += t.Fee
			s.Net += t.Net
		case domain.TxPending:
			s.Pending++
		case domain.TxFailed:
			s.Failed++
		case domain.TxRefunded:
			s.Refunded += t.Amount
		}
	}
	s.SuccessRate = listing.Percent(float64(s.Completed), float64(s.Total))
	return s
}

func (u *ConsoleUseCase) ListTransactions(ctx context.Context, f port.TransactionFilter) (*port.Listing[domain.Transaction, port.TransactionStats], error) {
	return u.transactionPage().list(ctx, func(t domain.Transaction) bool { return MatchTransaction(f, t) }, f.Page)
}

func (u *ConsoleUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return u.transactionPage().get(ctx, id)
}

func (u *ConsoleUseCase) SetTransactionStatus(ctx context.Context, id string, status domain.TransactionStatus) (*domain.Transaction, error) {
	return setStatus(ctx, u, u.transactionPage(), id, status, status.Valid(),
		func(t *domain.Transaction) *domain.TransactionStatus { return &t.Status })
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

// Record kinds. They name the pages, the HTTP resources, the stats cache
// keys and the kind column of the document store.
const (
	KindBanners      = "banners"
	KindCoupons      = "coupons"
	KindCustomers    = "customers"
	KindDeals        = "deals"
	KindDeliveries   = "deliveries"
	KindProducts     = "products"
	KindRequests     = "requests"
	KindTransactions = "transactions"
	KindVendors      = "vendors"
)

var kinds = []string{KindBanners, KindCoupons, KindCustomers, KindDeals, KindDeliveries,
	KindProducts, KindRequests, KindTransactions, KindVendors}

// Deps are the collaborators of a ConsoleUseCase. Only Repos is
// required; nil collaborators are replaced with no-op implementations.
type Deps struct {
	Repos   port.Repositories
	Events  port.EventPublisher
	Cache   port.StatsCache
	Catalog port.CatalogSource
	Logger  *slog.Logger
	// Now is the reference clock used by time-relative statistics.
	Now func() time.Time
	// LowStockThreshold marks products with 0 < stock <= threshold.
	LowStockThreshold int64
}

// ConsoleUseCase implements port.ConsoleUseCase on top of the
// repositories. It holds no state of its own.
type ConsoleUseCase struct {
	repos    port.Repositories
	events   port.EventPublisher
	cache    port.StatsCache
	catalog  port.CatalogSource
	logger   *slog.Logger
	now      func() time.Time
	lowStock int64
	versions map[string]*statsVersion
}

// statsVersion counts the changes of one record kind. A cache write is
// skipped when the kind changed while its stats were being computed.
type statsVersion struct {
	mu  sync.RWMutex
	gen uint64
}

func (v *statsVersion) current() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.gen
}

// NewConsoleUseCase creates a use case from deps.
func NewConsoleUseCase(deps Deps) *ConsoleUseCase {
	u := &ConsoleUseCase{
		repos:    deps.Repos,
		events:   deps.Events,
		cache:    deps.Cache,
		catalog:  deps.Catalog,
		logger:   deps.Logger,
		now:      deps.Now,
		lowStock: deps.LowStockThreshold,
		versions: make(map[string]*statsVersion, len(kinds)),
	}
	for _, k := range kinds {
		u.versions[k] = &statsVersion{}
	}
	if u.events == nil {
		u.events = nopEvents{}
	}
	if u.cache == nil {
		u.cache = nopCache{}
	}
	if u.logger == nil {
		u.logger = slog.New(slog.DiscardHandler)
	}
	if u.now == nil {
		u.now = time.Now
	}
	if u.lowStock <= 0 {
		u.lowStock = 10
	}
	return u
}

var _ port.ConsoleUseCase = (*ConsoleUseCase)(nil)

// page describes how one console page filters, reduces and decorates its
// records.
type page[T domain.Record, S any] struct {
	kind   string
	repo   port.Repository[T]
	reduce func([]T) S
	badges func(T) map[string]listing.Badge
}

// list loads the full record set, reduces it, then filters and pages the
// items. Stats never see the filter.
func (p page[T, S]) list(ctx context.Context, keep func(T) bool, pg port.Page) (*port.Listing[T, S], error) {
	all, err := p.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", p.kind, err)
	}
	stats := p.reduce(all)
	matched := listing.Filter(all, keep)
	window := listing.Paginate(matched, pg.Limit, pg.Offset)

	rows := make([]port.Row[T], len(window))
	for i, rec := range window {
		rows[i] = port.Row[T]{Record: rec, Badges: p.badges(rec)}
	}
	return &port.Listing[T, S]{
		Items:   rows,
		Matched: len(matched),
		Total:   len(all),
		Stats:   stats,
	}, nil
}

func (p page[T, S]) get(ctx context.Context, key string) (*T, error) {
	rec, err := p.repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get %s %q: %w", p.kind, key, err)
	}
	if rec == nil {
		return nil, port.ErrNotFound
	}
	return rec, nil
}

// stats returns the cached statistics of the page or computes and caches
// them. Cache failures are logged and never fail the call.
func (p page[T, S]) stats(ctx context.Context, u *ConsoleUseCase) (S, error) {
	var s S
	key := statsKey(p.kind)
	hit, err := u.cache.Get(ctx, key, &s)
	if err != nil {
		u.logger.Warn("stats cache read failed", slog.String("kind", p.kind), slog.Any("error", err))
	}
	if hit && err == nil {
		return s, nil
	}
	ver := u.versions[p.kind]
	gen := ver.current()
	all, err := p.repo.List(ctx)
	if err != nil {
		return s, fmt.Errorf("list %s: %w", p.kind, err)
	}
	s = p.reduce(all)

	ver.mu.RLock()
	defer ver.mu.RUnlock()
	if ver.gen != gen {
		return s, nil
	}
	if err = u.cache.Set(ctx, key, s); err != nil {
		u.logger.Warn("stats cache write failed", slog.String("kind", p.kind), slog.Any("error", err))
	}
	return s, nil
}

// setStatus updates the status of one record, publishes a status event
// and drops the cached statistics of the page. Any member of the status
// set may replace any other.
func setStatus[T domain.Record, S any, St ~string](
	ctx context.Context,
	u *ConsoleUseCase,
	p page[T, S],
	key string,
	to St,
	valid bool,
	field func(*T) *St,
) (*T, error) {
	if !valid {
		return nil, fmt.Errorf("%w: %q", port.ErrInvalidStatus, string(to))
	}
	rec, err := p.get(ctx, key)
	if err != nil {
		return nil, err
	}
	status := field(rec)
	from := *status
	*status = to
	if err = p.repo.Save(ctx, *rec); err != nil {
		return nil, fmt.Errorf("save %s %q: %w", p.kind, key, err)
	}
	u.changed(ctx, p.kind, key, string(from), string(to))
	return rec, nil
}

// changed invalidates the page statistics and publishes the audit event.
// Both are best effort; failures are logged.
func (u *ConsoleUseCase) changed(ctx context.Context, kind, key, from, to string) {
	u.invalidate(ctx, kind)
	ev := domain.Event{
		ID:         uuid.NewString(),
		Type:       domain.EventStatusChanged,
		Kind:       kind,
		RecordID:   key,
		From:       from,
		To:         to,
		OccurredAt: u.now().UTC(),
	}
	if s, ok := domain.SessionFrom(ctx); ok {
		ev.Actor = s.User.Email
	}
	if err := u.events.Publish(ctx, ev); err != nil {
		u.logger.Error("publish event failed", slog.String("kind", kind), slog.String("id", key), slog.Any("error", err))
	}
}

// running returns a schedule predicate for the Live selector. When live
// is false every schedule passes.
func (u *ConsoleUseCase) running(live bool) func(domain.Schedule) bool {
	if !live {
		return func(domain.Schedule) bool { return true }
	}
	now := u.now()
	return func(s domain.Schedule) bool { return s.Contains(now) }
}

// invalidate bumps the version of kind and drops its cached stats. A
// stats computation that started earlier will not write the cache.
func (u *ConsoleUseCase) invalidate(ctx context.Context, kind string) {
	ver := u.versions[kind]
	ver.mu.Lock()
	defer ver.mu.Unlock()
	ver.gen++
	if err := u.cache.Invalidate(ctx, statsKey(kind)); err != nil {
		u.logger.Warn("stats cache invalidate failed", slog.String("kind", kind), slog.Any("error", err))
	}
}

// InvalidateStats drops the cached statistics of every page. Call it after
// writing records outside the use case, such as seeding.
func (u *ConsoleUseCase) InvalidateStats(ctx context.Context) {
	for _, k := range kinds {
		u.invalidate(ctx, k)
	}
}

func statsKey(kind string) string { return "stats:" + kind }

// Overview computes the statistics of every page concurrently.
func (u *ConsoleUseCase) Overview(ctx context.Context) (*port.Overview, error) {
	var ov port.Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { ov.Banners, err = u.bannerPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Coupons, err = u.couponPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Customers, err = u.customerPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Deals, err = u.dealPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Deliveries, err = u.deliveryPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Products, err = u.productPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Requests, err = u.requestPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Transactions, err = u.transactionPage().stats(gctx, u); return })
	g.Go(func() (err error) { ov.Vendors, err = u.vendorPage().stats(gctx, u); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}

type nopEvents struct{}

func (nopEvents) Publish(context.Context, domain.Event) error { return nil }

type nopCache struct{}

func (nopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (nopCache) Set(context.Context, string, any) error         { return nil }
func (nopCache) Invalidate(context.Context, string) error       { return nil }

package port

import (
	"context"
	"net/http"

	"backoffice/internal/core/domain"
)

// EventPublisher emits audit events for changes made in the console.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// StatsCache stores computed page statistics. Get decodes a cached value
// into dst and reports whether it was present.
type StatsCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, key string) error
}

// SessionProvider resolves the console session of an incoming request.
// It returns nil, nil when the request carries no valid session.
type SessionProvider interface {
	Session(ctx context.Context, r *http.Request) (*domain.Session, error)
}

// CatalogSource is an external product catalog.
type CatalogSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

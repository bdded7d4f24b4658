package port

import (
	"context"

	"backoffice/internal/core/domain"
)

// Repository defines the persistence layer for one kind of console
// record. It is an outbound port; implementations must be safe for
// concurrent use. List returns records in a stable order so that
// filtering never reorders the page.
type Repository[T domain.Record] interface {
	// List returns every record of the kind.
	List(ctx context.Context) ([]T, error)
	// Get returns the record with the given key, or nil when absent.
	Get(ctx context.Context, key string) (*T, error)
	// Save inserts or replaces a record by key.
	Save(ctx context.Context, rec T) error
}

// SettingsRepository persists the singleton settings document.
type SettingsRepository interface {
	// Load returns the stored settings, or nil when none were saved yet.
	Load(ctx context.Context) (*domain.SystemSettings, error)
	Save(ctx context.Context, s domain.SystemSettings) error
}

// Repositories bundles one repository per console page.
type Repositories struct {
	Banners      Repository[domain.Banner]
	Coupons      Repository[domain.Coupon]
	Customers    Repository[domain.Customer]
	Deals        Repository[domain.Deal]
	Deliveries   Repository[domain.Delivery]
	Products     Repository[domain.Product]
	Requests     Repository[domain.CustomerRequest]
	Transactions Repository[domain.Transaction]
	Vendors      Repository[domain.Vendor]
	Settings     SettingsRepository
}

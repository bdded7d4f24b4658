// Package postgres stores console records as JSONB documents in the
// records table, one row per record keyed by (kind, id).
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// Repository implements port.Repository[T] for one record kind.
type Repository[T domain.Record] struct {
	pool *pgxpool.Pool
	kind string
	// status extracts the indexed status column.
	status func(T) string
}

// NewRepository returns a repository for records of the given kind.
func NewRepository[T domain.Record](pool *pgxpool.Pool, kind string, status func(T) string) *Repository[T] {
	return &Repository[T]{pool: pool, kind: kind, status: status}
}

// List returns all records of the kind in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.pool.Query(ctx, `SELECT data FROM records WHERE kind = $1 ORDER BY seq`, r.kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		var (
			rec T
			raw []byte
		)
		if err := row.Scan(&raw); err != nil {
			return rec, err
		}
		return rec, json.Unmarshal(raw, &rec)
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	return items, nil
}

// Get returns the record with the given key or nil when absent.
func (r *Repository[T]) Get(ctx context.Context, key string) (*T, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM records WHERE kind = $1 AND id = $2`, r.kind, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.kind, key, err)
	}
	var rec T
	if err = json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", r.kind, key, err)
	}
	return &rec, nil
}

// Save upserts the record. An update keeps the row's original position.
func (r *Repository[T]) Save(ctx context.Context, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", r.kind, rec.Key(), err)
	}
	now := time.Now().UTC()
	_, err = r.pool.Exec(ctx, `INSERT INTO records (kind, id, status, data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (kind, id) DO UPDATE SET status = EXCLUDED.status, data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		r.kind, rec.Key(), r.status(rec), raw, now)
	if err != nil {
		return fmt.Errorf("save %s %s: %w", r.kind, rec.Key(), err)
	}
	return nil
}

// SettingsRepository keeps the settings document in a single row.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Load(ctx context.Context) (*domain.SystemSettings, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	var s domain.SystemSettings
	if err = json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s domain.SystemSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO settings (id, data, updated_at) VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`, raw)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// NewRepositories returns postgres-backed repositories for every page.
func NewRepositories(pool *pgxpool.Pool) port.Repositories {
	return port.Repositories{
		Banners:      NewRepository(pool, "banners", func(b domain.Banner) string { return string(b.Status) }),
		Coupons:      NewRepository(pool, "coupons", func(c domain.Coupon) string { return string(c.Status) }),
		Customers:    NewRepository(pool, "customers", func(c domain.Customer) string { return string(c.Status) }),
		Deals:        NewRepository(pool, "deals", func(d domain.Deal) string { return string(d.Status) }),
		Deliveries:   NewRepository(pool, "deliveries", func(d domain.Delivery) string { return string(d.Status) }),
		Products:     NewRepository(pool, "products", func(p domain.Product) string { return string(p.Status) }),
		Requests:     NewRepository(pool, "requests", func(r domain.CustomerRequest) string { return string(r.Status) }),
		Transactions: NewRepository(pool, "transactions", func(t domain.Transaction) string { return string(t.Status) }),
		Vendors:      NewRepository(pool, "vendors", func(v domain.Vendor) string { return string(v.Status) }),
		Settings:     NewSettingsRepository(pool),
	}
}

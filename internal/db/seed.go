package db

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// Seed writes the sample records into repos. Existing records with the
// same keys are overwritten; others are left alone.
func Seed(ctx context.Context, repos port.Repositories, now time.Time) error {
	fx := NewFixtures(now)
	if err := saveAll(ctx, "banners", repos.Banners, fx.Banners); err != nil {
		return err
	}
	if err := saveAll(ctx, "coupons", repos.Coupons, fx.Coupons); err != nil {
		return err
	}
	if err := saveAll(ctx, "customers", repos.Customers, fx.Customers); err != nil {
		return err
	}
	if err := saveAll(ctx, "deals", repos.Deals, fx.Deals); err != nil {
		return err
	}
	if err := saveAll(ctx, "deliveries", repos.Deliveries, fx.Deliveries); err != nil {
		return err
	}
	if err := saveAll(ctx, "products", repos.Products, fx.Products); err != nil {
		return err
	}
	if err := saveAll(ctx, "requests", repos.Requests, fx.Requests); err != nil {
		return err
	}
	if err := saveAll(ctx, "transactions", repos.Transactions, fx.Transactions); err != nil {
		return err
	}
	if err := saveAll(ctx, "vendors", repos.Vendors, fx.Vendors); err != nil {
		return err
	}
	if s, err := repos.Settings.Load(ctx); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	} else if s == nil {
		def := domain.DefaultSettings()
		def.UpdatedAt = now.UTC()
		if err = repos.Settings.Save(ctx, def); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
	}
	return nil
}

// IsEmpty reports whether the store holds no banners and no products,
// which serve treats as a fresh install.
func IsEmpty(ctx context.Context, repos port.Repositories) (bool, error) {
	banners, err := repos.Banners.List(ctx)
	if err != nil {
		return false, err
	}
	products, err := repos.Products.List(ctx)
	if err != nil {
		return false, err
	}
	return len(banners) == 0 && len(products) == 0, nil
}

func saveAll[T domain.Record](ctx context.Context, kind string, repo port.Repository[T], recs []T) error {
	for _, rec := range recs {
		if err := repo.Save(ctx, rec); err != nil {
			return fmt.Errorf("seed %s %s: %w", kind, rec.Key(), err)
		}
	}
	return nil
}

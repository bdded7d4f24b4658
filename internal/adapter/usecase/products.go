package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/listing"
	"backoffice/internal/core/port"
)

func (u *ConsoleUseCase) productPage() page[domain.Product, port.ProductStats] {
	threshold := u.lowStock
	return page[domain.Product, port.ProductStats]{
		kind:   KindProducts,
		repo:   u.repos.Products,
		reduce: func(ps []domain.Product) port.ProductStats { return ProductStats(ps, threshold) },
		badges: func(p domain.Product) map[string]listing.Badge {
			return map[string]listing.Badge{
				"status": domain.ProductStatusBadges.Lookup(string(p.Status)),
			}
		},
	}
}

func MatchProduct(f port.ProductFilter, p domain.Product) bool {
	return listing.MatchesSearch(f.Search, p.Name, p.SKU, p.Brand) &&
		listing.MatchesSelector(f.Status, string(p.Status)) &&
		listing.MatchesSelector(f.Category, p.Category)
}

// ProductStats reduces products into the page summary. A product is low
// on stock when 0 < stock <= lowStock.
func ProductStats(products []domain.Product, lowStock int64) port.ProductStats {
	var s port.ProductStats
	for _, p := range products {
		s.Total++
		if p.Status == domain.ProductActive {
			s.Active++
		}
		switch {
		case p.SoldOut():
			s.OutOfStock++
		case p.Stock <= lowStock:
			s.LowStock++
		}
		if p.Stock > 0 {
			s.InventoryValue += p.Price * p.Stock
		}
		s.Revenue += p.Revenue
		s.UnitsSold += p.Sales
	}
	return s
}

func (u *ConsoleUseCase) ListProducts(ctx context.Context, f port.ProductFilter) (*port.Listing[domain.Product, port.ProductStats], error) {
	return u.productPage().list(ctx, func(p domain.Product) bool { return MatchProduct(f, p) }, f.Page)
}

func (u *ConsoleUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return u.productPage().get(ctx, id)
}

func (u *ConsoleUseCase) SetProductStatus(ctx context.Context, id string, status domain.ProductStatus) (*domain.Product, error) {
	return setStatus(ctx, u, u.productPage(), id, status, status.Valid(),
		func(p *domain.Product) *domain.ProductStatus { return &p.Status })
}

// ListCategories asks the external catalog first. When it is not
// configured or fails, categories are derived from the stored products.
func (u *ConsoleUseCase) ListCategories(ctx context.Context) ([]string, error) {
	if u.catalog != nil {
		cats, err := u.catalog.Categories(ctx)
		if err == nil {
			return cats, nil
		}
		u.logger.Error("fetch categories failed", slog.Any("error", err))
	}
	products, err := u.repos.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	cats := make([]string, 0)
	for _, p := range products {
		if p.Category != "" && !slices.Contains(cats, p.Category) {
			cats = append(cats, p.Category)
		}
	}
	slices.Sort(cats)
	return cats, nil
}

// SyncCatalog upserts every product of the external catalog. On a fetch
// error nothing is written.
func (u *ConsoleUseCase) SyncCatalog(ctx context.Context) (int, error) {
	if u.catalog == nil {
		return 0, nil
	}
	products, err := u.catalog.Products(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch catalog: %w", err)
	}
	for i, p := range products {
		if err = u.repos.Products.Save(ctx, p); err != nil {
			return i, fmt.Errorf("save product %q: %w", p.ID, err)
		}
	}
	u.invalidate(ctx, KindProducts)
	return len(products), nil
}

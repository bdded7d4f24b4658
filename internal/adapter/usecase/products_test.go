package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/adapter/memory"
	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
	"backoffice/internal/core/port/mocks"
)

func productRepos() *memory.Store[domain.Product] {
	return memory.NewStore(
		domain.Product{ID: "p1", Category: "home", Status: domain.ProductActive, Stock: 3},
		domain.Product{ID: "p2", Category: "apparel", Status: domain.ProductActive, Stock: 50},
		domain.Product{ID: "p3", Category: "home", Status: domain.ProductDraft},
		domain.Product{ID: "p4", Status: domain.ProductDraft},
	)
}

func TestListCategories_DerivedFromProducts(t *testing.T) {
	repos := memory.NewRepositories()
	repos.Products = productRepos()
	u := newUseCase(t, repos, Deps{})

	cats, err := u.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"apparel", "home"}, cats)
}

func TestListCategories_PrefersCatalog(t *testing.T) {
	repos := memory.NewRepositories()
	repos.Products = productRepos()
	catalog := mocks.NewMockCatalogSource(t)
	catalog.EXPECT().Categories(mock.Anything).Return([]string{"electronics"}, nil)
	u := newUseCase(t, repos, Deps{Catalog: catalog})

	cats, err := u.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics"}, cats)
}

func TestListCategories_CatalogFailureFallsBack(t *testing.T) {
	repos := memory.NewRepositories()
	repos.Products = productRepos()
	catalog := mocks.NewMockCatalogSource(t)
	catalog.EXPECT().Categories(mock.Anything).Return(nil, errors.New("timeout"))
	u := newUseCase(t, repos, Deps{Catalog: catalog})

	cats, err := u.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"apparel", "home"}, cats)
}

func TestSyncCatalog(t *testing.T) {
	repos := memory.NewRepositories()
	repos.Products = productRepos()
	catalog := mocks.NewMockCatalogSource(t)
	cache := mocks.NewMockStatsCache(t)
	catalog.EXPECT().Products(mock.Anything).Return([]domain.Product{
		{ID: "p1", Category: "home", Status: domain.ProductOutOfStock},
		{ID: "p9", Category: "garden", Status: domain.ProductActive},
	}, nil)
	cache.EXPECT().Invalidate(mock.Anything, "stats:products").Return(nil).Once()
	u := newUseCase(t, repos, Deps{Catalog: catalog, Cache: cache})
	ctx := context.Background()

	n, err := u.SyncCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	p1, err := u.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductOutOfStock, p1.Status)

	all, err := repos.Products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSyncCatalog_FetchErrorLeavesStore(t *testing.T) {
	repos := memory.NewRepositories()
	repos.Products = productRepos()
	catalog := mocks.NewMockCatalogSource(t)
	catalog.EXPECT().Products(mock.Anything).Return(nil, errors.New("502"))
	u := newUseCase(t, repos, Deps{Catalog: catalog})

	_, err := u.SyncCatalog(context.Background())
	assert.Error(t, err)

	all, _ := repos.Products.List(context.Background())
	assert.Len(t, all, 4)
}

func TestSyncCatalog_NoCatalog(t *testing.T) {
	u := newUseCase(t, memory.NewRepositories(), Deps{})

	n, err := u.SyncCatalog(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListProducts_LowStockThreshold(t *testing.T) {
	repos := memory.NewRepositories()
	repos.Products = productRepos()
	u := newUseCase(t, repos, Deps{LowStockThreshold: 5})

	res, err := u.ListProducts(context.Background(), port.ProductFilter{Category: "home"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 1, res.Stats.LowStock)
	assert.Equal(t, 2, res.Stats.OutOfStock)
}

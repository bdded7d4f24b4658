package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/domain"
)

func TestStorePreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore(
		domain.Banner{ID: "b2", Title: "second"},
		domain.Banner{ID: "b1", Title: "first"},
		domain.Banner{ID: "b3", Title: "third"},
	)

	require.NoError(t, s.Save(ctx, domain.Banner{ID: "b1", Title: "first, edited"}))
	require.NoError(t, s.Save(ctx, domain.Banner{ID: "b4", Title: "fourth"}))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"b2", "b1", "b3", "b4"}, keys(got))
	assert.Equal(t, "first, edited", got[1].Title)
}

func TestStoreGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore(domain.Coupon{Code: "A"}, domain.Coupon{Code: "B"}, domain.Coupon{Code: "C"})

	c, err := s.Get(ctx, "B")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "B", c.Code)

	missing, err := s.Get(ctx, "Z")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, _ := s.List(ctx)
	assert.Equal(t, []string{"A", "B", "C"}, keys(all))
}

func TestStoreListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore(domain.Vendor{ID: "v1", Name: "Acme"})
	all, _ := s.List(ctx)
	all[0].Name = "changed"

	v, _ := s.Get(ctx, "v1")
	assert.Equal(t, "Acme", v.Name)
}

func TestStoreConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := NewStore[domain.Product]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Save(ctx, domain.Product{ID: string(rune('a' + i%26))})
		}(i)
	}
	wg.Wait()

	all, _ := s.List(ctx)
	assert.Len(t, all, 26)
}

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()
	s := NewSettingsStore()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	def := domain.DefaultSettings()
	require.NoError(t, s.Save(ctx, def))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, def.General.StoreName, got.General.StoreName)
}

func keys[T domain.Record](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}

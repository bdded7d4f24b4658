package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/adapter/memory"
	"backoffice/internal/core/domain"
)

func TestSeed_FillsEmptyStore(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	empty, err := IsEmpty(ctx, repos)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, Seed(ctx, repos, now))

	empty, err = IsEmpty(ctx, repos)
	require.NoError(t, err)
	assert.False(t, empty)

	fx := NewFixtures(now)
	banners, _ := repos.Banners.List(ctx)
	assert.Len(t, banners, len(fx.Banners))
	requests, _ := repos.Requests.List(ctx)
	assert.Len(t, requests, len(fx.Requests))

	s, err := repos.Settings.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, domain.DefaultSettings().General.Currency, s.General.Currency)
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	now := time.Now()

	require.NoError(t, Seed(ctx, repos, now))
	require.NoError(t, Seed(ctx, repos, now))

	vendors, _ := repos.Vendors.List(ctx)
	assert.Len(t, vendors, len(NewFixtures(now).Vendors))
}

func TestFixtures_KeysUniqueAndStatusesValid(t *testing.T) {
	fx := NewFixtures(time.Now())
	seen := map[string]bool{}
	for _, b := range fx.Banners {
		assert.False(t, seen[b.Key()], b.Key())
		seen[b.Key()] = true
		assert.True(t, b.Status.Valid(), b.Key())
	}
	for _, d := range fx.Deliveries {
		assert.True(t, d.Status.Valid(), d.Key())
	}
	for _, tx := range fx.Transactions {
		assert.True(t, tx.Status.Valid(), tx.Key())
	}
}

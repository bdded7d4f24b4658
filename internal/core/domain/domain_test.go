package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleContains(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)

	s := Schedule{Start: start, End: end}
	assert.True(t, s.Contains(start))
	assert.True(t, s.Contains(end))
	assert.False(t, s.Contains(start.Add(-time.Second)))
	assert.False(t, s.Contains(end.Add(time.Second)))

	open := Schedule{Start: start}
	assert.True(t, open.Contains(start.AddDate(5, 0, 0)))
	assert.True(t, Schedule{}.Contains(time.Now()))
}

func TestDeliveryOnTime(t *testing.T) {
	est := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	at := est
	late := est.Add(time.Minute)

	assert.True(t, Delivery{Status: DeliveryDelivered, EstimatedAt: est, DeliveredAt: &at}.OnTime())
	assert.False(t, Delivery{Status: DeliveryDelivered, EstimatedAt: est, DeliveredAt: &late}.OnTime())
	assert.False(t, Delivery{Status: DeliveryDelivered, EstimatedAt: est}.OnTime())
	assert.False(t, Delivery{Status: DeliveryInTransit, EstimatedAt: est, DeliveredAt: &at}.OnTime())
}

func TestStatusSets(t *testing.T) {
	assert.True(t, BannerScheduled.Valid())
	assert.False(t, BannerStatus("paused").Valid())
	assert.True(t, DealPaused.Valid())
	assert.False(t, CouponStatus("").Valid())
	assert.True(t, TxDisputed.Valid())
	assert.False(t, VendorStatus("blocked").Valid())

	assert.True(t, DeliveryOutForDelivery.Moving())
	assert.False(t, DeliveryPending.Moving())
	assert.False(t, DeliveryDelivered.Moving())

	assert.True(t, RequestPending.Unresolved())
	assert.False(t, RequestClosed.Unresolved())
}

func TestProductSoldOut(t *testing.T) {
	assert.True(t, Product{Status: ProductActive, Stock: 0}.SoldOut())
	assert.True(t, Product{Status: ProductOutOfStock, Stock: 4}.SoldOut())
	assert.False(t, Product{Status: ProductDraft, Stock: 1}.SoldOut())
}

func TestSessionContext(t *testing.T) {
	_, ok := SessionFrom(context.Background())
	assert.False(t, ok)

	_, ok = SessionFrom(WithSession(context.Background(), nil))
	assert.False(t, ok)

	s := &Session{User: SessionUser{Email: "ops@example.com"}}
	got, ok := SessionFrom(WithSession(context.Background(), s))
	assert.True(t, ok)
	assert.Equal(t, "ops@example.com", got.User.Email)
}

func TestDefaultSettingsAreSane(t *testing.T) {
	s := DefaultSettings()
	assert.NotEmpty(t, s.General.StoreName)
	assert.Len(t, s.General.Currency, 3)
	assert.Positive(t, s.Security.SessionTimeoutMinutes)
}

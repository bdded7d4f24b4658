// Package memory provides in-process repositories. Records keep their
// insertion order, which is the order the console pages show them in.
package memory

import (
	"context"
	"slices"
	"sync"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// Store implements port.Repository[T] over a slice guarded by a RWMutex.
type Store[T domain.Record] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
}

// NewStore returns a store holding the given records. Later records
// replace earlier ones with the same key.
func NewStore[T domain.Record](seed ...T) *Store[T] {
	s := &Store[T]{index: make(map[string]int, len(seed))}
	for _, rec := range seed {
		s.put(rec)
	}
	return s
}

var _ port.Repository[domain.Banner] = (*Store[domain.Banner])(nil)

// List returns a copy of all records in insertion order.
func (s *Store[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *Store[T]) Get(_ context.Context, key string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[key]
	if !ok {
		return nil, nil
	}
	rec := s.items[i]
	return &rec, nil
}

func (s *Store[T]) Save(_ context.Context, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(rec)
	return nil
}

func (s *Store[T]) put(rec T) {
	if i, ok := s.index[rec.Key()]; ok {
		s.items[i] = rec
		return
	}
	s.index[rec.Key()] = len(s.items)
	s.items = append(s.items, rec)
}

// SettingsStore keeps the settings document in memory.
type SettingsStore struct {
	mu sync.RWMutex
	s  *domain.SystemSettings
}

func NewSettingsStore() *SettingsStore { return &SettingsStore{} }

func (s *SettingsStore) Load(_ context.Context) (*domain.SystemSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.s == nil {
		return nil, nil
	}
	cp := *s.s
	return &cp, nil
}

func (s *SettingsStore) Save(_ context.Context, settings domain.SystemSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s = &settings
	return nil
}

// NewRepositories returns empty in-memory repositories for every page.
func NewRepositories() port.Repositories {
	return port.Repositories{
		Banners:      NewStore[domain.Banner](),
		Coupons:      NewStore[domain.Coupon](),
		Customers:    NewStore[domain.Customer](),
		Deals:        NewStore[domain.Deal](),
		Deliveries:   NewStore[domain.Delivery](),
		Products:     NewStore[domain.Product](),
		Requests:     NewStore[domain.CustomerRequest](),
		Transactions: NewStore[domain.Transaction](),
		Vendors:      NewStore[domain.Vendor](),
		Settings:     NewSettingsStore(),
	}
}

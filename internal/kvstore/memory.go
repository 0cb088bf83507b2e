package kvstore

import (
	"context"
	"sync"

	"github.com/dhanamorganics/storefront/internal/common"
)

// MemoryStore is a map-backed Store. With a non-zero quota it also models the
// capacity bound of a browser's storage (a few MB), which makes the
// quota-exceeded degradation path testable.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	quota int
	used  int
}

// NewMemoryStore returns an unbounded in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// NewMemoryStoreWithQuota bounds total stored bytes (keys + values) to quota.
func NewMemoryStoreWithQuota(quota int) *MemoryStore {
	return &MemoryStore{data: make(map[string]string), quota: quota}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", common.ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := len(key) + len(value)
	if old, ok := s.data[key]; ok {
		delta = len(value) - len(old)
	}

	if s.quota > 0 && s.used+delta > s.quota {
		return common.ErrQuotaExceeded
	}

	s.data[key] = value
	s.used += delta
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.data[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.data, key)
	}
	return nil
}

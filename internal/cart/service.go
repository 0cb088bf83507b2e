// Package cart manages per-user shopping carts. Each cart is a list of line
// items with one entry per product ID and quantity never below 1, committed
// to the key-value store after every successful mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/config"
	"github.com/dhanamorganics/storefront/internal/kvstore"
	"github.com/dhanamorganics/storefront/internal/logging"
	"github.com/dhanamorganics/storefront/internal/models"
)

const cartKeyPrefix = "dhanam_cart:"

type Service struct {
	kv        kvstore.Store
	logger    logging.Logger
	fee       float64
	threshold float64

	mu    sync.Mutex
	carts map[string][]models.CartItem

	subMu sync.Mutex
	subs  []func()
}

func NewService(kv kvstore.Store, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		kv:        kv,
		logger:    logger.With("store", "cart"),
		fee:       cfg.ShippingFee,
		threshold: cfg.FreeShippingThreshold,
		carts:     make(map[string][]models.CartItem),
	}
}

// Subscribe registers fn to be called synchronously after every committed
// mutation.
func (s *Service) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Service) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// items returns the owner's cart, restoring it from storage on first access.
// Corrupt persisted carts read as empty. Callers must hold s.mu.
func (s *Service) items(ctx context.Context, owner string) []models.CartItem {
	if items, ok := s.carts[owner]; ok {
		return items
	}

	var items []models.CartItem
	raw, err := s.kv.Get(ctx, cartKeyPrefix+owner)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "could not read persisted cart, starting empty", "owner", owner, "error", err)
		}
	} else if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn(ctx, "corrupt persisted cart, starting empty", "owner", owner, "error", err)
		items = nil
	}

	s.carts[owner] = items
	return items
}

// commit persists the owner's cart. Failure is logged and swallowed; the
// in-memory cart remains authoritative.
func (s *Service) commit(ctx context.Context, owner string) {
	b, err := json.Marshal(s.carts[owner])
	if err != nil {
		s.logger.Error(ctx, "could not encode cart", "owner", owner, "error", err)
		return
	}
	if err := s.kv.Set(ctx, cartKeyPrefix+owner, string(b)); err != nil {
		s.logger.Warn(ctx, "skipping cart persistence", "owner", owner, "error", err)
	}
}

// Add puts item into the owner's cart. An existing line with the same product
// ID absorbs the added quantity; otherwise a new line is appended. A
// non-positive quantity on the incoming item counts as 1.
func (s *Service) Add(ctx context.Context, owner string, item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	items := s.items(ctx, owner)

	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	s.carts[owner] = items
	s.commit(ctx, owner)
	s.mu.Unlock()

	s.notify()
}

// UpdateQuantity applies delta to a line's quantity, clamping the result to a
// minimum of 1. Removal is only ever explicit via Remove.
func (s *Service) UpdateQuantity(ctx context.Context, owner, id string, delta int) error {
	s.mu.Lock()
	items := s.items(ctx, owner)

	found := false
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity += delta
			if items[i].Quantity < 1 {
				items[i].Quantity = 1
			}
			found = true
			break
		}
	}

	if !found {
		s.mu.Unlock()
		return common.ErrNotFound
	}

	s.commit(ctx, owner)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Remove deletes the line item unconditionally. A missing line is a no-op.
func (s *Service) Remove(ctx context.Context, owner, id string) {
	s.mu.Lock()
	items := s.items(ctx, owner)

	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}

	s.carts[owner] = kept
	s.commit(ctx, owner)
	s.mu.Unlock()

	s.notify()
}

// Items returns a copy of the owner's cart lines.
func (s *Service) Items(ctx context.Context, owner string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items(ctx, owner)
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// Subtotal recomputes the sum of price times quantity over current lines.
func (s *Service) Subtotal(ctx context.Context, owner string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.items(ctx, owner))
}

// Totals derives the money summary for the owner's cart: the flat shipping
// fee applies while the subtotal is at or below the free-shipping threshold
// and is waived above it.
func (s *Service) Totals(ctx context.Context, owner string) models.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := subtotal(s.items(ctx, owner))

	shipping := s.fee
	if sub > s.threshold {
		shipping = 0
	}

	return models.CartTotals{
		Subtotal: sub,
		Shipping: shipping,
		Total:    sub + shipping,
	}
}

func subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

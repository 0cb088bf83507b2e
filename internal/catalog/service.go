// Package catalog manages the in-memory product catalog. It is seeded from a
// static dataset at startup and mutated through the admin panel; last writer
// wins. Admin edits are not persisted across restarts.
package catalog

import (
	"fmt"
	"sync"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/models"
	"github.com/google/uuid"
)

type Service struct {
	mu       sync.RWMutex
	products []models.Product

	subMu sync.Mutex
	subs  []func()
}

func NewService(seed []models.Product) *Service {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &Service{products: products}
}

// Subscribe registers fn to be called synchronously after every mutation.
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

func validate(p models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", common.ErrValidation)
	}
	if p.Rating < 1 || p.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", common.ErrValidation)
	}
	return nil
}

// Add appends a product to the catalog. A missing ID is generated.
func (s *Service) Add(p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := validate(p); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	for _, existing := range s.products {
		if existing.ID == p.ID {
			s.mu.Unlock()
			return models.Product{}, fmt.Errorf("%w: duplicate product id %s", common.ErrValidation, p.ID)
		}
	}
	s.products = append(s.products, p)
	s.mu.Unlock()

	s.notify()
	return p, nil
}

// Update merges the set fields of upd into the product with the given ID.
func (s *Service) Update(id string, upd models.ProductUpdate) (models.Product, error) {
	s.mu.Lock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Product{}, common.ErrNotFound
	}

	p := s.products[idx]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.NameTranslated != nil {
		p.NameTranslated = *upd.NameTranslated
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.OriginalPrice != nil {
		p.OriginalPrice = upd.OriginalPrice
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Rating != nil {
		p.Rating = *upd.Rating
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.DescriptionTranslated != nil {
		p.DescriptionTranslated = *upd.DescriptionTranslated
	}
	if upd.Ingredients != nil {
		p.Ingredients = upd.Ingredients
	}
	if upd.IsOrganic != nil {
		p.IsOrganic = *upd.IsOrganic
	}

	if err := validate(p); err != nil {
		s.mu.Unlock()
		return models.Product{}, err
	}

	s.products[idx] = p
	s.mu.Unlock()

	s.notify()
	return p, nil
}

// Delete removes the product with the given ID.
func (s *Service) Delete(id string) error {
	s.mu.Lock()

	kept := s.products[:0]
	found := false
	for _, p := range s.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	s.mu.Unlock()

	if !found {
		return common.ErrNotFound
	}

	s.notify()
	return nil
}

// Products returns a copy of the catalog.
func (s *Service) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given ID.
func (s *Service) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, common.ErrNotFound
}

// ByCategory returns the products in the given category, or the whole
// catalog when category is empty.
func (s *Service) ByCategory(category string) []models.Product {
	if category == "" {
		return s.Products()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the deduplicated categories in insertion order of first
// occurrence.
func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *Service) TotalProducts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Service) TotalCategories() int {
	return len(s.Categories())
}

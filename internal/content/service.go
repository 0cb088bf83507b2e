// Package content manages the admin-editable page sections. The whole
// section collection is committed to the key-value store after every edit;
// corrupt or missing stored content falls back to the defaults.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/kvstore"
	"github.com/dhanamorganics/storefront/internal/logging"
	"github.com/dhanamorganics/storefront/internal/models"
)

const contentKey = "dhanam_content"

type Service struct {
	kv     kvstore.Store
	logger logging.Logger

	mu       sync.RWMutex
	sections []models.ContentSection

	subMu sync.Mutex
	subs  []func()
}

func NewService(ctx context.Context, kv kvstore.Store, logger logging.Logger) *Service {
	s := &Service{
		kv:     kv,
		logger: logger.With("store", "content"),
	}
	s.sections = s.load(ctx)
	return s
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

func (s *Service) load(ctx context.Context) []models.ContentSection {
	raw, err := s.kv.Get(ctx, contentKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "could not read persisted content, using defaults", "error", err)
		}
		return Defaults()
	}

	var sections []models.ContentSection
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		s.logger.Warn(ctx, "corrupt persisted content, using defaults", "error", err)
		return Defaults()
	}
	return sections
}

func (s *Service) commit(ctx context.Context) {
	b, err := json.Marshal(s.sections)
	if err != nil {
		s.logger.Error(ctx, "could not encode content sections", "error", err)
		return
	}
	if err := s.kv.Set(ctx, contentKey, string(b)); err != nil {
		s.logger.Warn(ctx, "skipping content persistence", "error", err)
	}
}

// UpdateSection replaces the section's entire field list and commits the
// whole collection. Field keys must be unique within the section.
func (s *Service) UpdateSection(ctx context.Context, id string, fields []models.ContentField) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("%w: duplicate field key %q", common.ErrValidation, f.Key)
		}
		seen[f.Key] = struct{}{}
	}

	s.mu.Lock()
	idx := -1
	for i := range s.sections {
		if s.sections[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return common.ErrNotFound
	}

	s.sections[idx].Fields = fields
	s.commit(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// GetField returns the field's value, or an empty string when the section or
// key is absent. It never fails.
func (s *Service) GetField(sectionID, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, section := range s.sections {
		if section.ID != sectionID {
			continue
		}
		for _, f := range section.Fields {
			if f.Key == key {
				return f.Value
			}
		}
	}
	return ""
}

// Sections returns a snapshot of all sections.
func (s *Service) Sections() []models.ContentSection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContentSection, len(s.sections))
	copy(out, s.sections)
	return out
}

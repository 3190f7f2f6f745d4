package cache

import (
	"context"
	"sync"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// MemoryDetailStore is a process-lifetime in-memory detail cache with no
// eviction, matching the sizing assumptions of a short-lived deployment.
type MemoryDetailStore struct {
	mu      sync.RWMutex
	entries map[string]*model.PlaceDetail
}

// NewMemoryDetailStore creates an empty in-memory detail cache.
func NewMemoryDetailStore() *MemoryDetailStore {
	return &MemoryDetailStore{entries: make(map[string]*model.PlaceDetail)}
}

func (s *MemoryDetailStore) Get(_ context.Context, locationID string) (*model.PlaceDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[locationID], nil
}

func (s *MemoryDetailStore) Set(_ context.Context, locationID string, detail *model.PlaceDetail) error {
	if detail == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[locationID] = detail
	return nil
}

// MemoryTranslationStore is the in-memory (language, text) translation cache.
type MemoryTranslationStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryTranslationStore creates an empty in-memory translation cache.
func NewMemoryTranslationStore() *MemoryTranslationStore {
	return &MemoryTranslationStore{entries: make(map[string]string)}
}

func (s *MemoryTranslationStore) Get(_ context.Context, lang, text string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	translated, ok := s.entries[translationKey(lang, text)]
	return translated, ok, nil
}

func (s *MemoryTranslationStore) Set(_ context.Context, lang, text, translated string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[translationKey(lang, text)] = translated
	return nil
}

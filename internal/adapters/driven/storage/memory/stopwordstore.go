package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

var _ driven.StopwordStore = (*StopwordStore)(nil)

// StopwordStore is an in-memory implementation of driven.StopwordStore.
type StopwordStore struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// NewStopwordStore creates a new in-memory stopword store.
func NewStopwordStore() *StopwordStore {
	return &StopwordStore{
		words: make(map[string]struct{}),
	}
}

// Add inserts words. Empty strings are skipped.
func (s *StopwordStore) Add(_ context.Context, words ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return nil
}

// Remove deletes words.
func (s *StopwordStore) Remove(_ context.Context, words ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		delete(s.words, w)
	}
	return nil
}

// Clear deletes every word.
func (s *StopwordStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = make(map[string]struct{})
	return nil
}

// List returns all words sorted ascending.
func (s *StopwordStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, 0, len(s.words))
	for w := range s.words {
		result = append(result, w)
	}
	sort.Strings(result)
	return result, nil
}

// Contains reports whether word is in the set.
func (s *StopwordStore) Contains(_ context.Context, word string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[word]
	return ok, nil
}

// Count returns the number of words.
func (s *StopwordStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words), nil
}

package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

var (
	_ driven.BufferStore     = (*BufferStore)(nil)
	_ driven.MatchStateStore = (*BufferStore)(nil)
)

// BufferStore is an in-memory implementation of driven.BufferStore and
// driven.MatchStateStore. Values are copied on the way in and out so
// callers cannot mutate stored state.
type BufferStore struct {
	mu        sync.RWMutex
	active    *domain.TextBuffer
	revisions map[string][]domain.Revision
	matches   *domain.MatchSet
	cursor    domain.MatchCursor
}

// NewBufferStore creates a new in-memory buffer store.
func NewBufferStore() *BufferStore {
	return &BufferStore{
		revisions: make(map[string][]domain.Revision),
		cursor:    domain.NewMatchCursor(),
	}
}

// Save creates or replaces the active buffer. Loading a buffer with a new
// ID drops the previous buffer's history.
func (s *BufferStore) Save(_ context.Context, buf *domain.TextBuffer) error {
	if buf == nil || buf.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil && s.active.ID != buf.ID {
		delete(s.revisions, s.active.ID)
	}
	stored := *buf
	s.active = &stored
	return nil
}

// Active returns a copy of the active buffer.
func (s *BufferStore) Active(_ context.Context) (*domain.TextBuffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil, domain.ErrNoBuffer
	}
	buf := *s.active
	return &buf, nil
}

// AddRevision appends a revision.
func (s *BufferStore) AddRevision(_ context.Context, rev *domain.Revision) error {
	if rev == nil || rev.BufferID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revisions[rev.BufferID] = append(s.revisions[rev.BufferID], *rev)
	return nil
}

// Revisions returns up to limit revisions, newest first.
func (s *BufferStore) Revisions(_ context.Context, bufferID string, limit int) ([]domain.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	revs := s.revisions[bufferID]
	n := len(revs)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.Revision, 0, n)
	for i := len(revs) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, revs[i])
	}
	return result, nil
}

// SaveMatches stores a copy of the match set and the cursor.
func (s *BufferStore) SaveMatches(_ context.Context, set *domain.MatchSet, cursor domain.MatchCursor) error {
	if set == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = copyMatchSet(set)
	s.cursor = cursor
	return nil
}

// LoadMatches returns the stored match set and cursor.
func (s *BufferStore) LoadMatches(_ context.Context) (*domain.MatchSet, domain.MatchCursor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.matches == nil {
		return nil, domain.NewMatchCursor(), domain.ErrNotFound
	}
	return copyMatchSet(s.matches), s.cursor, nil
}

// ClearMatches discards the stored match set.
func (s *BufferStore) ClearMatches(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = nil
	s.cursor = domain.NewMatchCursor()
	return nil
}

func copyMatchSet(set *domain.MatchSet) *domain.MatchSet {
	out := *set
	out.Matches = make([]domain.Match, len(set.Matches))
	copy(out.Matches, set.Matches)
	return &out
}

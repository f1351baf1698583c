package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
	"github.com/custodia-labs/textdesk/internal/loaders"
	"github.com/custodia-labs/textdesk/internal/logger"
	"github.com/custodia-labs/textdesk/internal/matcher"
	"github.com/custodia-labs/textdesk/internal/replacer"
)

// Ensure EditorService implements the interface.
var _ driving.EditorService = (*EditorService)(nil)

// Revision reasons recorded in buffer history.
const (
	ReasonLoad      = "load"
	ReasonReset     = "reset"
	ReasonReplace   = "replace"
	ReasonSelective = "selective_replace"
	ReasonCurrent   = "replace_current"
	ReasonNormalise = "normalise"
	ReasonRewrite   = "rewrite"
)

// EditorService owns the active buffer, the last search and its cursor.
type EditorService struct {
	// mu serialises read-modify-write cycles against the stores.
	mu      sync.Mutex
	buffers driven.BufferStore
	matches driven.MatchStateStore
	loaders driven.LoaderRegistry
	now     func() time.Time
}

// NewEditorService creates a new editor service.
// A nil loader registry selects the built-in loaders.
func NewEditorService(
	buffers driven.BufferStore,
	matches driven.MatchStateStore,
	loaderRegistry driven.LoaderRegistry,
) *EditorService {
	if loaderRegistry == nil {
		loaderRegistry = loaders.DefaultRegistry()
	}
	return &EditorService{
		buffers: buffers,
		matches: matches,
		loaders: loaderRegistry,
		now:     time.Now,
	}
}

// Load replaces the buffer with text.
func (s *EditorService) Load(ctx context.Context, text, source string) (*domain.TextBuffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	buf := &domain.TextBuffer{
		ID:        uuid.New().String(),
		Source:    source,
		Original:  text,
		Current:   text,
		LoadedAt:  now,
		UpdatedAt: now,
	}

	if err := s.buffers.Save(ctx, buf); err != nil {
		return nil, fmt.Errorf("save buffer: %w", err)
	}
	if err := s.record(ctx, buf, ReasonLoad); err != nil {
		return nil, err
	}
	if err := s.matches.ClearMatches(ctx); err != nil {
		return nil, fmt.Errorf("clear matches: %w", err)
	}

	logger.Debug("loaded %d bytes from %s", len(text), source)
	return buf, nil
}

// LoadFile reads path, converts it to text with the matching loader and loads it.
func (s *EditorService) LoadFile(ctx context.Context, path string) (*domain.TextBuffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	mimeType := loaders.DetectMIME(path, content)
	logger.Debug("loading %s as %s", path, mimeType)

	text, err := s.loaders.Load(ctx, mimeType, content)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s.Load(ctx, text, path)
}

// Buffer returns the active buffer.
func (s *EditorService) Buffer(ctx context.Context) (*domain.TextBuffer, error) {
	return s.buffers.Active(ctx)
}

// SetText replaces the working text and records reason.
func (s *EditorService) SetText(ctx context.Context, text, reason string) (*domain.TextBuffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = "edit"
	}
	return s.update(ctx, buf, text, reason)
}

// Reset restores the working text to the original snapshot.
func (s *EditorService) Reset(ctx context.Context) (*domain.TextBuffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, buf, buf.Original, ReasonReset)
}

// History returns up to limit revisions of the active buffer, newest first.
func (s *EditorService) History(ctx context.Context, limit int) ([]domain.Revision, error) {
	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}
	return s.buffers.Revisions(ctx, buf.ID, limit)
}

// Find searches the working text and stores the result with a fresh cursor.
func (s *EditorService) Find(
	ctx context.Context, pattern string, useRegex, caseSensitive bool,
) (*domain.MatchSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}

	set, err := matcher.FindString(buf.Current, pattern, useRegex, caseSensitive)
	if err != nil {
		return nil, err
	}

	if err := s.matches.SaveMatches(ctx, set, domain.NewMatchCursor()); err != nil {
		return nil, fmt.Errorf("save matches: %w", err)
	}

	logger.Debug("find %q: %d matches", pattern, set.Count())
	return set, nil
}

// Matches returns the stored search and cursor.
// A search made against different text is discarded and reported as missing.
func (s *EditorService) Matches(ctx context.Context) (*domain.MatchSet, domain.MatchCursor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentMatches(ctx)
}

// Navigate moves the cursor by direction and returns the selected match.
func (s *EditorService) Navigate(ctx context.Context, direction int) (*domain.Match, domain.MatchCursor, error) {
	if direction != 1 && direction != -1 {
		return nil, domain.NewMatchCursor(),
			fmt.Errorf("%w: direction must be +1 or -1, got %d", domain.ErrInvalidInput, direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, cursor, err := s.currentMatches(ctx)
	if err != nil {
		return nil, cursor, err
	}
	if set.Count() == 0 {
		return nil, cursor, nil
	}

	cursor.Navigate(direction, set.Count())
	if err := s.matches.SaveMatches(ctx, set, cursor); err != nil {
		return nil, cursor, fmt.Errorf("save cursor: %w", err)
	}

	m := set.Matches[cursor.Current]
	return &m, cursor, nil
}

// Replace replaces every match, or only the first, in the working text.
func (s *EditorService) Replace(
	ctx context.Context, pattern, replacement string, useRegex, caseSensitive bool, scope domain.ReplaceScope,
) (*domain.ReplaceResult, error) {
	logger.Section("Replace")

	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}

	res, err := replacer.Scoped(buf.Current, pattern, replacement, useRegex, caseSensitive, scope)
	if err != nil {
		return nil, err
	}

	logger.Debug("replace %q (%s): %d replaced", pattern, scope, res.Count)
	return s.apply(ctx, buf, res, ReasonReplace)
}

// SelectiveReplace replaces the matches at indices.
// Positions refer to a fresh search of the working text.
func (s *EditorService) SelectiveReplace(
	ctx context.Context, pattern, replacement string, indices []int, useRegex, caseSensitive bool,
) (*domain.ReplaceResult, error) {
	logger.Section("Selective Replace")

	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}

	res, err := replacer.Subset(buf.Current, pattern, replacement, indices, useRegex, caseSensitive)
	if err != nil {
		return nil, err
	}

	logger.Debug("selective replace %q at %v: %d replaced", pattern, indices, res.Count)
	return s.apply(ctx, buf, res, ReasonSelective)
}

// ReplaceCurrent replaces the match under the cursor.
func (s *EditorService) ReplaceCurrent(ctx context.Context, replacement string) (*domain.ReplaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, cursor, err := s.currentMatches(ctx)
	if err != nil {
		return nil, err
	}
	if !cursor.HasSelection() || cursor.Current >= set.Count() {
		return nil, fmt.Errorf("%w: no current match selected", domain.ErrInvalidInput)
	}

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}

	res, err := replacer.Subset(buf.Current, set.Pattern, replacement,
		[]int{cursor.Current}, set.UseRegex, set.CaseSensitive)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, buf, res, ReasonCurrent)
}

// apply stores a replacement result. A zero count leaves everything as is.
func (s *EditorService) apply(
	ctx context.Context, buf *domain.TextBuffer, res domain.ReplaceResult, reason string,
) (*domain.ReplaceResult, error) {
	if res.Count == 0 {
		return &res, nil
	}
	if _, err := s.update(ctx, buf, res.Text, reason); err != nil {
		return nil, err
	}
	return &res, nil
}

// update writes text to buf, records a revision and drops the stored search.
// Caller must hold mu.
func (s *EditorService) update(
	ctx context.Context, buf *domain.TextBuffer, text, reason string,
) (*domain.TextBuffer, error) {
	if text == buf.Current {
		return buf, nil
	}

	updated := *buf
	updated.Current = text
	updated.UpdatedAt = s.now()

	if err := s.buffers.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save buffer: %w", err)
	}
	if err := s.record(ctx, &updated, reason); err != nil {
		return nil, err
	}
	if err := s.matches.ClearMatches(ctx); err != nil {
		return nil, fmt.Errorf("clear matches: %w", err)
	}
	return &updated, nil
}

func (s *EditorService) record(ctx context.Context, buf *domain.TextBuffer, reason string) error {
	rev := &domain.Revision{
		ID:        uuid.New().String(),
		BufferID:  buf.ID,
		Reason:    reason,
		Text:      buf.Current,
		CreatedAt: buf.UpdatedAt,
	}
	if err := s.buffers.AddRevision(ctx, rev); err != nil {
		return fmt.Errorf("record revision: %w", err)
	}
	return nil
}

// currentMatches loads the stored search and checks it still describes the
// working text. Caller must hold mu.
func (s *EditorService) currentMatches(ctx context.Context) (*domain.MatchSet, domain.MatchCursor, error) {
	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, domain.NewMatchCursor(), err
	}

	set, cursor, err := s.matches.LoadMatches(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewMatchCursor(), fmt.Errorf("%w: no search, run find first", domain.ErrNotFound)
		}
		return nil, domain.NewMatchCursor(), fmt.Errorf("load matches: %w", err)
	}

	if set.IsStale(buf.Current) {
		logger.Debug("discarding stale search for %q", set.Pattern)
		if err := s.matches.ClearMatches(ctx); err != nil {
			return nil, domain.NewMatchCursor(), fmt.Errorf("clear matches: %w", err)
		}
		return nil, domain.NewMatchCursor(), fmt.Errorf("%w: text changed since the last search", domain.ErrNotFound)
	}

	return set, cursor, nil
}

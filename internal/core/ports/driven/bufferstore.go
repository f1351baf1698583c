package driven

import (
	"context"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// BufferStore persists the active text buffer and its revision history.
// There is at most one active buffer; saving a buffer with a new ID
// replaces it.
type BufferStore interface {
	// Save creates or updates the active buffer.
	Save(ctx context.Context, buf *domain.TextBuffer) error

	// Active returns the active buffer.
	// Returns domain.ErrNoBuffer if nothing has been loaded.
	Active(ctx context.Context) (*domain.TextBuffer, error)

	// AddRevision appends a revision for a buffer.
	AddRevision(ctx context.Context, rev *domain.Revision) error

	// Revisions returns up to limit revisions for a buffer, newest first.
	// A limit of zero or less returns all revisions.
	Revisions(ctx context.Context, bufferID string, limit int) ([]domain.Revision, error)
}

// MatchStateStore persists the last MatchSet and cursor so navigation
// survives across CLI invocations.
type MatchStateStore interface {
	// SaveMatches stores the match set and cursor.
	SaveMatches(ctx context.Context, set *domain.MatchSet, cursor domain.MatchCursor) error

	// LoadMatches returns the stored match set and cursor.
	// Returns domain.ErrNotFound when no search has been stored.
	LoadMatches(ctx context.Context) (*domain.MatchSet, domain.MatchCursor, error)

	// ClearMatches discards the stored match set.
	ClearMatches(ctx context.Context) error
}

package driving

import (
	"context"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// EditorService owns the text buffer, the last search and the match cursor.
// It is used by the TUI, CLI, and MCP adapters.
type EditorService interface {
	// Load replaces the buffer with text. Original and Current both become
	// text and any stored search is discarded.
	Load(ctx context.Context, text, source string) (*domain.TextBuffer, error)

	// LoadFile reads a file through the loader registry and loads its text.
	LoadFile(ctx context.Context, path string) (*domain.TextBuffer, error)

	// Buffer returns the active buffer.
	Buffer(ctx context.Context) (*domain.TextBuffer, error)

	// SetText replaces the working text, recording reason in history.
	SetText(ctx context.Context, text, reason string) (*domain.TextBuffer, error)

	// Reset restores the working text to the original snapshot.
	Reset(ctx context.Context) (*domain.TextBuffer, error)

	// History returns recent revisions, newest first.
	History(ctx context.Context, limit int) ([]domain.Revision, error)

	// Find searches the working text and stores the result with a fresh cursor.
	Find(ctx context.Context, pattern string, useRegex, caseSensitive bool) (*domain.MatchSet, error)

	// Matches returns the stored search and cursor.
	// Returns domain.ErrNotFound if there is no search or it is stale.
	Matches(ctx context.Context) (*domain.MatchSet, domain.MatchCursor, error)

	// Navigate moves the cursor by direction (+1 or -1) and returns the
	// selected match. Returns nil when the search has no matches.
	Navigate(ctx context.Context, direction int) (*domain.Match, domain.MatchCursor, error)

	// Replace replaces every match, or only the first, in the working text.
	Replace(ctx context.Context, pattern, replacement string, useRegex, caseSensitive bool, scope domain.ReplaceScope) (*domain.ReplaceResult, error)

	// SelectiveReplace replaces the matches at the given positions.
	SelectiveReplace(ctx context.Context, pattern, replacement string, indices []int, useRegex, caseSensitive bool) (*domain.ReplaceResult, error)

	// ReplaceCurrent replaces the match under the cursor using the stored
	// pattern and flags.
	ReplaceCurrent(ctx context.Context, replacement string) (*domain.ReplaceResult, error)
}

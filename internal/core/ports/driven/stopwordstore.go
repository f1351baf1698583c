package driven

import "context"

// StopwordStore holds the set of tokens excluded from frequency analysis.
// Words are stored exactly as given; membership is an exact string match.
// Every operation is idempotent and implementations must be safe for
// concurrent use.
type StopwordStore interface {
	// Add inserts words. Existing words are ignored.
	Add(ctx context.Context, words ...string) error

	// Remove deletes words. Missing words are ignored.
	Remove(ctx context.Context, words ...string) error

	// Clear deletes every word.
	Clear(ctx context.Context) error

	// List returns all words sorted ascending.
	List(ctx context.Context) ([]string, error)

	// Contains reports whether word is in the set.
	Contains(ctx context.Context, word string) (bool, error)

	// Count returns the number of words.
	Count(ctx context.Context) (int, error)
}

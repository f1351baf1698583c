package driving

import "context"

// StopwordService manages the stopword set.
type StopwordService interface {
	// Add parses input into words and adds them. Returns the words that
	// were not already present.
	Add(ctx context.Context, input string) ([]string, error)

	// Remove parses input into words and removes them. Returns the words removed.
	Remove(ctx context.Context, input string) ([]string, error)

	// Clear removes every stopword.
	Clear(ctx context.Context) error

	// List returns all stopwords sorted ascending.
	List(ctx context.Context) ([]string, error)

	// Seed adds the built-in stopwords for lang (en, zh or all). Returns
	// how many were new.
	Seed(ctx context.Context, lang string) (int, error)
}

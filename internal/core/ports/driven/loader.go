package driven

import "context"

// Loader extracts plain text from file content.
// Each loader handles specific MIME types (e.g., HTML, Markdown).
type Loader interface {
	// SupportedMIMETypes returns the MIME types this loader handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific loaders should return 50-89.
	// Fallback loaders should return 1-9.
	Priority() int

	// Load converts content into text.
	Load(ctx context.Context, content []byte) (string, error)
}

// LoaderRegistry selects the loader for a MIME type.
type LoaderRegistry interface {
	// Register adds a loader.
	Register(l Loader)

	// Get returns the highest priority loader for mimeType.
	// Returns domain.ErrUnsupportedType when none matches.
	Get(mimeType string) (Loader, error)

	// Load selects a loader and converts content.
	Load(ctx context.Context, mimeType string, content []byte) (string, error)
}

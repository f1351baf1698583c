package driving

import (
	"context"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// NormaliseService cleans up the working text.
type NormaliseService interface {
	// Preview returns the normalised working text without changing the buffer.
	Preview(ctx context.Context, opts domain.NormaliseOptions) (string, error)

	// Apply normalises the working text and stores the result.
	Apply(ctx context.Context, opts domain.NormaliseOptions) (*domain.TextBuffer, error)

	// Defaults returns the options built from the configured default steps.
	Defaults() domain.NormaliseOptions
}

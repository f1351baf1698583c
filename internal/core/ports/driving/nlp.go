package driving

import (
	"context"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// NLPService exposes the NLP backend over the working text.
// Every method returns domain.ErrNLPUnavailable when no backend is configured
// and domain.ErrEmptyInput when the working text is blank.
type NLPService interface {
	// Entities extracts named entities.
	Entities(ctx context.Context, opts domain.EntityOptions) ([]domain.Entity, error)

	// Sentiment analyses sentiment.
	Sentiment(ctx context.Context) (*domain.SentimentResult, error)

	// Syntax analyses sentence structure.
	Syntax(ctx context.Context) (*domain.SyntaxResult, error)

	// Rewrite rewrites the working text, segment by segment when requested.
	Rewrite(ctx context.Context, opts domain.RewriteOptions) (*domain.RewriteResult, error)

	// Capabilities reports backend features.
	Capabilities(ctx context.Context) (*domain.Capabilities, error)

	// Available reports whether a backend is configured.
	Available() bool
}

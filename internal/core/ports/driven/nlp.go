package driven

import (
	"context"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// NLPBackend provides language analysis from an external service.
// This is an optional service - when nil, NLP features return
// domain.ErrNLPUnavailable.
type NLPBackend interface {
	// ExtractEntities returns the named entities in text.
	ExtractEntities(ctx context.Context, text string, opts domain.EntityOptions) ([]domain.Entity, error)

	// AnalyzeSentiment returns the aggregate sentiment of text.
	AnalyzeSentiment(ctx context.Context, text string) (*domain.SentimentResult, error)

	// AnalyzeSyntax returns per-sentence token analysis.
	AnalyzeSyntax(ctx context.Context, text string) (*domain.SyntaxResult, error)

	// Segment tokenizes text with the named backend method.
	Segment(ctx context.Context, text, method string) ([]string, error)

	// Capabilities reports which features the backend offers.
	Capabilities(ctx context.Context) (*domain.Capabilities, error)

	// Ping validates the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// Rewriter rewrites text in a requested style.
// This is an optional service - when nil, rewrite is disabled.
//
// Implementations may include:
//   - The NLP backend's rewrite endpoint
//   - Ollama (local models)
type Rewriter interface {
	// Rewrite returns text rewritten according to opts.
	// Segmentation is handled by the caller; implementations rewrite
	// the text they are given as one unit.
	Rewrite(ctx context.Context, text string, opts domain.RewriteOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error
}

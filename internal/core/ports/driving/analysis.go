package driving

import (
	"context"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// AnalysisService computes statistics over the working text.
type AnalysisService interface {
	// WordFrequency ranks the tokens of the working text.
	WordFrequency(ctx context.Context, opts domain.FrequencyOptions) ([]domain.WordCount, error)

	// Summarise extracts a summary of the working text.
	Summarise(ctx context.Context, req domain.SummaryRequest) (string, error)

	// Stats describes the working text.
	Stats(ctx context.Context) (*domain.TextStats, error)
}

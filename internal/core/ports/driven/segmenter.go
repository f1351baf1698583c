package driven

import (
	"context"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// Segmenter splits text into word tokens.
type Segmenter interface {
	// Name returns the segmentation method the segmenter implements.
	Name() domain.SegmentationMethod

	// Segment returns the tokens of text in order of appearance.
	Segment(ctx context.Context, text string) ([]string, error)
}

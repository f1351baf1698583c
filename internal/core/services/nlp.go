package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/textdesk/internal/chunker"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
	"github.com/custodia-labs/textdesk/internal/logger"
)

// Ensure NLPService implements the interface.
var _ driving.NLPService = (*NLPService)(nil)

// NLPService sends the working text to the NLP backend and rewriter.
// Either collaborator may be nil when it is not configured.
type NLPService struct {
	editor   driving.EditorService
	backend  driven.NLPBackend
	rewriter driven.Rewriter
}

// NewNLPService creates a new NLP service.
func NewNLPService(editor driving.EditorService, backend driven.NLPBackend, rewriter driven.Rewriter) *NLPService {
	return &NLPService{
		editor:   editor,
		backend:  backend,
		rewriter: rewriter,
	}
}

// Available reports whether an NLP backend is configured.
func (s *NLPService) Available() bool {
	return s.backend != nil
}

// Entities extracts named entities from the working text.
func (s *NLPService) Entities(ctx context.Context, opts domain.EntityOptions) ([]domain.Entity, error) {
	text, err := s.backendText(ctx)
	if err != nil {
		return nil, err
	}
	entities, err := s.backend.ExtractEntities(ctx, text, opts)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}
	logger.Debug("%d entities", len(entities))
	return entities, nil
}

// Sentiment classifies the working text.
func (s *NLPService) Sentiment(ctx context.Context) (*domain.SentimentResult, error) {
	text, err := s.backendText(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.backend.AnalyzeSentiment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyze sentiment: %w", err)
	}
	return result, nil
}

// Syntax analyses the sentence structure of the working text.
func (s *NLPService) Syntax(ctx context.Context) (*domain.SyntaxResult, error) {
	text, err := s.backendText(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.backend.AnalyzeSyntax(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyze syntax: %w", err)
	}
	logger.Debug("%d sentences, %d tokens", len(result.Sentences), result.TokenCount())
	return result, nil
}

// Rewrite rewrites the working text. The buffer is not changed.
// In segment mode the text is split into bounded segments that are
// rewritten one at a time and joined back with their separators.
func (s *NLPService) Rewrite(ctx context.Context, opts domain.RewriteOptions) (*domain.RewriteResult, error) {
	logger.Section("Rewrite")

	if s.rewriter == nil {
		return nil, fmt.Errorf("%w: no rewrite provider configured", domain.ErrNLPUnavailable)
	}
	text, err := s.text(ctx)
	if err != nil {
		return nil, err
	}

	if !opts.SegmentMode {
		out, err := s.rewriter.Rewrite(ctx, text, opts)
		if err != nil {
			return nil, fmt.Errorf("rewrite: %w", err)
		}
		return &domain.RewriteResult{Text: out, Segments: 1, Model: s.rewriter.ModelName()}, nil
	}

	maxLen := opts.MaxSegmentLength
	if maxLen <= 0 {
		maxLen = domain.DefaultMaxSegmentLength
	}
	segs := chunker.New(chunker.WithMaxLength(maxLen)).Split(text)
	logger.Debug("rewriting %d segments of at most %d characters", len(segs), maxLen)

	for i := range segs {
		out, err := s.rewriter.Rewrite(ctx, segs[i].Content, opts)
		if err != nil {
			return nil, fmt.Errorf("rewrite segment %d/%d: %w", i+1, len(segs), err)
		}
		segs[i].Content = out
	}

	return &domain.RewriteResult{
		Text:     chunker.Join(segs),
		Segments: len(segs),
		Model:    s.rewriter.ModelName(),
	}, nil
}

// Capabilities reports the features offered by the backend.
// Rewrite is reported when any rewrite provider is configured.
func (s *NLPService) Capabilities(ctx context.Context) (*domain.Capabilities, error) {
	if s.backend == nil {
		if s.rewriter == nil {
			return nil, fmt.Errorf("%w: no backend configured", domain.ErrNLPUnavailable)
		}
		return &domain.Capabilities{Rewrite: true, Models: []string{s.rewriter.ModelName()}}, nil
	}

	caps, err := s.backend.Capabilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("capabilities: %w", err)
	}
	if s.rewriter != nil {
		caps.Rewrite = true
	}
	return caps, nil
}

// backendText checks a backend exists and returns the working text.
func (s *NLPService) backendText(ctx context.Context) (string, error) {
	if s.backend == nil {
		return "", fmt.Errorf("%w: set backend.url to enable NLP features", domain.ErrNLPUnavailable)
	}
	return s.text(ctx)
}

func (s *NLPService) text(ctx context.Context) (string, error) {
	buf, err := s.editor.Buffer(ctx)
	if err != nil {
		return "", err
	}
	if buf.IsBlank() {
		return "", fmt.Errorf("%w: buffer is empty", domain.ErrEmptyInput)
	}
	return buf.Current, nil
}

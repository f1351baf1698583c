package cli

import (
	"context"
	"strings"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// mockNLPBackend returns canned results and records the last text seen.
type mockNLPBackend struct {
	entities  []domain.Entity
	sentiment *domain.SentimentResult
	syntax    *domain.SyntaxResult
	caps      *domain.Capabilities
	err       error
	lastText  string
	lastOpts  domain.EntityOptions
}

func (m *mockNLPBackend) ExtractEntities(_ context.Context, text string, opts domain.EntityOptions) ([]domain.Entity, error) {
	m.lastText = text
	m.lastOpts = opts
	return m.entities, m.err
}

func (m *mockNLPBackend) AnalyzeSentiment(_ context.Context, text string) (*domain.SentimentResult, error) {
	m.lastText = text
	return m.sentiment, m.err
}

func (m *mockNLPBackend) AnalyzeSyntax(_ context.Context, text string) (*domain.SyntaxResult, error) {
	m.lastText = text
	return m.syntax, m.err
}

func (m *mockNLPBackend) Segment(_ context.Context, text, _ string) ([]string, error) {
	return strings.Fields(text), m.err
}

func (m *mockNLPBackend) Capabilities(_ context.Context) (*domain.Capabilities, error) {
	if m.caps == nil {
		return &domain.Capabilities{}, m.err
	}
	c := *m.caps
	return &c, m.err
}

func (m *mockNLPBackend) Ping(_ context.Context) error { return m.err }

func (m *mockNLPBackend) Close() error { return nil }

// upperRewriter upper-cases every segment it is given.
type upperRewriter struct {
	calls int
}

func (r *upperRewriter) Rewrite(_ context.Context, text string, _ domain.RewriteOptions) (string, error) {
	r.calls++
	return strings.ToUpper(text), nil
}

func (r *upperRewriter) ModelName() string { return "upper-1" }

func (r *upperRewriter) Ping(_ context.Context) error { return nil }

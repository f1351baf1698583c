package frequency

import (
	"context"
	"sort"

	"github.com/custodia-labs/textdesk/internal/core/domain"
)

// mockStopwordStore is a minimal in-memory stopword store for tests.
type mockStopwordStore struct {
	words   map[string]struct{}
	listErr error
}

func newMockStopwordStore(words ...string) *mockStopwordStore {
	m := &mockStopwordStore{words: make(map[string]struct{})}
	for _, w := range words {
		m.words[w] = struct{}{}
	}
	return m
}

func (m *mockStopwordStore) Add(_ context.Context, words ...string) error {
	for _, w := range words {
		m.words[w] = struct{}{}
	}
	return nil
}

func (m *mockStopwordStore) Remove(_ context.Context, words ...string) error {
	for _, w := range words {
		delete(m.words, w)
	}
	return nil
}

func (m *mockStopwordStore) Clear(_ context.Context) error {
	m.words = make(map[string]struct{})
	return nil
}

func (m *mockStopwordStore) List(_ context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]string, 0, len(m.words))
	for w := range m.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

func (m *mockStopwordStore) Contains(_ context.Context, word string) (bool, error) {
	_, ok := m.words[word]
	return ok, nil
}

func (m *mockStopwordStore) Count(_ context.Context) (int, error) {
	return len(m.words), nil
}

// mockBackend implements driven.NLPBackend for segmentation tests.
type mockBackend struct {
	tokens     []string
	err        error
	lastMethod string
}

func (m *mockBackend) ExtractEntities(context.Context, string, domain.EntityOptions) ([]domain.Entity, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockBackend) AnalyzeSentiment(context.Context, string) (*domain.SentimentResult, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockBackend) AnalyzeSyntax(context.Context, string) (*domain.SyntaxResult, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockBackend) Segment(_ context.Context, _ string, method string) ([]string, error) {
	m.lastMethod = method
	return m.tokens, m.err
}

func (m *mockBackend) Capabilities(context.Context) (*domain.Capabilities, error) {
	return &domain.Capabilities{Segmentation: true}, nil
}

func (m *mockBackend) Ping(context.Context) error { return nil }

func (m *mockBackend) Close() error { return nil }

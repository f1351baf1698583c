package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

var errStore = errors.New("store unavailable")

// --- Mock implementations ---

// mockNLPBackend implements driven.NLPBackend for testing.
type mockNLPBackend struct {
	entities  []domain.Entity
	sentiment *domain.SentimentResult
	syntax    *domain.SyntaxResult
	caps      *domain.Capabilities
	err       error

	mu       sync.Mutex
	lastText string
	lastOpts domain.EntityOptions
}

func (m *mockNLPBackend) record(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastText = text
}

func (m *mockNLPBackend) ExtractEntities(_ context.Context, text string, opts domain.EntityOptions) ([]domain.Entity, error) {
	m.record(text)
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.entities, nil
}

func (m *mockNLPBackend) AnalyzeSentiment(_ context.Context, text string) (*domain.SentimentResult, error) {
	m.record(text)
	if m.err != nil {
		return nil, m.err
	}
	return m.sentiment, nil
}

func (m *mockNLPBackend) AnalyzeSyntax(_ context.Context, text string) (*domain.SyntaxResult, error) {
	m.record(text)
	if m.err != nil {
		return nil, m.err
	}
	return m.syntax, nil
}

func (m *mockNLPBackend) Segment(_ context.Context, text, _ string) ([]string, error) {
	m.record(text)
	if m.err != nil {
		return nil, m.err
	}
	return strings.Fields(text), nil
}

func (m *mockNLPBackend) Capabilities(_ context.Context) (*domain.Capabilities, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.caps == nil {
		return &domain.Capabilities{}, nil
	}
	c := *m.caps
	return &c, nil
}

func (m *mockNLPBackend) Ping(_ context.Context) error {
	return m.err
}

func (m *mockNLPBackend) Close() error {
	return nil
}

// mockRewriter implements driven.Rewriter by upper-casing its input.
type mockRewriter struct {
	err    error
	failAt int

	mu     sync.Mutex
	inputs []string
}

func (m *mockRewriter) Rewrite(_ context.Context, text string, _ domain.RewriteOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, text)
	if m.err != nil && len(m.inputs) >= m.failAt {
		return "", m.err
	}
	return strings.ToUpper(text), nil
}

func (m *mockRewriter) ModelName() string {
	return "mock"
}

func (m *mockRewriter) Ping(_ context.Context) error {
	return nil
}

// failingBufferStore wraps a memory store and fails Save after the
// first failAfter calls.
type failingBufferStore struct {
	*memory.BufferStore
	failAfter int
	saves     int
}

func (f *failingBufferStore) Save(ctx context.Context, buf *domain.TextBuffer) error {
	f.saves++
	if f.saves > f.failAfter {
		return errStore
	}
	return f.BufferStore.Save(ctx, buf)
}

// failingStopwordStore fails every call.
type failingStopwordStore struct{}

func (failingStopwordStore) Add(context.Context, ...string) error    { return errStore }
func (failingStopwordStore) Remove(context.Context, ...string) error { return errStore }
func (failingStopwordStore) Clear(context.Context) error             { return errStore }
func (failingStopwordStore) List(context.Context) ([]string, error)  { return nil, errStore }
func (failingStopwordStore) Contains(context.Context, string) (bool, error) {
	return false, errStore
}
func (failingStopwordStore) Count(context.Context) (int, error) { return 0, errStore }

var (
	_ driven.NLPBackend    = (*mockNLPBackend)(nil)
	_ driven.Rewriter      = (*mockRewriter)(nil)
	_ driven.BufferStore   = (*failingBufferStore)(nil)
	_ driven.StopwordStore = failingStopwordStore{}
)

// newTestEditor returns an editor backed by memory stores.
func newTestEditor() (*EditorService, *memory.BufferStore) {
	store := memory.NewBufferStore()
	return NewEditorService(store, store, nil), store
}

package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/services"
	"github.com/custodia-labs/textdesk/internal/frequency"
)

// newTestPorts wires real services over in-memory stores.
func newTestPorts() *Ports {
	buffers := memory.NewBufferStore()
	stopwords := memory.NewStopwordStore()
	settings := services.NewSettingsService(memory.NewConfigStore())
	editor := services.NewEditorService(buffers, buffers, nil)

	return &Ports{
		Editor:    editor,
		Analysis:  services.NewAnalysisService(buffers, frequency.New(stopwords, nil), settings),
		Stopwords: services.NewStopwordService(stopwords),
		Normalise: services.NewNormaliseService(editor, settings),
	}
}

// newLoadedServer returns a server whose buffer holds text.
func newLoadedServer(t *testing.T, text string) *Server {
	t.Helper()
	ports := newTestPorts()
	_, err := ports.Editor.Load(context.Background(), text, "test")
	require.NoError(t, err)
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

// mockAnalysisService is a mock implementation of driving.AnalysisService.
type mockAnalysisService struct {
	counts   []domain.WordCount
	summary  string
	stats    *domain.TextStats
	err      error
	lastOpts domain.FrequencyOptions
	lastReq  domain.SummaryRequest
}

func (m *mockAnalysisService) WordFrequency(_ context.Context, opts domain.FrequencyOptions) ([]domain.WordCount, error) {
	m.lastOpts = opts
	return m.counts, m.err
}

func (m *mockAnalysisService) Summarise(_ context.Context, req domain.SummaryRequest) (string, error) {
	m.lastReq = req
	return m.summary, m.err
}

func (m *mockAnalysisService) Stats(_ context.Context) (*domain.TextStats, error) {
	return m.stats, m.err
}

// mockStopwordService is a mock implementation of driving.StopwordService.
type mockStopwordService struct {
	words []string
	err   error
}

func (m *mockStopwordService) Add(_ context.Context, _ string) ([]string, error) {
	return nil, m.err
}

func (m *mockStopwordService) Remove(_ context.Context, _ string) ([]string, error) {
	return nil, m.err
}

func (m *mockStopwordService) Clear(_ context.Context) error {
	return m.err
}

func (m *mockStopwordService) List(_ context.Context) ([]string, error) {
	return m.words, m.err
}

func (m *mockStopwordService) Seed(_ context.Context, _ string) (int, error) {
	return 0, m.err
}

package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
	"github.com/custodia-labs/textdesk/internal/frequency"
	"github.com/custodia-labs/textdesk/internal/logger"
	"github.com/custodia-labs/textdesk/internal/summariser"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs read-only analyses over the working text.
type AnalysisService struct {
	buffers  driven.BufferStore
	analyzer *frequency.Analyzer
	settings driving.SettingsService
}

// NewAnalysisService creates a new analysis service.
// A nil settings service uses the built-in defaults.
func NewAnalysisService(
	buffers driven.BufferStore,
	analyzer *frequency.Analyzer,
	settings driving.SettingsService,
) *AnalysisService {
	return &AnalysisService{
		buffers:  buffers,
		analyzer: analyzer,
		settings: settings,
	}
}

// WordFrequency ranks the tokens of the working text.
func (s *AnalysisService) WordFrequency(ctx context.Context, opts domain.FrequencyOptions) ([]domain.WordCount, error) {
	logger.Section("Word Frequency")

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}

	if opts.TopN <= 0 {
		opts.TopN = s.appSettings().Frequency.TopN
	}

	counts, err := s.analyzer.Analyze(ctx, buf.Current, opts)
	if err != nil {
		return nil, fmt.Errorf("word frequency: %w", err)
	}
	logger.Debug("%d tokens ranked", len(counts))
	return counts, nil
}

// Summarise builds an extractive summary of the working text.
// A zero sentence count or empty method takes the configured default.
func (s *AnalysisService) Summarise(ctx context.Context, req domain.SummaryRequest) (string, error) {
	logger.Section("Summary")

	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return "", err
	}
	if buf.IsBlank() {
		return "", fmt.Errorf("%w: buffer is empty", domain.ErrEmptyInput)
	}

	defaults := s.appSettings().Summary
	if req.SentenceCount == 0 {
		req.SentenceCount = defaults.Sentences
	}
	if req.Method == "" {
		req.Method = defaults.Method
	}

	return summariser.Summarise(buf.Current, req)
}

// Stats computes character, line, sentence and word statistics.
func (s *AnalysisService) Stats(ctx context.Context) (*domain.TextStats, error) {
	buf, err := s.buffers.Active(ctx)
	if err != nil {
		return nil, err
	}
	if buf.IsBlank() {
		return nil, fmt.Errorf("%w: buffer is empty", domain.ErrEmptyInput)
	}

	text := buf.Current
	stats := &domain.TextStats{
		Characters:         utf8.RuneCountInString(text),
		CharactersNoSpaces: countNonSpace(text),
		Lines:              strings.Count(text, "\n") + 1,
		Paragraphs:         countParagraphs(text),
		Sentences:          len(summariser.SplitSentences(text)),
	}

	table, err := s.analyzer.Table(ctx, text, domain.DefaultFrequencyOptions())
	if err != nil {
		return nil, fmt.Errorf("frequency table: %w", err)
	}
	stats.Words = table.Total()
	stats.UniqueWords = table.Unique()
	stats.MaxFrequency = table.Max()
	if stats.UniqueWords > 0 {
		stats.AverageFrequency = round2(float64(stats.Words) / float64(stats.UniqueWords))
	}
	if stats.Sentences > 0 {
		stats.AverageSentenceLength = round2(float64(stats.Characters) / float64(stats.Sentences))
	}

	return stats, nil
}

func (s *AnalysisService) appSettings() domain.AppSettings {
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			return *settings
		}
	}
	return domain.DefaultAppSettings()
}

func countNonSpace(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func countParagraphs(text string) int {
	n := 0
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if strings.TrimSpace(block) != "" {
			n++
		}
	}
	return n
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
	"github.com/custodia-labs/textdesk/internal/frequency"
	"github.com/custodia-labs/textdesk/internal/logger"
)

// Ensure StopwordService implements the interface.
var _ driving.StopwordService = (*StopwordService)(nil)

// StopwordService manages the stopword set from free-form input.
type StopwordService struct {
	store driven.StopwordStore
}

// NewStopwordService creates a new stopword service.
func NewStopwordService(store driven.StopwordStore) *StopwordService {
	return &StopwordService{store: store}
}

// ParseWords splits input on commas, semicolons (ASCII and full-width)
// and whitespace, dropping empty entries.
func ParseWords(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		switch r {
		case ',', '，', ';', '；':
			return true
		}
		return unicode.IsSpace(r)
	})
	return fields
}

// Add parses input and adds the words. Returns the words that were not
// already present, in input order.
func (s *StopwordService) Add(ctx context.Context, input string) ([]string, error) {
	words, err := parseRequired(input)
	if err != nil {
		return nil, err
	}

	added := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		ok, err := s.store.Contains(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("check stopword: %w", err)
		}
		if !ok {
			added = append(added, w)
		}
	}
	if len(added) == 0 {
		return added, nil
	}
	if err := s.store.Add(ctx, added...); err != nil {
		return nil, fmt.Errorf("add stopwords: %w", err)
	}
	logger.Debug("added %d stopwords", len(added))
	return added, nil
}

// Remove parses input and removes the words. Returns the parsed words.
func (s *StopwordService) Remove(ctx context.Context, input string) ([]string, error) {
	words, err := parseRequired(input)
	if err != nil {
		return nil, err
	}
	if err := s.store.Remove(ctx, words...); err != nil {
		return nil, fmt.Errorf("remove stopwords: %w", err)
	}
	logger.Debug("removed %d stopwords", len(words))
	return words, nil
}

// Clear removes every stopword.
func (s *StopwordService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear stopwords: %w", err)
	}
	return nil
}

// List returns the stopwords in ascending order.
func (s *StopwordService) List(ctx context.Context) ([]string, error) {
	words, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stopwords: %w", err)
	}
	return words, nil
}

// Seed adds the built-in stopwords for lang (en, zh or all) and returns
// how many were new. An empty lang means en.
func (s *StopwordService) Seed(ctx context.Context, lang string) (int, error) {
	words, ok := frequency.BuiltinStopwords(lang)
	if !ok {
		return 0, fmt.Errorf("%w: unknown stopword language %q (want en, zh or all)", domain.ErrInvalidInput, lang)
	}
	before, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count stopwords: %w", err)
	}
	if err := s.store.Add(ctx, words...); err != nil {
		return 0, fmt.Errorf("seed stopwords: %w", err)
	}
	after, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count stopwords: %w", err)
	}
	logger.Info("seeded %d built-in stopwords", after-before)
	return after - before, nil
}

func parseRequired(input string) ([]string, error) {
	words := ParseWords(input)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no stopwords given", domain.ErrInvalidInput)
	}
	return words, nil
}

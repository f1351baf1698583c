package services

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
	"github.com/custodia-labs/textdesk/internal/normaliser"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBackendURL        = "backend.url"
	keyBackendTimeout    = "backend.timeout_seconds"
	keyBackendRate       = "backend.rate_per_second"
	keyRewriteProvider   = "rewrite.provider"
	keyRewriteModel      = "rewrite.model"
	keyRewriteBaseURL    = "rewrite.base_url"
	keyFreqTopN          = "frequency.top_n"
	keyFreqSegmentation  = "frequency.segmentation"
	keyFreqStopwords     = "frequency.exclude_stopwords"
	keySummaryMethod     = "summary.method"
	keySummarySentences  = "summary.sentences"
	keyStorageMode       = "storage.mode"
	keyNormaliseSteps    = "normalise.steps"
	defaultOllamaBaseURL = "http://localhost:11434"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Backend: domain.BackendSettings{
			URL:            s.configStore.GetString(keyBackendURL),
			TimeoutSeconds: s.getInt(keyBackendTimeout, defaults.Backend.TimeoutSeconds),
			RatePerSecond:  s.getFloat(keyBackendRate, defaults.Backend.RatePerSecond),
		},
		Rewrite: domain.RewriteSettings{
			Provider: s.getRewriteProvider(defaults.Rewrite.Provider),
			Model:    s.configStore.GetString(keyRewriteModel),
			BaseURL:  s.configStore.GetString(keyRewriteBaseURL),
		},
		Frequency: domain.FrequencySettings{
			TopN:             s.getInt(keyFreqTopN, defaults.Frequency.TopN),
			Segmentation:     domain.SegmentationMethod(s.getString(keyFreqSegmentation, defaults.Frequency.Segmentation.String())),
			ExcludeStopwords: s.getBool(keyFreqStopwords, defaults.Frequency.ExcludeStopwords),
		},
		Summary: domain.SummarySettings{
			Method:    s.getSummaryMethod(defaults.Summary.Method),
			Sentences: s.getInt(keySummarySentences, defaults.Summary.Sentences),
		},
		Storage: domain.StorageSettings{
			Mode: s.getStorageMode(defaults.Storage.Mode),
		},
		Normalise: domain.NormaliseSettings{
			Steps: defaults.Normalise.Steps,
		},
	}

	if steps := s.configStore.GetStringSlice(keyNormaliseSteps); len(steps) > 0 {
		settings.Normalise.Steps = steps
	}

	if settings.Rewrite.Provider == domain.RewriteProviderOllama {
		if settings.Rewrite.Model == "" {
			settings.Rewrite.Model = domain.DefaultRewriteModels()[domain.RewriteProviderOllama]
		}
		if settings.Rewrite.BaseURL == "" {
			settings.Rewrite.BaseURL = defaultOllamaBaseURL
		}
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyBackendURL, settings.Backend.URL},
		{keyBackendTimeout, settings.Backend.TimeoutSeconds},
		{keyBackendRate, settings.Backend.RatePerSecond},
		{keyRewriteProvider, settings.Rewrite.Provider.String()},
		{keyRewriteModel, settings.Rewrite.Model},
		{keyRewriteBaseURL, settings.Rewrite.BaseURL},
		{keyFreqTopN, settings.Frequency.TopN},
		{keyFreqSegmentation, settings.Frequency.Segmentation.String()},
		{keyFreqStopwords, settings.Frequency.ExcludeStopwords},
		{keySummaryMethod, settings.Summary.Method.String()},
		{keySummarySentences, settings.Summary.Sentences},
		{keyStorageMode, settings.Storage.Mode.String()},
		{keyNormaliseSteps, settings.Normalise.Steps},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Keys returns the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyBackendURL, keyBackendTimeout, keyBackendRate,
		keyRewriteProvider, keyRewriteModel, keyRewriteBaseURL,
		keyFreqTopN, keyFreqSegmentation, keyFreqStopwords,
		keySummaryMethod, keySummarySentences,
		keyStorageMode, keyNormaliseSteps,
	}
	sort.Strings(keys)
	return keys
}

// Set parses value for key, validates it and persists the change.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case keyBackendURL, keyRewriteBaseURL:
		if value != "" {
			if err := validateURL(value); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		parsed = value

	case keyRewriteModel:
		parsed = value

	case keyBackendTimeout, keyFreqTopN, keySummarySentences:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = n

	case keyBackendRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = f

	case keyFreqStopwords:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = b

	case keyRewriteProvider:
		if !domain.RewriteProvider(value).IsValid() {
			return fmt.Errorf("%w: rewrite provider %q", domain.ErrUnsupportedType, value)
		}
		parsed = value

	case keyFreqSegmentation:
		if !validSegmentation(domain.SegmentationMethod(value)) {
			return fmt.Errorf("%w: segmentation %q", domain.ErrUnsupportedType, value)
		}
		parsed = value

	case keySummaryMethod:
		if !domain.SummaryMethod(value).IsValid() {
			return fmt.Errorf("%w: summary method %q", domain.ErrUnsupportedType, value)
		}
		parsed = value

	case keyStorageMode:
		if !domain.StorageMode(value).IsValid() {
			return fmt.Errorf("%w: storage mode %q", domain.ErrUnsupportedType, value)
		}
		parsed = value

	case keyNormaliseSteps:
		steps := splitList(value)
		if _, err := normaliser.OptionsFromSteps(steps); err != nil {
			return err
		}
		parsed = steps

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Validate checks that the stored settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Backend.IsConfigured() {
		if err := validateURL(settings.Backend.URL); err != nil {
			return fmt.Errorf("backend.url: %w", err)
		}
	}
	if settings.Backend.TimeoutSeconds < 1 {
		return fmt.Errorf("%w: backend.timeout_seconds must be positive", domain.ErrInvalidInput)
	}
	if settings.Backend.RatePerSecond <= 0 {
		return fmt.Errorf("%w: backend.rate_per_second must be positive", domain.ErrInvalidInput)
	}
	if settings.Rewrite.Provider == domain.RewriteProviderBackend && !settings.Backend.IsConfigured() {
		return fmt.Errorf("%w: rewrite provider %q requires backend.url", domain.ErrInvalidInput, settings.Rewrite.Provider)
	}
	if !validSegmentation(settings.Frequency.Segmentation) {
		return fmt.Errorf("%w: segmentation %q", domain.ErrUnsupportedType, settings.Frequency.Segmentation)
	}
	if settings.Frequency.Segmentation == domain.SegmentationBackend && !settings.Backend.IsConfigured() {
		return fmt.Errorf("%w: backend segmentation requires backend.url", domain.ErrInvalidInput)
	}
	if settings.Frequency.TopN < 1 || settings.Summary.Sentences < 1 {
		return fmt.Errorf("%w: frequency.top_n and summary.sentences must be positive", domain.ErrInvalidInput)
	}
	if _, err := normaliser.OptionsFromSteps(settings.Normalise.Steps); err != nil {
		return fmt.Errorf("normalise.steps: %w", err)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getRewriteProvider(defaultVal domain.RewriteProvider) domain.RewriteProvider {
	p := domain.RewriteProvider(s.configStore.GetString(keyRewriteProvider))
	if !p.IsValid() {
		return defaultVal
	}
	return p
}

func (s *SettingsService) getSummaryMethod(defaultVal domain.SummaryMethod) domain.SummaryMethod {
	m := domain.SummaryMethod(s.configStore.GetString(keySummaryMethod))
	if !m.IsValid() {
		return defaultVal
	}
	return m
}

func (s *SettingsService) getStorageMode(defaultVal domain.StorageMode) domain.StorageMode {
	m := domain.StorageMode(s.configStore.GetString(keyStorageMode))
	if !m.IsValid() {
		return defaultVal
	}
	return m
}

func validSegmentation(m domain.SegmentationMethod) bool {
	switch m {
	case domain.SegmentationWhitespace, domain.SegmentationUnicode, domain.SegmentationBackend:
		return true
	default:
		return false
	}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an http(s) URL", domain.ErrInvalidInput, raw)
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textdesk/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("backend.url", "http://localhost:5000")
	_ = store.Set("backend.rate_per_second", 2.5)
	_ = store.Set("rewrite.provider", "ollama")
	_ = store.Set("summary.method", "position")
	_ = store.Set("frequency.exclude_stopwords", false)
	_ = store.Set("storage.mode", "memory")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", settings.Backend.URL)
	assert.InDelta(t, 2.5, settings.Backend.RatePerSecond, 0.0001)
	assert.Equal(t, domain.RewriteProviderOllama, settings.Rewrite.Provider)
	assert.Equal(t, "llama3.2", settings.Rewrite.Model)
	assert.Equal(t, "http://localhost:11434", settings.Rewrite.BaseURL)
	assert.Equal(t, domain.SummaryPosition, settings.Summary.Method)
	assert.False(t, settings.Frequency.ExcludeStopwords)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Mode)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("rewrite.provider", "invalid_provider")
	_ = store.Set("summary.method", "magic")
	_ = store.Set("storage.mode", "cloud")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Rewrite.Provider, settings.Rewrite.Provider)
	assert.Equal(t, defaults.Summary.Method, settings.Summary.Method)
	assert.Equal(t, defaults.Storage.Mode, settings.Storage.Mode)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Backend.URL = "https://nlp.example.com"
	settings.Frequency.TopN = 50
	settings.Normalise.Steps = []string{"trim_lines"}

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "https://nlp.example.com", store.GetString("backend.url"))
	assert.Equal(t, 50, store.GetInt("frequency.top_n"))
	assert.Equal(t, []string{"trim_lines"}, store.GetStringSlice("normalise.steps"))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *loaded)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    any
		wantErr error
	}{
		{name: "url", key: "backend.url", value: "http://localhost:5000", want: "http://localhost:5000"},
		{name: "clear url", key: "backend.url", value: "", want: ""},
		{name: "bad url", key: "backend.url", value: "localhost", wantErr: domain.ErrInvalidInput},
		{name: "int", key: "frequency.top_n", value: "30", want: 30},
		{name: "zero int", key: "summary.sentences", value: "0", wantErr: domain.ErrInvalidInput},
		{name: "float", key: "backend.rate_per_second", value: "1.5", want: 1.5},
		{name: "bool", key: "frequency.exclude_stopwords", value: "false", want: false},
		{name: "bad bool", key: "frequency.exclude_stopwords", value: "maybe", wantErr: domain.ErrInvalidInput},
		{name: "provider", key: "rewrite.provider", value: "ollama", want: "ollama"},
		{name: "bad provider", key: "rewrite.provider", value: "gpt", wantErr: domain.ErrUnsupportedType},
		{name: "segmentation", key: "frequency.segmentation", value: "unicode", want: "unicode"},
		{name: "bad segmentation", key: "frequency.segmentation", value: "jieba", wantErr: domain.ErrUnsupportedType},
		{name: "summary method", key: "summary.method", value: "frequency", want: "frequency"},
		{name: "storage mode", key: "storage.mode", value: "postgres", wantErr: domain.ErrUnsupportedType},
		{name: "steps", key: "normalise.steps", value: "trim_lines, case:upper", want: []string{"trim_lines", "case:upper"}},
		{name: "bad steps", key: "normalise.steps", value: "trim_lines, explode", wantErr: domain.ErrUnsupportedType},
		{name: "unknown key", key: "search.mode", value: "x", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, exists := store.Get(tt.key)
				assert.False(t, exists)
				return
			}
			require.NoError(t, err)
			got, _ := store.Get(tt.key)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 13)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "backend.url")
	assert.Contains(t, keys, "normalise.steps")
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr bool
	}{
		{name: "defaults", values: nil},
		{name: "backend configured", values: map[string]any{"backend.url": "http://localhost:5000"}},
		{name: "bad backend url", values: map[string]any{"backend.url": "ftp://host"}, wantErr: true},
		{name: "backend rewrite without url", values: map[string]any{"rewrite.provider": "backend"}, wantErr: true},
		{name: "backend segmentation without url", values: map[string]any{"frequency.segmentation": "backend"}, wantErr: true},
		{name: "unknown segmentation", values: map[string]any{"frequency.segmentation": "magic"}, wantErr: true},
		{name: "bad steps", values: map[string]any{"normalise.steps": []string{"nope"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			for k, v := range tt.values {
				require.NoError(t, store.Set(k, v))
			}

			err := NewSettingsService(store).Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

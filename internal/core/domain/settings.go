package domain

const unknownDescription = "Unknown"

// RewriteProvider identifies the service used for text rewriting.
type RewriteProvider string

// Available rewrite providers.
const (
	// RewriteProviderBackend uses the NLP backend's rewrite endpoint.
	RewriteProviderBackend RewriteProvider = "backend"

	// RewriteProviderOllama uses a local Ollama instance.
	RewriteProviderOllama RewriteProvider = "ollama"

	// RewriteProviderNone disables rewriting.
	RewriteProviderNone RewriteProvider = "none"
)

// IsValid returns true if the provider is recognised.
func (p RewriteProvider) IsValid() bool {
	switch p {
	case RewriteProviderBackend, RewriteProviderOllama, RewriteProviderNone:
		return true
	default:
		return false
	}
}

// IsLocal returns true if this provider runs locally.
func (p RewriteProvider) IsLocal() bool {
	return p == RewriteProviderOllama
}

// String returns the string representation.
func (p RewriteProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p RewriteProvider) Description() string {
	switch p {
	case RewriteProviderBackend:
		return "NLP backend (remote)"
	case RewriteProviderOllama:
		return "Ollama (local)"
	case RewriteProviderNone:
		return "Disabled"
	default:
		return unknownDescription
	}
}

// AllRewriteProviders returns all available rewrite providers.
func AllRewriteProviders() []RewriteProvider {
	return []RewriteProvider{RewriteProviderBackend, RewriteProviderOllama, RewriteProviderNone}
}

// StorageMode selects where buffers and stopwords are persisted.
type StorageMode string

// Available storage modes.
const (
	// StorageSQLite persists state in ~/.textdesk/textdesk.db.
	StorageSQLite StorageMode = "sqlite"

	// StorageMemory keeps state for the lifetime of the process.
	StorageMemory StorageMode = "memory"
)

// IsValid returns true if the storage mode is recognised.
func (m StorageMode) IsValid() bool {
	return m == StorageSQLite || m == StorageMemory
}

// String returns the string representation.
func (m StorageMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m StorageMode) Description() string {
	switch m {
	case StorageSQLite:
		return "SQLite (persistent)"
	case StorageMemory:
		return "Memory (per process)"
	default:
		return unknownDescription
	}
}

// BackendSettings holds NLP backend connection configuration.
type BackendSettings struct {
	// URL is the base URL of the backend. Empty disables NLP features.
	URL string

	// TimeoutSeconds bounds every backend request.
	TimeoutSeconds int

	// RatePerSecond throttles outgoing requests.
	RatePerSecond float64
}

// IsConfigured returns true if a backend URL is set.
func (b BackendSettings) IsConfigured() bool {
	return b.URL != ""
}

// RewriteSettings holds rewrite provider configuration.
type RewriteSettings struct {
	// Provider is the rewrite service.
	Provider RewriteProvider

	// Model is the model name (for Ollama).
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string
}

// IsConfigured returns true if a rewrite provider is selected.
func (r RewriteSettings) IsConfigured() bool {
	return r.Provider.IsValid() && r.Provider != RewriteProviderNone
}

// FrequencySettings holds frequency analysis defaults.
type FrequencySettings struct {
	TopN             int
	Segmentation     SegmentationMethod
	ExcludeStopwords bool
}

// SummarySettings holds summary defaults.
type SummarySettings struct {
	Method    SummaryMethod
	Sentences int
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	Mode StorageMode
}

// NormaliseSettings holds the default normaliser steps by name.
type NormaliseSettings struct {
	// Steps is the ordered list of step names enabled by default.
	Steps []string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Backend   BackendSettings
	Rewrite   RewriteSettings
	Frequency FrequencySettings
	Summary   SummarySettings
	Storage   StorageSettings
	Normalise NormaliseSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The NLP backend is left unconfigured; users set backend.url explicitly.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Backend: BackendSettings{
			TimeoutSeconds: 30,
			RatePerSecond:  5,
		},
		Rewrite: RewriteSettings{
			Provider: RewriteProviderNone,
		},
		Frequency: FrequencySettings{
			TopN:             DefaultTopN,
			Segmentation:     SegmentationWhitespace,
			ExcludeStopwords: true,
		},
		Summary: SummarySettings{
			Method:    SummaryHybrid,
			Sentences: DefaultSentenceCount,
		},
		Storage: StorageSettings{
			Mode: StorageSQLite,
		},
		Normalise: NormaliseSettings{
			Steps: []string{"newlines", "trim_lines", "collapse_whitespace", "merge_empty_lines"},
		},
	}
}

// DefaultRewriteModels returns default models for each rewrite provider.
func DefaultRewriteModels() map[RewriteProvider]string {
	return map[RewriteProvider]string{
		RewriteProviderOllama: "llama3.2",
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRewriteProvider_IsValid tests all valid and invalid providers
func TestRewriteProvider_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		provider RewriteProvider
		expected bool
	}{
		{name: "backend is valid", provider: RewriteProviderBackend, expected: true},
		{name: "ollama is valid", provider: RewriteProviderOllama, expected: true},
		{name: "none is valid", provider: RewriteProviderNone, expected: true},
		{name: "empty string is invalid", provider: RewriteProvider(""), expected: false},
		{name: "unknown provider is invalid", provider: RewriteProvider("openai"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.provider.IsValid())
		})
	}
}

func TestRewriteProvider_Description(t *testing.T) {
	for _, p := range AllRewriteProviders() {
		assert.NotEqual(t, unknownDescription, p.Description(), p.String())
	}
	assert.Equal(t, unknownDescription, RewriteProvider("invalid").Description())
}

func TestRewriteProvider_IsLocal(t *testing.T) {
	assert.True(t, RewriteProviderOllama.IsLocal())
	assert.False(t, RewriteProviderBackend.IsLocal())
}

func TestStorageMode_IsValid(t *testing.T) {
	assert.True(t, StorageSQLite.IsValid())
	assert.True(t, StorageMemory.IsValid())
	assert.False(t, StorageMode("postgres").IsValid())
	assert.Equal(t, unknownDescription, StorageMode("postgres").Description())
	assert.Equal(t, "Memory (per process)", StorageMemory.Description())
}

func TestSummaryMethod_IsValid(t *testing.T) {
	for _, m := range AllSummaryMethods() {
		assert.True(t, m.IsValid(), m.String())
		assert.NotEqual(t, unknownDescription, m.Description())
	}
	assert.False(t, SummaryMethod("lexrank").IsValid())
	assert.Equal(t, unknownDescription, SummaryMethod("lexrank").Description())
}

func TestCaseTransform_IsValid(t *testing.T) {
	for _, c := range AllCaseTransforms() {
		assert.True(t, c.IsValid(), c.String())
	}
	assert.True(t, CaseTransform("").IsValid())
	assert.True(t, CaseTransform("").IsNone())
	assert.False(t, CaseTransform("camel").IsValid())
	assert.False(t, CaseUpper.IsNone())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.False(t, s.Backend.IsConfigured())
	assert.Equal(t, 30, s.Backend.TimeoutSeconds)
	assert.False(t, s.Rewrite.IsConfigured())
	assert.Equal(t, DefaultTopN, s.Frequency.TopN)
	assert.Equal(t, SegmentationWhitespace, s.Frequency.Segmentation)
	assert.Equal(t, SummaryHybrid, s.Summary.Method)
	assert.Equal(t, DefaultSentenceCount, s.Summary.Sentences)
	assert.Equal(t, StorageSQLite, s.Storage.Mode)
	require.NotEmpty(t, s.Normalise.Steps)
	assert.Equal(t, "newlines", s.Normalise.Steps[0])
}

func TestRewriteSettings_IsConfigured(t *testing.T) {
	assert.True(t, RewriteSettings{Provider: RewriteProviderOllama}.IsConfigured())
	assert.False(t, RewriteSettings{Provider: RewriteProviderNone}.IsConfigured())
	assert.False(t, RewriteSettings{}.IsConfigured())
}

func TestFrequencyOptions_WithDefaults(t *testing.T) {
	o := FrequencyOptions{}.WithDefaults()
	assert.Equal(t, DefaultTopN, o.TopN)
	assert.Equal(t, 1, o.MinTokenLength)
	assert.Equal(t, SegmentationWhitespace, o.Segmentation)

	o = FrequencyOptions{TopN: 5, MinTokenLength: 3, Segmentation: SegmentationUnicode}.WithDefaults()
	assert.Equal(t, 5, o.TopN)
	assert.Equal(t, 3, o.MinTokenLength)
	assert.Equal(t, SegmentationUnicode, o.Segmentation)
}

func TestSyntaxResult_TokenCount(t *testing.T) {
	var nilResult *SyntaxResult
	assert.Equal(t, 0, nilResult.TokenCount())

	r := &SyntaxResult{Sentences: []SyntaxSentence{
		{Tokens: []SyntaxToken{{Text: "a"}, {Text: "b"}}},
		{Tokens: []SyntaxToken{{Text: "c"}}},
	}}
	assert.Equal(t, 3, r.TokenCount())
}

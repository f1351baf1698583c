// Package ollama provides a text rewriter backed by a local Ollama instance.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

var _ driven.Rewriter = (*Rewriter)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 120 * time.Second
)

// Default rewrite parameters used when options leave them empty.
const (
	DefaultStyle     = "formal"
	DefaultIntensity = "medium"
)

// Fallback prompts used when no PromptStore is configured.
const (
	defaultSystemPrompt  = `You are a careful copy editor. You rewrite text while keeping its meaning, facts and language. You never add commentary.`
	defaultRewritePrompt = `Rewrite the following text in a %s style with %s intensity.
Keep the original language and paragraph breaks. Return ONLY the rewritten text.

Text:
%s

Rewritten:`
)

// temperatures maps intensity to sampling temperature.
var temperatures = map[string]float64{
	"light":  0.2,
	"medium": 0.5,
	"heavy":  0.8,
}

// thinkBlock matches reasoning sections some models emit before the answer.
var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// Config holds configuration for the Ollama rewriter.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Rewriter rewrites text through Ollama's /api/chat endpoint.
type Rewriter struct {
	client      *http.Client
	baseURL     string
	model       string
	promptStore driven.PromptStore
}

// chatRequest is the Ollama /api/chat request format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *options      `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// chatMessage is the Ollama chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the Ollama /api/chat response format.
type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// NewRewriter creates a new Ollama rewriter.
func NewRewriter(cfg Config) *Rewriter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Rewriter{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
	}
}

// SetPromptStore sets the store for user-editable prompts.
// If not set, the rewriter uses the built-in prompts.
func (r *Rewriter) SetPromptStore(store driven.PromptStore) {
	r.promptStore = store
}

// Rewrite asks the model to rewrite text and returns its answer with any
// reasoning blocks removed.
func (r *Rewriter) Rewrite(ctx context.Context, text string, opts domain.RewriteOptions) (string, error) {
	style := opts.Style
	if style == "" {
		style = DefaultStyle
	}
	intensity := opts.Intensity
	if intensity == "" {
		intensity = DefaultIntensity
	}
	temperature, ok := temperatures[intensity]
	if !ok {
		temperature = temperatures[DefaultIntensity]
	}

	system := r.loadPrompt(driven.PromptRewriteSystem, defaultSystemPrompt)
	template := r.loadPrompt(driven.PromptRewrite, defaultRewritePrompt)

	reqBody := chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: fmt.Sprintf(template, style, intensity, text)},
		},
		Stream:  false,
		Options: &options{Temperature: temperature},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: ollama: %w", domain.ErrNLPUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return CleanOutput(chatResp.Message.Content), nil
}

// CleanOutput removes <think> blocks, a dangling unclosed <think> section,
// and surrounding whitespace from model output.
func CleanOutput(s string) string {
	s = thinkBlock.ReplaceAllString(s, "")
	if i := strings.Index(s, "</think>"); i >= 0 {
		s = s[i+len("</think>"):]
	}
	if i := strings.Index(s, "<think>"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (r *Rewriter) loadPrompt(name, fallback string) string {
	if r.promptStore == nil {
		return fallback
	}
	prompt, err := r.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}

// ModelName returns the name of the model being used.
func (r *Rewriter) ModelName() string {
	return r.model
}

// Ping validates Ollama is reachable by checking the /api/tags endpoint.
func (r *Rewriter) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("ollama: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("ollama: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/logger"
)

var (
	_ driven.NLPBackend = (*Client)(nil)
	_ driven.Rewriter   = (*Client)(nil)
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of a failed response is kept.
	maxErrorBody = 512
)

// APIError is returned when the backend answers with success:false or a
// non-2xx status.
type APIError struct {
	Endpoint string
	Status   int
	Message  string
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("nlp backend %s: status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("nlp backend %s: %s", e.Endpoint, e.Message)
}

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend root, e.g. http://localhost:5000.
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RatePerSecond throttles requests (default: 5).
	RatePerSecond float64
}

// Client talks to the NLP backend over JSON/HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *RateLimiter
}

// NewClient creates a backend client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("%w: backend url is required", domain.ErrInvalidInput)
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("%w: backend url must start with http:// or https://", domain.ErrInvalidInput)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: base,
		limiter: NewRateLimiter(cfg.RatePerSecond),
	}, nil
}

// ExtractEntities calls /api/extract_entities.
func (c *Client) ExtractEntities(
	ctx context.Context, text string, opts domain.EntityOptions,
) ([]domain.Entity, error) {
	method := opts.Method
	if method == "" {
		method = "hybrid"
	}

	var resp entitiesResponse
	req := entitiesRequest{Text: text, Method: method, Deduplicate: opts.Deduplicate}
	if err := c.post(ctx, "/api/extract_entities", req, &resp); err != nil {
		return nil, err
	}

	entities := make([]domain.Entity, 0, len(resp.Entities))
	for _, e := range resp.Entities {
		start, end := e.Start, e.End
		if len(e.Positions) > 0 && start == 0 && end == 0 {
			start = e.Positions[0]
			end = start + len(e.Text)
		}
		source := e.Source
		if source == "" {
			source = resp.ModelUsed
		}
		entities = append(entities, domain.Entity{
			Text:       e.Text,
			Label:      e.Label,
			Start:      start,
			End:        end,
			Confidence: e.Confidence,
			Source:     source,
		})
	}
	return entities, nil
}

// AnalyzeSentiment calls /api/analyze_sentiment.
// Only numeric entries of the backend's score map are kept.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (*domain.SentimentResult, error) {
	var resp sentimentResponse
	if err := c.post(ctx, "/api/analyze_sentiment", textRequest{Text: text}, &resp); err != nil {
		return nil, err
	}

	result := &domain.SentimentResult{
		Label:      resp.Sentiment,
		Confidence: resp.Confidence,
		Methods:    resp.MethodsUsed,
		Scores:     make(map[string]float64),
	}
	for name, raw := range resp.Scores {
		var v float64
		if err := json.Unmarshal(raw, &v); err == nil {
			result.Scores[name] = v
		}
	}
	if v, ok := result.Scores["compound"]; ok {
		result.Score = v
	} else {
		result.Score = result.Confidence
	}
	return result, nil
}

// AnalyzeSyntax calls /api/analyze_syntax.
func (c *Client) AnalyzeSyntax(ctx context.Context, text string) (*domain.SyntaxResult, error) {
	var resp syntaxResponse
	if err := c.post(ctx, "/api/analyze_syntax", textRequest{Text: text}, &resp); err != nil {
		return nil, err
	}

	result := &domain.SyntaxResult{Sentences: make([]domain.SyntaxSentence, 0, len(resp.Sentences))}
	for _, s := range resp.Sentences {
		sent := domain.SyntaxSentence{Text: s.Text, Tokens: make([]domain.SyntaxToken, 0, len(s.Words))}
		for _, w := range s.Words {
			sent.Tokens = append(sent.Tokens, domain.SyntaxToken{
				Text:   w.Text,
				Lemma:  w.Lemma,
				POS:    w.POS,
				DepRel: w.DepRel,
				Head:   w.Head,
			})
		}
		result.Sentences = append(result.Sentences, sent)
	}
	return result, nil
}

// Segment calls /api/segment_text and returns the words.
func (c *Client) Segment(ctx context.Context, text, method string) ([]string, error) {
	if method == "" {
		method = "auto"
	}

	var resp segmentResponse
	req := segmentRequest{Text: text, Method: method, Mode: "accurate"}
	if err := c.post(ctx, "/api/segment_text", req, &resp); err != nil {
		return nil, err
	}

	words := make([]string, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		if strings.TrimSpace(s.Word) != "" {
			words = append(words, s.Word)
		}
	}
	return words, nil
}

// Rewrite loads text into the backend and calls /api/intelligent_rewrite.
// The backend rewrites the text it holds, so the two calls always go
// together. Segmentation is left to the caller.
func (c *Client) Rewrite(ctx context.Context, text string, opts domain.RewriteOptions) (string, error) {
	var loaded envelope
	if err := c.post(ctx, "/api/load_text", loadTextRequest{Text: text}, &loaded); err != nil {
		return "", fmt.Errorf("load text: %w", err)
	}

	var resp rewriteResponse
	req := rewriteRequest{
		Style:            opts.Style,
		Intensity:        opts.Intensity,
		SegmentMode:      false,
		MaxSegmentLength: opts.MaxSegmentLength,
	}
	if err := c.post(ctx, "/api/intelligent_rewrite", req, &resp); err != nil {
		return "", err
	}
	return resp.RewrittenText, nil
}

// ModelName identifies the rewriter.
func (c *Client) ModelName() string {
	return "backend"
}

// Capabilities calls /api/nlp_capabilities.
func (c *Client) Capabilities(ctx context.Context) (*domain.Capabilities, error) {
	var resp capabilitiesResponse
	if err := c.get(ctx, "/api/nlp_capabilities", &resp); err != nil {
		return nil, err
	}

	caps := resp.Capabilities
	seen := make(map[string]bool)
	for _, f := range []wireFeature{caps.EntityRecognition, caps.SentimentAnalysis, caps.SyntaxAnalysis} {
		for _, m := range f.Methods {
			seen[m] = true
		}
	}
	models := make([]string, 0, len(seen))
	for m := range seen {
		models = append(models, m)
	}
	sort.Strings(models)

	return &domain.Capabilities{
		Entities:     caps.EntityRecognition.Available,
		Sentiment:    caps.SentimentAnalysis.Available,
		Syntax:       caps.SyntaxAnalysis.Available,
		Segmentation: true,
		Rewrite:      caps.IntelligentRewrite || caps.Qwen3Rewrite,
		Models:       models,
	}, nil
}

// Ping checks the backend answers the capabilities endpoint.
func (c *Client) Ping(ctx context.Context) error {
	var resp capabilitiesResponse
	return c.get(ctx, "/api/nlp_capabilities", &resp)
}

// Close releases resources.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// successReporter lets do() inspect the envelope of any response type.
type successReporter interface {
	result() envelope
}

func (e envelope) result() envelope { return e }

func (c *Client) post(ctx context.Context, endpoint string, body any, out successReporter) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(payload), out)
}

func (c *Client) get(ctx context.Context, endpoint string, out successReporter) error {
	return c.do(ctx, http.MethodGet, endpoint, http.NoBody, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, out successReporter) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("nlp backend: %s %s", method, endpoint)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrNLPUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		delay := c.limiter.Backoff(resp.Header.Get("Retry-After"))
		logger.Warn("nlp backend rate limited, pausing for %s", delay)
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, endpoint)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	decodeErr := json.Unmarshal(data, out)
	env := out.result()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = truncate(strings.TrimSpace(string(data)), maxErrorBody)
		}
		return &APIError{Endpoint: endpoint, Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = "request failed"
		}
		return &APIError{Endpoint: endpoint, Status: resp.StatusCode, Message: msg}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// IsAPIError reports whether err came from a backend failure response.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// Package nlp builds the optional NLP backend and rewriter adapters from
// application settings.
package nlp

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/textdesk/internal/adapters/driven/nlp/ollama"
	"github.com/custodia-labs/textdesk/internal/adapters/driven/nlp/remote"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// InitResult holds the NLP services created from settings.
type InitResult struct {
	Backend  driven.NLPBackend
	Rewriter driven.Rewriter
	Warnings []string // Non-fatal issues that disabled a service.
}

// Close releases all resources held by the result.
func (r *InitResult) Close() {
	if r.Backend != nil {
		r.Backend.Close()
	}
}

// Init creates the backend and rewriter described by settings.
// Unconfigured services are left nil. When validate is set each service is
// pinged, and an unreachable one is dropped with a warning instead of
// failing the whole initialisation.
func Init(settings *domain.AppSettings, prompts driven.PromptStore, validate bool) *InitResult {
	result := &InitResult{}
	if settings == nil {
		return result
	}

	backend, err := CreateBackend(&settings.Backend)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("nlp backend disabled: %v", err))
	} else if backend != nil {
		result.Backend = backend
		if validate {
			if err := ping(backend.Ping); err != nil {
				backend.Close()
				result.Backend = nil
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("nlp backend unreachable at %s: %v", settings.Backend.URL, err))
			}
		}
	}

	rewriter, err := CreateRewriter(settings, result.Backend, prompts)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("rewrite disabled: %v", err))
		return result
	}
	if rewriter != nil && validate && settings.Rewrite.Provider == domain.RewriteProviderOllama {
		if err := ping(rewriter.Ping); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("ollama unreachable: %v", err))
			return result
		}
	}
	result.Rewriter = rewriter
	return result
}

// CreateBackend creates the NLP backend client.
// Returns nil if no backend URL is configured.
func CreateBackend(settings *domain.BackendSettings) (driven.NLPBackend, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	client, err := remote.NewClient(remote.Config{
		BaseURL:       settings.URL,
		Timeout:       time.Duration(settings.TimeoutSeconds) * time.Second,
		RatePerSecond: settings.RatePerSecond,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// CreateRewriter creates the rewriter selected by settings.
// The backend provider reuses backend when it implements driven.Rewriter.
// Returns nil if rewriting is disabled.
func CreateRewriter(
	settings *domain.AppSettings, backend driven.NLPBackend, prompts driven.PromptStore,
) (driven.Rewriter, error) {
	if settings == nil || !settings.Rewrite.IsConfigured() {
		return nil, nil
	}

	switch settings.Rewrite.Provider {
	case domain.RewriteProviderBackend:
		if backend == nil {
			return nil, fmt.Errorf("%w: rewrite provider %q needs backend.url",
				domain.ErrNLPUnavailable, settings.Rewrite.Provider)
		}
		rw, ok := backend.(driven.Rewriter)
		if !ok {
			return nil, fmt.Errorf("%w: backend does not support rewrite", domain.ErrNotImplemented)
		}
		return rw, nil

	case domain.RewriteProviderOllama:
		rw := ollama.NewRewriter(ollama.Config{
			BaseURL: settings.Rewrite.BaseURL,
			Model:   settings.Rewrite.Model,
		})
		if prompts != nil {
			rw.SetPromptStore(prompts)
		}
		return rw, nil

	default:
		return nil, fmt.Errorf("%w: rewrite provider %q", domain.ErrUnsupportedType, settings.Rewrite.Provider)
	}
}

func ping(fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return fn(ctx)
}

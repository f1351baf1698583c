package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driving"
	"github.com/custodia-labs/textdesk/internal/logger"
	"github.com/custodia-labs/textdesk/internal/normaliser"
)

// Ensure NormaliseService implements the interface.
var _ driving.NormaliseService = (*NormaliseService)(nil)

// NormaliseService runs the normaliser over the working text.
type NormaliseService struct {
	editor   driving.EditorService
	settings driving.SettingsService
}

// NewNormaliseService creates a new normalise service.
func NewNormaliseService(editor driving.EditorService, settings driving.SettingsService) *NormaliseService {
	return &NormaliseService{
		editor:   editor,
		settings: settings,
	}
}

// Preview returns the normalised working text without changing the buffer.
func (s *NormaliseService) Preview(ctx context.Context, opts domain.NormaliseOptions) (string, error) {
	buf, err := s.editor.Buffer(ctx)
	if err != nil {
		return "", err
	}
	return normaliser.Normalise(buf.Current, opts)
}

// Apply normalises the working text and stores the result.
func (s *NormaliseService) Apply(ctx context.Context, opts domain.NormaliseOptions) (*domain.TextBuffer, error) {
	logger.Section("Normalise")
	logger.Debug("steps: %s", describeSteps(opts))

	text, err := s.Preview(ctx, opts)
	if err != nil {
		return nil, err
	}
	return s.editor.SetText(ctx, text, ReasonNormalise)
}

// Defaults returns the options named by the normalise.steps setting.
// Invalid configuration falls back to the built-in steps.
func (s *NormaliseService) Defaults() domain.NormaliseOptions {
	steps := domain.DefaultAppSettings().Normalise.Steps
	if s.settings != nil {
		if settings, err := s.settings.Get(); err == nil {
			steps = settings.Normalise.Steps
		}
	}

	opts, err := normaliser.OptionsFromSteps(steps)
	if err != nil {
		logger.Warn("ignoring normalise.steps: %v", err)
		opts, _ = normaliser.OptionsFromSteps(domain.DefaultAppSettings().Normalise.Steps)
	}
	return opts
}

// describeSteps is used in log output.
func describeSteps(opts domain.NormaliseOptions) string {
	p, err := normaliser.Build(opts)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprint(p.Names())
}

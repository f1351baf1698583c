// Command textdesk is a terminal workbench for searching, replacing and
// analysing text.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/textdesk/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textdesk/internal/adapters/driven/nlp"
	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/textdesk/internal/adapters/driving/cli"
	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
	"github.com/custodia-labs/textdesk/internal/core/services"
	"github.com/custodia-labs/textdesk/internal/frequency"
	"github.com/custodia-labs/textdesk/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

// stores groups the persistence ports selected by storage.mode.
type stores struct {
	buffers   driven.BufferStore
	matches   driven.MatchStateStore
	stopwords driven.StopwordStore
	close     func() error
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run wires the adapters into the services and executes the command line.
// Cobra prints command errors itself, so only setup errors are printed here.
func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return setupError(fmt.Errorf("open config: %w", err))
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return setupError(fmt.Errorf("read settings: %w", err))
	}

	st, err := openStores(settings.Storage.Mode)
	if err != nil {
		return setupError(err)
	}
	defer st.close()

	var promptStore driven.PromptStore
	if prompts, err := file.NewPromptStore(""); err != nil {
		logger.Warn("rewrite prompts unavailable, using defaults: %v", err)
	} else {
		promptStore = prompts
	}
	nlpResult := nlp.Init(settings, promptStore, false)
	defer nlpResult.Close()
	for _, w := range nlpResult.Warnings {
		logger.Warn("%s", w)
	}

	segmenters := frequency.NewSegmenterRegistry()
	frequency.RegisterDefaults(segmenters)
	if nlpResult.Backend != nil {
		segmenters.Register(frequency.NewBackendSegmenter(nlpResult.Backend, ""))
	}
	analyzer := frequency.New(st.stopwords, segmenters)

	editorService := services.NewEditorService(st.buffers, st.matches, nil)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Editor:    editorService,
		Analysis:  services.NewAnalysisService(st.buffers, analyzer, settingsService),
		Stopwords: services.NewStopwordService(st.stopwords),
		Normalise: services.NewNormaliseService(editorService, settingsService),
		NLP:       services.NewNLPService(editorService, nlpResult.Backend, nlpResult.Rewriter),
		Settings:  settingsService,
	})

	return cli.Execute()
}

// openStores opens the SQLite database, or in-memory stores when mode is
// memory.
func openStores(mode domain.StorageMode) (*stores, error) {
	if mode == domain.StorageMemory {
		buffers := memory.NewBufferStore()
		return &stores{
			buffers:   buffers,
			matches:   buffers,
			stopwords: memory.NewStopwordStore(),
			close:     func() error { return nil },
		}, nil
	}

	db, err := sqlite.NewStore("")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &stores{
		buffers:   db.BufferStore(),
		matches:   db.MatchStateStore(),
		stopwords: db.StopwordStore(),
		close:     db.Close,
	}, nil
}

func setupError(err error) error {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return err
}

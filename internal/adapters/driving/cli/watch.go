package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/logger"
)

const watchDebounce = 200 * time.Millisecond

var watchTop int

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reload a file whenever it changes",
	Long: `Load a file, then reload it into the buffer every time it is saved and
print the most frequent words. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVarP(&watchTop, "top", "n", 10, "number of words to show after each reload")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := requireEditor(); err != nil {
		return err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := reloadAndReport(ctx, cmd, path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often save by renaming a temp file over the target, which
	// drops a watch on the file itself, so the directory is watched.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", path)

	return watchLoop(ctx, watcher.Events, watcher.Errors, path, func() error {
		return reloadAndReport(ctx, cmd, path)
	})
}

// watchLoop calls reload once per burst of relevant events.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	path string,
	reload func() error,
) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if shouldReload(ev, path) {
				logger.Debug("watch: %s", ev)
				pending = time.After(watchDebounce)
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-pending:
			pending = nil
			if err := reload(); err != nil {
				logger.Warn("reload failed: %v", err)
			}
		}
	}
}

// shouldReload reports whether ev changes the content of path.
func shouldReload(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(path) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func reloadAndReport(ctx context.Context, cmd *cobra.Command, path string) error {
	buf, err := editorService.LoadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	cmd.Printf("\n[%s] %d characters\n", buf.LoadedAt.Format("15:04:05"), len([]rune(buf.Current)))
	if analysisService == nil {
		return nil
	}

	opts := domain.DefaultFrequencyOptions()
	opts.TopN = watchTop
	counts, err := analysisService.WordFrequency(ctx, opts)
	if err != nil {
		return fmt.Errorf("frequency failed: %w", err)
	}
	printCounts(cmd, counts)
	return nil
}

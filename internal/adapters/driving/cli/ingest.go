package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/theatilgan/courserec-cli/internal/logger"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [paths...]",
	Short: "Ingest documents into the corpus",
	Long: `Extracts text from the given files, derives keywords and a summary,
and stores the result. Re-ingesting a filename replaces the prior
record. A document that yields no text still enters the corpus with
filename-derived metadata.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

var ingestWatchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and ingest new or changed files",
	Long: `Watches the given directory and ingests every file that is created
or modified while the watcher runs. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngestWatch,
}

func init() {
	ingestCmd.AddCommand(ingestWatchCmd)
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	results := ingestService.IngestAll(context.Background(), args)

	// Stable output order regardless of map iteration.
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	succeeded := 0
	for _, name := range names {
		if results[name] {
			succeeded++
			cmd.Printf("  %s %s\n", successStyle.Render("ok"), name)
		} else {
			cmd.Printf("  %s %s\n", errorStyle.Render("failed"), name)
		}
	}
	cmd.Printf("\nIngested %d/%d documents.\n", succeeded, len(results))

	return nil
}

func runIngestWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch target %s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for new documents. Press Ctrl-C to stop.\n", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nWatcher stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if fi, err := os.Stat(event.Name); err != nil || fi.IsDir() {
				continue
			}

			name := filepath.Base(event.Name)
			if ingestService.Ingest(ctx, event.Name) {
				cmd.Printf("  %s %s\n", successStyle.Render("ok"), name)
			} else {
				cmd.Printf("  %s %s\n", errorStyle.Render("failed"), name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

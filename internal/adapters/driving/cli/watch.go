package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/logger"
)

// watchDebounce coalesces the event bursts editors fire on save.
const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [document]",
	Short: "Re-analyze a document when it changes",
	Long: `Analyzes the document, then watches it and prints a fresh analysis on
every save. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	path := args[0]
	if err := analyzeOnce(cmd, path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors often replace the file
	// on save, which drops a file-level watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	cmd.Printf("\nWatching %s (Ctrl-C to stop)\n", path)

	var pending <-chan time.Time
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchRelevant(event, target) {
				continue
			}
			logger.Debug("change detected: %s", event)
			pending = time.After(watchDebounce)
		case <-pending:
			pending = nil
			cmd.Println()
			if err := analyzeOnce(cmd, path); err != nil {
				// Saves can be caught mid-write; report and keep watching.
				cmd.Println(styleError.Render(fmt.Sprintf("analysis failed: %v", err)))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// watchRelevant reports whether the event is a content change of the
// watched file.
func watchRelevant(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// analyzeOnce loads the document and prints a full analysis.
func analyzeOnce(cmd *cobra.Command, path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	analysis, err := analysisService.Analyze(doc)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	outputAnalysisTable(cmd, analysis)
	return nil
}

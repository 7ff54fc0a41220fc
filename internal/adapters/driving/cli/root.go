// Package cli implements the sketchplan command-line interface.
// Commands drive the core services through their ports; the service
// implementations are injected by cmd/sketchplan before Execute runs.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
	"github.com/smj9504/sketchplan/internal/core/ports/driving"
	"github.com/smj9504/sketchplan/internal/logger"
	"github.com/smj9504/sketchplan/internal/snapshot"
)

// version is the build version, overridden at link time.
var version = "dev"

// Services drives the commands. Injected by cmd/sketchplan or by tests;
// commands guard against missing entries.
var (
	analysisService    driving.AnalysisService
	validationService  driving.Validator
	materialService    driving.MaterialEstimator
	measurementService driving.MeasurementService
	settingsService    driving.SettingsService
	boundaryTracer     driving.BoundaryTracer
	priceBook          driven.PriceBook
	estimateWriter     driven.EstimateWriter
)

// Persistent flags.
var (
	verboseFlag bool
	configDir   string
)

// initHook builds the default service graph once flags are parsed.
// cmd/sketchplan installs it; tests leave it unset and inject directly.
var initHook func() error

var rootCmd = &cobra.Command{
	Use:   "sketchplan",
	Short: "Measure floor plans and estimate materials",
	Long: `Sketchplan reads floor-plan documents (walls, rooms, fixtures) and
derives areas, volumes, material take-offs and priced estimates from them.

Documents are JSON snapshots; the drawing scale maps pixels to feet.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if initHook != nil {
			hook := initHook
			initHook = nil
			return hook()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.sketchplan)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so
// long-running commands like watch stop when it is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion records the build version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetInitializer installs the hook that wires the service graph after
// persistent flags are parsed.
func SetInitializer(hook func() error) {
	initHook = hook
}

// ConfigDir returns the --config override, empty for the default location.
func ConfigDir() string {
	return configDir
}

// Services bundles every port the commands drive.
type Services struct {
	Analysis  driving.AnalysisService
	Validator driving.Validator
	Materials driving.MaterialEstimator
	Measure   driving.MeasurementService
	Settings  driving.SettingsService
	Tracer    driving.BoundaryTracer
	PriceBook driven.PriceBook
	Estimates driven.EstimateWriter
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	analysisService = s.Analysis
	validationService = s.Validator
	materialService = s.Materials
	measurementService = s.Measure
	settingsService = s.Settings
	boundaryTracer = s.Tracer
	priceBook = s.PriceBook
	estimateWriter = s.Estimates
}

// loadDocument reads and parses a sketch document snapshot.
func loadDocument(path string) (*domain.SketchDocument, error) {
	doc, err := snapshot.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	logger.Debug("loaded %q: %d walls, %d rooms, %d fixtures",
		doc.Name, len(doc.Walls), len(doc.Rooms), len(doc.Fixtures))
	return doc, nil
}

// outputJSON renders any result as indented JSON.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

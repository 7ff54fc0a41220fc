// Command sketchplan measures floor-plan documents and prices the work.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/smj9504/sketchplan/internal/adapters/driven/config/file"
	"github.com/smj9504/sketchplan/internal/adapters/driven/export/xlsx"
	"github.com/smj9504/sketchplan/internal/adapters/driven/storage/sqlite"
	"github.com/smj9504/sketchplan/internal/adapters/driving/cli"
	"github.com/smj9504/sketchplan/internal/core/services"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)

	var book *sqlite.PriceBook
	cli.SetInitializer(func() error {
		var err error
		book, err = buildServices()
		return err
	})

	err := cli.ExecuteContext(ctx)

	stop()
	if book != nil {
		book.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// buildServices wires the default service graph: the TOML config store,
// the SQLite price book and the core services on top of them. The price
// book is returned so main can close it after the command finishes.
func buildServices() (*sqlite.PriceBook, error) {
	configDir := cli.ConfigDir()

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	dataDir := ""
	if configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}
	book, err := sqlite.NewPriceBook(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening price book: %w", err)
	}

	tracer := services.NewTopologyService(settings.Topology.ConnectionTolerance)
	analysis := services.NewAnalysisService(tracer)

	cli.SetServices(cli.Services{
		Analysis:  analysis,
		Validator: services.NewValidationService(tracer),
		Materials: services.NewMaterialService(analysis, book),
		Measure:   services.NewMeasureService(settings.Measurement.Precision, settings.Measurement.Tolerance),
		Settings:  settingsService,
		Tracer:    tracer,
		PriceBook: book,
		Estimates: xlsx.NewWriter(),
	})
	return book, nil
}

package services

import (
	"fmt"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
	"github.com/smj9504/sketchplan/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMeasurePrecision  = "measurement.precision"
	keyMeasureTolerance  = "measurement.tolerance"
	keyTopologyTolerance = "topology.tolerance"
	keyWastePercent      = "materials.waste_percent"
	keyPaintCoverage     = "materials.paint_coverage"
	keyCeilingTileSize   = "materials.ceiling_tile_size"
	keyIncludeTrim       = "materials.include_trim"
	keyLaborRate         = "estimate.labor_rate"
	keyPixelsPerFoot     = "scale.pixels_per_foot"
)

// SettingsService manages engine settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current engine settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Measurement: domain.MeasurementSettings{
			Precision: s.getInt(keyMeasurePrecision, defaults.Measurement.Precision),
			Tolerance: s.getFloat(keyMeasureTolerance, defaults.Measurement.Tolerance),
		},
		Topology: domain.TopologySettings{
			ConnectionTolerance: s.getFloat(keyTopologyTolerance, defaults.Topology.ConnectionTolerance),
		},
		Materials: domain.MaterialOptions{
			WastePercent:    s.getFloat(keyWastePercent, defaults.Materials.WastePercent),
			PaintCoverage:   s.getFloat(keyPaintCoverage, defaults.Materials.PaintCoverage),
			CeilingTileSize: s.getFloat(keyCeilingTileSize, defaults.Materials.CeilingTileSize),
			IncludeTrim:     s.getBool(keyIncludeTrim, defaults.Materials.IncludeTrim),
		},
		LaborRate:     s.getFloat(keyLaborRate, defaults.LaborRate),
		PixelsPerFoot: s.getFloat(keyPixelsPerFoot, defaults.PixelsPerFoot),
	}

	return settings, nil
}

// Save persists engine settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyMeasurePrecision, settings.Measurement.Precision); err != nil {
		return fmt.Errorf("save measurement precision: %w", err)
	}
	if err := s.configStore.Set(keyMeasureTolerance, settings.Measurement.Tolerance); err != nil {
		return fmt.Errorf("save measurement tolerance: %w", err)
	}
	if err := s.configStore.Set(keyTopologyTolerance, settings.Topology.ConnectionTolerance); err != nil {
		return fmt.Errorf("save topology tolerance: %w", err)
	}
	if err := s.configStore.Set(keyWastePercent, settings.Materials.WastePercent); err != nil {
		return fmt.Errorf("save waste percent: %w", err)
	}
	if err := s.configStore.Set(keyPaintCoverage, settings.Materials.PaintCoverage); err != nil {
		return fmt.Errorf("save paint coverage: %w", err)
	}
	if err := s.configStore.Set(keyCeilingTileSize, settings.Materials.CeilingTileSize); err != nil {
		return fmt.Errorf("save ceiling tile size: %w", err)
	}
	if err := s.configStore.Set(keyIncludeTrim, settings.Materials.IncludeTrim); err != nil {
		return fmt.Errorf("save include trim: %w", err)
	}
	if err := s.configStore.Set(keyLaborRate, settings.LaborRate); err != nil {
		return fmt.Errorf("save labor rate: %w", err)
	}
	if err := s.configStore.Set(keyPixelsPerFoot, settings.PixelsPerFoot); err != nil {
		return fmt.Errorf("save pixels per foot: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

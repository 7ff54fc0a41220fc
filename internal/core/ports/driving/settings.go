package driving

import (
	"github.com/smj9504/sketchplan/internal/core/domain"
)

// SettingsService manages the engine tunables backed by configuration.
type SettingsService interface {
	// Get retrieves current settings, with defaults filled in for keys
	// that were never set.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error

	// GetDefaults returns the built-in defaults.
	GetDefaults() domain.AppSettings
}

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage engine settings",
	Long: `View and change the engine tunables: measurement precision and
tolerance, wall connection tolerance, take-off options, labor rate and
the fallback drawing scale.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Changes one setting and persists the full set. Keys:

  measurement.precision       fraction-of-an-inch denominator (e.g. 16)
  measurement.tolerance       comparison slack in inches
  topology.tolerance          wall connection tolerance in drawing units
  materials.waste_percent     flooring waste allowance in percent
  materials.paint_coverage    sqft one gallon of paint covers
  materials.ceiling_tile_size ceiling tile edge length in inches
  materials.include_trim      true or false
  estimate.labor_rate         labor rate factor (hourly cost is rate x 10)
  scale.pixels_per_foot       fallback drawing scale`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(styleTitle.Render("Current settings"))
	cmd.Println()

	cmd.Println(styleHeader.Render("[Measurement]"))
	cmd.Printf("  Precision: 1/%d inch\n", settings.Measurement.Precision)
	cmd.Printf("  Tolerance: %g inches\n", settings.Measurement.Tolerance)
	cmd.Println()

	cmd.Println(styleHeader.Render("[Topology]"))
	cmd.Printf("  Connection tolerance: %g drawing units\n", settings.Topology.ConnectionTolerance)
	cmd.Println()

	cmd.Println(styleHeader.Render("[Materials]"))
	cmd.Printf("  Waste: %g%%\n", settings.Materials.WastePercent)
	cmd.Printf("  Paint coverage: %g sqft/gal\n", settings.Materials.PaintCoverage)
	cmd.Printf("  Ceiling tile: %g inches\n", settings.Materials.CeilingTileSize)
	cmd.Printf("  Include trim: %t\n", settings.Materials.IncludeTrim)
	cmd.Println()

	cmd.Println(styleHeader.Render("[Estimate]"))
	cmd.Printf("  Labor rate: %g ($%g/hour)\n", settings.LaborRate, settings.LaborRate*10)
	cmd.Println()

	cmd.Println(styleHeader.Render("[Scale]"))
	cmd.Printf("  Pixels per foot: %g\n", settings.PixelsPerFoot)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	key, value := args[0], args[1]
	if err := applySetting(settings, key, value); err != nil {
		return err
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

// applySetting writes one keyed value into the settings struct.
func applySetting(settings *domain.AppSettings, key, value string) error {
	switch key {
	case "measurement.precision":
		v, err := strconv.Atoi(value)
		if err != nil || v < 2 {
			return fmt.Errorf("invalid precision %q: expected an integer of at least 2", value)
		}
		settings.Measurement.Precision = v
	case "measurement.tolerance":
		return setFloat(&settings.Measurement.Tolerance, key, value)
	case "topology.tolerance":
		return setFloat(&settings.Topology.ConnectionTolerance, key, value)
	case "materials.waste_percent":
		return setFloat(&settings.Materials.WastePercent, key, value)
	case "materials.paint_coverage":
		return setFloat(&settings.Materials.PaintCoverage, key, value)
	case "materials.ceiling_tile_size":
		return setFloat(&settings.Materials.CeilingTileSize, key, value)
	case "materials.include_trim":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: expected true or false", key, value)
		}
		settings.Materials.IncludeTrim = v
	case "estimate.labor_rate":
		return setFloat(&settings.LaborRate, key, value)
	case "scale.pixels_per_foot":
		return setFloat(&settings.PixelsPerFoot, key, value)
	default:
		return fmt.Errorf("unknown setting %q (run 'sketchplan settings set --help' for keys)", key)
	}
	return nil
}

func setFloat(target *float64, key, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("invalid %s %q: expected a non-negative number", key, value)
	}
	*target = v
	return nil
}

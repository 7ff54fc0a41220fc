package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

var (
	materialsRoom   string
	materialsWaste  float64
	materialsNoTrim bool
	materialsJSON   bool
)

var materialsCmd = &cobra.Command{
	Use:   "materials [document]",
	Short: "Compute a material take-off",
	Long: `Computes the material quantities needed for a document: flooring with
the waste allowance applied, paint and primer gallons, trim runs and
ceiling tiles. Rooms without a closed boundary are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterials,
}

func init() {
	materialsCmd.Flags().StringVar(&materialsRoom, "room", "", "compute a single room by ID")
	materialsCmd.Flags().Float64Var(&materialsWaste, "waste", domain.DefaultWastePercent, "flooring waste allowance in percent")
	materialsCmd.Flags().BoolVar(&materialsNoTrim, "no-trim", false, "exclude baseboard, crown and casing")
	materialsCmd.Flags().BoolVar(&materialsJSON, "json", false, "output the take-off as JSON")
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) error {
	if materialService == nil {
		return errors.New("material service not configured")
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	opts := materialOptions(cmd)

	if materialsRoom != "" {
		materials, err := materialService.RoomMaterials(doc, materialsRoom, opts)
		if err != nil {
			return fmt.Errorf("take-off failed: %w", err)
		}
		if materialsJSON {
			return outputJSON(cmd, materials)
		}
		cmd.Println(styleTitle.Render("Materials: " + materialsRoom))
		outputMaterials(cmd, *materials)
		return nil
	}

	result, err := materialService.DocumentMaterials(doc, opts)
	if err != nil {
		return fmt.Errorf("take-off failed: %w", err)
	}

	if materialsJSON {
		return outputJSON(cmd, result)
	}

	cmd.Println(styleTitle.Render("Materials: " + doc.Name))
	if len(result.Rooms) == 0 {
		cmd.Println("No rooms with a closed boundary.")
		return nil
	}

	for _, room := range result.Rooms {
		cmd.Printf("\n%s\n", styleHeader.Render(room.Name))
		outputMaterials(cmd, room.Materials)
	}

	cmd.Printf("\n%s\n", styleHeader.Render("Total"))
	outputMaterials(cmd, result.Totals)
	return nil
}

// materialOptions starts from the stored settings and applies flag
// overrides on top.
func materialOptions(cmd *cobra.Command) domain.MaterialOptions {
	opts := domain.DefaultMaterialOptions()
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			opts = settings.Materials
		}
	}
	if cmd.Flags().Changed("waste") {
		opts.WastePercent = materialsWaste
	}
	if materialsNoTrim {
		opts.IncludeTrim = false
	}
	return opts
}

func outputMaterials(cmd *cobra.Command, m domain.MaterialCalculation) {
	cmd.Printf("  Flooring:      %.1f sqft\n", m.FlooringArea)
	cmd.Printf("  Paint:         %d gal\n", m.PaintGallons)
	cmd.Printf("  Primer:        %d gal\n", m.PrimerGallons)
	cmd.Printf("  Ceiling tiles: %d\n", m.CeilingTiles)
	if m.BaseboardLength > 0 || m.CrownLength > 0 || m.CasingLength > 0 {
		cmd.Printf("  Baseboard:     %.1f ft\n", m.BaseboardLength)
		cmd.Printf("  Crown:         %.1f ft\n", m.CrownLength)
		cmd.Printf("  Casing:        %.1f ft\n", m.CasingLength)
	}
}

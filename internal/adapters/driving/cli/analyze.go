package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [document]",
	Short: "Measure rooms and document totals",
	Long: `Measures every room in a document: floor, ceiling and wall areas,
volume and perimeter, plus totals over the rooms with a closed boundary.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	analysis, err := analysisService.Analyze(doc)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		return outputJSON(cmd, analysis)
	}

	outputAnalysisTable(cmd, analysis)
	return nil
}

func outputAnalysisTable(cmd *cobra.Command, analysis *domain.DocumentAnalysis) {
	cmd.Println(styleTitle.Render("Analysis: " + analysis.Name))
	cmd.Printf("Scale: %.0f px/ft   Walls: %d   Rooms: %d   Fixtures: %d\n",
		analysis.Scale.PixelsPerFoot, analysis.WallCount, analysis.RoomCount, analysis.FixtureCount)
	cmd.Println()

	if len(analysis.Rooms) == 0 {
		cmd.Println("No rooms in document.")
		return
	}

	for i := range analysis.Rooms {
		room := &analysis.Rooms[i]
		if !room.Valid {
			cmd.Printf("  %s %s\n", room.Name, styleWarning.Render("(no closed boundary)"))
			continue
		}

		cmd.Printf("  %s (%.1f x %.1f ft)\n", room.Name, room.Dimensions.Width, room.Dimensions.Height)
		cmd.Printf("    Floor: %.1f sqft   Net walls: %.1f sqft   Perimeter: %.1f ft   Volume: %.0f cuft\n",
			room.Areas.FloorArea, room.Areas.NetWallArea, room.Areas.Perimeter, room.Areas.Volume)
	}

	cmd.Println()
	cmd.Println(styleHeader.Render(fmt.Sprintf("Totals (%d valid rooms)", analysis.ValidRoomCount())))
	cmd.Printf("  Floor: %.1f sqft   Ceiling: %.1f sqft   Net walls: %.1f sqft   Perimeter: %.1f ft\n",
		analysis.Totals.FloorArea, analysis.Totals.CeilingArea,
		analysis.Totals.NetWallArea, analysis.Totals.Perimeter)
}

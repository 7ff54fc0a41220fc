package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/adapters/driven/storage/sqlite"
	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/services"
)

var (
	estimatePricebook string
	estimateXLSX      string
	estimateJSON      bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [document]",
	Short: "Price a document's material take-off",
	Long: `Prices the material take-off for every room with a closed boundary,
using the price book for unit prices and the configured labor rate.
The estimate can be exported as an Excel workbook with --xlsx.`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estimatePricebook, "pricebook", "", "price book database file (default ~/.sketchplan/data/pricebook.db)")
	estimateCmd.Flags().StringVar(&estimateXLSX, "xlsx", "", "write the estimate to an Excel workbook")
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "output the estimate as JSON")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if materialService == nil {
		return errors.New("material service not configured")
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	opts := domain.DefaultEstimateOptions()
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			opts.LaborRate = settings.LaborRate
			opts.Materials = settings.Materials
		}
	}

	ctx := context.Background()

	estimator := materialService
	if estimatePricebook != "" {
		if analysisService == nil {
			return errors.New("analysis service not configured")
		}
		book, err := sqlite.OpenPriceBook(estimatePricebook)
		if err != nil {
			return fmt.Errorf("opening price book: %w", err)
		}
		defer book.Close()
		estimator = services.NewMaterialService(analysisService, book)
	}

	estimate, err := estimator.EstimateDocument(ctx, doc, opts)
	if err != nil {
		return fmt.Errorf("estimate failed: %w", err)
	}

	if estimateJSON {
		if err := outputJSON(cmd, estimate); err != nil {
			return err
		}
	} else {
		outputEstimateTable(cmd, estimate)
	}

	if estimateXLSX != "" {
		if estimateWriter == nil {
			return errors.New("estimate writer not configured")
		}
		if err := estimateWriter.Write(ctx, estimate, estimateXLSX); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		cmd.Printf("Workbook written to %s\n", estimateXLSX)
	}
	return nil
}

func outputEstimateTable(cmd *cobra.Command, estimate *domain.DocumentEstimate) {
	cmd.Println(styleTitle.Render("Estimate: " + estimate.Name))
	cmd.Println()

	for _, room := range estimate.Rooms {
		cmd.Printf("  %-20s %10s\n", room.Name, money(room.Costs.GrandTotal))
		cmd.Printf("    %s\n", styleMuted.Render(fmt.Sprintf(
			"flooring %s   paint %s   trim %s   labor %s (%d h)",
			money(room.Costs.FlooringCost), money(room.Costs.PaintCost),
			money(room.Costs.TrimCost), money(room.Costs.LaborCost),
			room.Costs.LaborHours)))
	}

	cmd.Println()
	cmd.Println(styleHeader.Render("Totals"))
	cmd.Printf("  Flooring:    %s\n", money(estimate.TotalCosts.FlooringCost))
	cmd.Printf("  Paint:       %s\n", money(estimate.TotalCosts.PaintCost))
	cmd.Printf("  Trim:        %s\n", money(estimate.TotalCosts.TrimCost))
	cmd.Printf("  Labor:       %s (%d hours)\n", money(estimate.TotalCosts.LaborCost), estimate.TotalCosts.LaborHours)
	cmd.Printf("  Grand total: %s\n", styleTitle.Render(money(estimate.TotalCosts.GrandTotal)))
}

// money formats a dollar amount for table output.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

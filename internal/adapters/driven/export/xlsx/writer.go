package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.EstimateWriter = (*Writer)(nil)

// Sheet names in workbook order.
const (
	sheetSummary   = "Summary"
	sheetRooms     = "Rooms"
	sheetMaterials = "Materials"
	sheetPrices    = "Prices"
)

// moneyFmt formats dollar amounts in the workbook.
const moneyFmt = "$#,##0.00"

// Writer exports a priced estimate as an Excel workbook with one sheet per
// section: summary, per-room costs, material take-off and unit prices.
type Writer struct{}

// NewWriter creates a new workbook estimate writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the estimate to the given path, overwriting any existing file.
func (w *Writer) Write(ctx context.Context, estimate *domain.DocumentEstimate, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if estimate == nil {
		return domain.ErrInvalidInput
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the summary.
	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	money := moneyFmt
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &money})
	if err != nil {
		return fmt.Errorf("creating money style: %w", err)
	}

	if err := w.writeSummary(f, estimate, headerStyle, moneyStyle); err != nil {
		return err
	}
	if err := w.writeRooms(f, estimate, headerStyle, moneyStyle); err != nil {
		return err
	}
	if err := w.writeMaterials(f, estimate, headerStyle); err != nil {
		return err
	}
	if err := w.writePrices(f, estimate, headerStyle, moneyStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// writeSummary fills the summary sheet with document totals.
func (w *Writer) writeSummary(f *excelize.File, estimate *domain.DocumentEstimate, headerStyle, moneyStyle int) error {
	rows := []struct {
		label string
		value any
		cost  bool
	}{
		{"Document", estimate.Name, false},
		{"Rooms estimated", len(estimate.Rooms), false},
		{"", nil, false},
		{"Flooring cost", estimate.TotalCosts.FlooringCost, true},
		{"Paint cost", estimate.TotalCosts.PaintCost, true},
		{"Trim cost", estimate.TotalCosts.TrimCost, true},
		{"Labor cost", estimate.TotalCosts.LaborCost, true},
		{"Labor hours", estimate.TotalCosts.LaborHours, false},
		{"", nil, false},
		{"Grand total", estimate.TotalCosts.GrandTotal, true},
	}

	for i, row := range rows {
		if row.label == "" {
			continue
		}
		labelCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetCellValue(sheetSummary, labelCell, row.label); err != nil {
			return fmt.Errorf("writing summary label: %w", err)
		}
		if err := f.SetCellValue(sheetSummary, valueCell, row.value); err != nil {
			return fmt.Errorf("writing summary value: %w", err)
		}
		if err := f.SetCellStyle(sheetSummary, labelCell, labelCell, headerStyle); err != nil {
			return fmt.Errorf("styling summary label: %w", err)
		}
		if row.cost {
			if err := f.SetCellStyle(sheetSummary, valueCell, valueCell, moneyStyle); err != nil {
				return fmt.Errorf("styling summary value: %w", err)
			}
		}
	}

	return f.SetColWidth(sheetSummary, "A", "B", 18)
}

// writeRooms fills the per-room cost sheet.
func (w *Writer) writeRooms(f *excelize.File, estimate *domain.DocumentEstimate, headerStyle, moneyStyle int) error {
	if _, err := f.NewSheet(sheetRooms); err != nil {
		return fmt.Errorf("creating rooms sheet: %w", err)
	}

	headers := []string{
		"Room", "Floor (sqft)", "Ceiling (sqft)", "Walls net (sqft)",
		"Perimeter (ft)", "Volume (cuft)",
		"Flooring", "Paint", "Trim", "Labor", "Total",
	}
	if err := writeHeaderRow(f, sheetRooms, headers, headerStyle); err != nil {
		return err
	}

	for i, room := range estimate.Rooms {
		values := []any{
			room.Name,
			room.Areas.FloorArea,
			room.Areas.CeilingArea,
			room.Areas.NetWallArea,
			room.Areas.Perimeter,
			room.Areas.Volume,
			room.Costs.FlooringCost,
			room.Costs.PaintCost,
			room.Costs.TrimCost,
			room.Costs.LaborCost,
			room.Costs.GrandTotal,
		}
		if err := writeRow(f, sheetRooms, i+2, values); err != nil {
			return err
		}
		// Cost columns G through K.
		start, _ := excelize.CoordinatesToCellName(7, i+2)
		end, _ := excelize.CoordinatesToCellName(11, i+2)
		if err := f.SetCellStyle(sheetRooms, start, end, moneyStyle); err != nil {
			return fmt.Errorf("styling room costs: %w", err)
		}
	}

	return f.SetColWidth(sheetRooms, "A", "K", 14)
}

// writeMaterials fills the take-off sheet, one row per room plus a total row.
func (w *Writer) writeMaterials(f *excelize.File, estimate *domain.DocumentEstimate, headerStyle int) error {
	if _, err := f.NewSheet(sheetMaterials); err != nil {
		return fmt.Errorf("creating materials sheet: %w", err)
	}

	headers := []string{
		"Room", "Flooring (sqft)", "Paint (gal)", "Primer (gal)",
		"Baseboard (ft)", "Crown (ft)", "Casing (ft)", "Ceiling tiles",
	}
	if err := writeHeaderRow(f, sheetMaterials, headers, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, room := range estimate.Rooms {
		values := []any{
			room.Name,
			room.Materials.FlooringArea,
			room.Materials.PaintGallons,
			room.Materials.PrimerGallons,
			room.Materials.BaseboardLength,
			room.Materials.CrownLength,
			room.Materials.CasingLength,
			room.Materials.CeilingTiles,
		}
		if err := writeRow(f, sheetMaterials, row, values); err != nil {
			return err
		}
		row++
	}

	totals := []any{
		"Total",
		estimate.TotalMaterials.FlooringArea,
		estimate.TotalMaterials.PaintGallons,
		estimate.TotalMaterials.PrimerGallons,
		estimate.TotalMaterials.BaseboardLength,
		estimate.TotalMaterials.CrownLength,
		estimate.TotalMaterials.CasingLength,
		estimate.TotalMaterials.CeilingTiles,
	}
	if err := writeRow(f, sheetMaterials, row, totals); err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(totals), row)
	if err := f.SetCellStyle(sheetMaterials, start, end, headerStyle); err != nil {
		return fmt.Errorf("styling totals row: %w", err)
	}

	return f.SetColWidth(sheetMaterials, "A", "H", 14)
}

// writePrices fills the unit price sheet in take-off order.
func (w *Writer) writePrices(f *excelize.File, estimate *domain.DocumentEstimate, headerStyle, moneyStyle int) error {
	if _, err := f.NewSheet(sheetPrices); err != nil {
		return fmt.Errorf("creating prices sheet: %w", err)
	}

	headers := []string{"Item", "Description", "Unit price"}
	if err := writeHeaderRow(f, sheetPrices, headers, headerStyle); err != nil {
		return err
	}

	for i, item := range domain.AllPriceItems() {
		values := []any{item.String(), item.Description(), estimate.Prices[item]}
		if err := writeRow(f, sheetPrices, i+2, values); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(3, i+2)
		if err := f.SetCellStyle(sheetPrices, cell, cell, moneyStyle); err != nil {
			return fmt.Errorf("styling price: %w", err)
		}
	}

	if err := f.SetColWidth(sheetPrices, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetPrices, "B", "B", 36); err != nil {
		return err
	}
	return f.SetColWidth(sheetPrices, "C", "C", 12)
}

// writeHeaderRow writes and styles the first row of a sheet.
func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	if err := writeRow(f, sheet, 1, toAny(headers)); err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, 1)
	end, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("styling header row: %w", err)
	}
	return nil
}

// writeRow writes values left to right starting at column A of the given row.
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("row cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}

func toAny(strs []string) []any {
	values := make([]any, len(strs))
	for i, s := range strs {
		values[i] = s
	}
	return values
}

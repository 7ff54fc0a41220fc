package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smj9504/sketchplan/internal/adapters/driven/storage/sqlite"
	"github.com/smj9504/sketchplan/internal/core/domain"
)

func TestEstimateCmd_Use(t *testing.T) {
	assert.Equal(t, "estimate [document]", estimateCmd.Use)
}

func TestEstimateCmd_HasFlags(t *testing.T) {
	require.NotNil(t, estimateCmd.Flags().Lookup("pricebook"))
	require.NotNil(t, estimateCmd.Flags().Lookup("xlsx"))
	require.NotNil(t, estimateCmd.Flags().Lookup("json"))
}

func TestEstimateCmd_DefaultPrices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"estimate", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Estimate: Studio")
	assert.Contains(t, buf.String(), "Kitchen")
	// 110 sqft flooring at $3.50, one gallon each of paint and primer,
	// trim and tiles, plus 10 hours of labor at $75.
	assert.Contains(t, buf.String(), "flooring $385.00")
	assert.Contains(t, buf.String(), "paint $54.00")
	assert.Contains(t, buf.String(), "trim $352.50")
	assert.Contains(t, buf.String(), "labor $750.00 (10 h)")
	assert.Contains(t, buf.String(), "Grand total: $1541.50")
}

func TestEstimateCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"estimate", "--json", path})
	defer func() {
		rootCmd.SetArgs(nil)
		estimateJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"grandTotal": 1541.5`)
	assert.Contains(t, buf.String(), `"laborHours": 10`)
	assert.Contains(t, buf.String(), `"flooring_sqft": 3.5`)
}

func TestEstimateCmd_PricebookFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dbPath := filepath.Join(t.TempDir(), "prices.db")
	book, err := sqlite.OpenPriceBook(dbPath)
	require.NoError(t, err)
	require.NoError(t, book.Set(context.Background(), domain.PriceFlooringSqft, 10.00))
	require.NoError(t, book.Close())

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"estimate", "--pricebook", dbPath, path})
	defer func() {
		rootCmd.SetArgs(nil)
		estimatePricebook = ""
	}()

	err = rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "flooring $1100.00")
	assert.Contains(t, buf.String(), "Grand total: $2256.50")
}

func TestEstimateCmd_XLSXExport(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := filepath.Join(t.TempDir(), "estimate.xlsx")
	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"estimate", "--xlsx", out, path})
	defer func() {
		rootCmd.SetArgs(nil)
		estimateXLSX = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Workbook written to "+out)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestEstimateCmd_NoValidRooms(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	doc := squareDocument()
	doc.Rooms = nil
	path := writeDocument(t, doc)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"estimate", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "estimate failed")
}

func TestEstimateCmd_ServiceNotConfigured(t *testing.T) {
	oldService := materialService
	materialService = nil
	defer func() {
		materialService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"estimate", "plan.json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "material service not configured")
}

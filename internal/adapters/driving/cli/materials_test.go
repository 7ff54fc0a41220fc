package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

func TestMaterialsCmd_Use(t *testing.T) {
	assert.Equal(t, "materials [document]", materialsCmd.Use)
}

func TestMaterialsCmd_HasFlags(t *testing.T) {
	require.NotNil(t, materialsCmd.Flags().Lookup("room"))
	require.NotNil(t, materialsCmd.Flags().Lookup("no-trim"))

	waste := materialsCmd.Flags().Lookup("waste")
	require.NotNil(t, waste, "waste flag should exist")
	assert.Equal(t, "10", waste.DefValue)
}

func TestMaterialsCmd_DocumentTakeOff(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"materials", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	// 100 sqft floor with the default 10% waste.
	assert.Contains(t, buf.String(), "Flooring:      110.0 sqft")
	assert.Contains(t, buf.String(), "Paint:         1 gal")
	assert.Contains(t, buf.String(), "Ceiling tiles: 25")
	assert.Contains(t, buf.String(), "Baseboard:     40.0 ft")
	assert.Contains(t, buf.String(), "Total")
}

func TestMaterialsCmd_WasteFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"materials", "--waste", "15", path})
	defer func() {
		rootCmd.SetArgs(nil)
		materialsWaste = domain.DefaultWastePercent
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Flooring:      115.0 sqft")
}

func TestMaterialsCmd_NoTrimFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"materials", "--no-trim", path})
	defer func() {
		rootCmd.SetArgs(nil)
		materialsNoTrim = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Baseboard")
	assert.Contains(t, buf.String(), "Flooring:      110.0 sqft")
}

func TestMaterialsCmd_SingleRoom(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"materials", "--room", "r1", path})
	defer func() {
		rootCmd.SetArgs(nil)
		materialsRoom = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Materials: r1")
	assert.Contains(t, buf.String(), "Flooring:      110.0 sqft")
}

func TestMaterialsCmd_UnknownRoom(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"materials", "--room", "attic", path})
	defer func() {
		rootCmd.SetArgs(nil)
		materialsRoom = ""
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "take-off failed")
}

func TestMaterialsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"materials", "--json", path})
	defer func() {
		rootCmd.SetArgs(nil)
		materialsJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"flooringArea": 110`)
	assert.Contains(t, buf.String(), `"paintGallons": 1`)
}

func TestMaterialsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := materialService
	materialService = nil
	defer func() {
		materialService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"materials", "plan.json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "material service not configured")
}

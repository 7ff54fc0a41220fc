package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate [document]", validateCmd.Use)
}

func TestValidateCmd_ValidDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeDocument(t, squareDocument())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Document is valid.")
}

func TestValidateCmd_ErrorsFailTheCheck(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	doc := squareDocument()
	// A two-wall room cannot enclose an area.
	doc.Rooms[0].WallIDs = []string{"w1", "w2"}
	path := writeDocument(t, doc)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"validate", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed: 1 error(s)")
	assert.Contains(t, buf.String(), "ROOM_INSUFFICIENT_WALLS")
	assert.Contains(t, buf.String(), "room r1")
}

func TestValidateCmd_WarningsDoNotFail(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	doc := squareDocument()
	// Implausibly thick wall warns but stays valid.
	doc.Walls[0].Thickness = 30
	path := writeDocument(t, doc)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "WALL_THICKNESS_RANGE")
	assert.Contains(t, buf.String(), "Document is valid (with warnings).")
}

func TestValidateCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	doc := squareDocument()
	doc.Rooms[0].Name = ""
	path := writeDocument(t, doc)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"validate", "--json", path})
	defer func() {
		rootCmd.SetArgs(nil)
		validateJSON = false
	}()

	err := rootCmd.Execute()

	// JSON output is still produced; the exit error reports the failure.
	assert.Error(t, err)
	assert.Contains(t, buf.String(), `"isValid": false`)
	assert.Contains(t, buf.String(), "ROOM_NAME_EMPTY")
}

func TestValidateCmd_ServiceNotConfigured(t *testing.T) {
	oldService := validationService
	validationService = nil
	defer func() {
		validationService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"validate", "plan.json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation service not configured")
}

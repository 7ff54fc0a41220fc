package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smj9504/sketchplan/internal/adapters/driven/export/xlsx"
	"github.com/smj9504/sketchplan/internal/adapters/driven/storage/memory"
	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/services"
	"github.com/smj9504/sketchplan/internal/snapshot"
)

// setupTestServices wires real services over in-memory adapters and returns
// a cleanup that restores the previous wiring.
func setupTestServices() func() {
	old := Services{
		Analysis:  analysisService,
		Validator: validationService,
		Materials: materialService,
		Measure:   measurementService,
		Settings:  settingsService,
		Tracer:    boundaryTracer,
		PriceBook: priceBook,
		Estimates: estimateWriter,
	}

	tracer := services.NewTopologyService(domain.DefaultConnectionTolerance)
	analysis := services.NewAnalysisService(tracer)
	book := memory.NewPriceBook()
	SetServices(Services{
		Analysis:  analysis,
		Validator: services.NewValidationService(tracer),
		Materials: services.NewMaterialService(analysis, book),
		Measure:   services.NewMeasureService(domain.DefaultPrecision, domain.DefaultMeasurementTolerance),
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
		Tracer:    tracer,
		PriceBook: book,
		Estimates: xlsx.NewWriter(),
	})

	return func() {
		SetServices(old)
	}
}

// squareDocument builds a 10x10 foot square room at 50 pixels per foot.
func squareDocument() *domain.SketchDocument {
	return &domain.SketchDocument{
		Name:  "Studio",
		Scale: domain.Scale{PixelsPerFoot: 50},
		Walls: []domain.Wall{
			{ID: "w1", Start: domain.Pt(0, 0), End: domain.Pt(500, 0)},
			{ID: "w2", Start: domain.Pt(500, 0), End: domain.Pt(500, 500)},
			{ID: "w3", Start: domain.Pt(500, 500), End: domain.Pt(0, 500)},
			{ID: "w4", Start: domain.Pt(0, 500), End: domain.Pt(0, 0)},
		},
		Rooms: []domain.SketchRoom{
			{ID: "r1", Name: "Kitchen", WallIDs: []string{"w1", "w2", "w3", "w4"}},
		},
	}
}

// writeDocument saves a document snapshot under a temp dir and returns its
// path.
func writeDocument(t *testing.T, doc *domain.SketchDocument) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, snapshot.Save(doc, path))
	return path
}

// mockAnalysisError fails every analysis operation.
type mockAnalysisError struct{}

func (m *mockAnalysisError) Analyze(_ *domain.SketchDocument) (*domain.DocumentAnalysis, error) {
	return nil, errors.New("analysis exploded")
}

func (m *mockAnalysisError) RoomAreas(_ *domain.SketchDocument, _ string) (*domain.RoomAreaReport, error) {
	return nil, errors.New("analysis exploded")
}

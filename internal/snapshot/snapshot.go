// Package snapshot reads and writes floor-plan documents as JSON files,
// the structured handoff format between a drawing host and the engine.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

// Load reads a document snapshot from a JSON file.
func Load(path string) (*domain.SketchDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document snapshot from JSON bytes. The document's scale is
// normalised on the way in, so downstream code never sees a zero scale.
func Parse(data []byte) (*domain.SketchDocument, error) {
	var doc domain.SketchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	doc.Scale = doc.Scale.Normalized()
	return &doc, nil
}

// Save writes a document snapshot to a JSON file, overwriting any existing
// file at the path.
func Save(doc *domain.SketchDocument, path string) error {
	if doc == nil {
		return domain.ErrInvalidInput
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

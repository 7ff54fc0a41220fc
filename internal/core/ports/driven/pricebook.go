package driven

import (
	"context"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

// PriceBook provides unit prices for material estimation.
// Implementations fall back to the built-in defaults for items that have
// never been set, so Get only fails on storage errors.
type PriceBook interface {
	// Get retrieves the unit price for an item in dollars.
	Get(ctx context.Context, item domain.PriceItem) (float64, error)

	// Set stores a unit price override.
	// Returns domain.ErrInvalidInput for unknown items or negative prices.
	Set(ctx context.Context, item domain.PriceItem, price float64) error

	// All returns the effective price for every known item.
	All(ctx context.Context) (map[domain.PriceItem]float64, error)

	// Close releases any underlying storage.
	Close() error
}

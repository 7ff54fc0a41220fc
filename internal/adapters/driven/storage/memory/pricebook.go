package memory

import (
	"context"
	"sync"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
)

// Ensure PriceBook implements the interface.
var _ driven.PriceBook = (*PriceBook)(nil)

// PriceBook is an in-memory implementation of driven.PriceBook.
// Items without an override resolve to the built-in default prices.
type PriceBook struct {
	mu        sync.RWMutex
	overrides map[domain.PriceItem]float64
}

// NewPriceBook creates a new in-memory price book.
func NewPriceBook() *PriceBook {
	return &PriceBook{
		overrides: make(map[domain.PriceItem]float64),
	}
}

// Get retrieves the unit price for an item in dollars.
func (b *PriceBook) Get(_ context.Context, item domain.PriceItem) (float64, error) {
	if !item.IsValid() {
		return 0, domain.ErrInvalidInput
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if price, ok := b.overrides[item]; ok {
		return price, nil
	}
	return domain.DefaultPrices()[item], nil
}

// Set stores a unit price override.
func (b *PriceBook) Set(_ context.Context, item domain.PriceItem, price float64) error {
	if !item.IsValid() || price < 0 {
		return domain.ErrInvalidInput
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.overrides[item] = price
	return nil
}

// All returns the effective price for every known item.
func (b *PriceBook) All(_ context.Context) (map[domain.PriceItem]float64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	prices := domain.DefaultPrices()
	for item, price := range b.overrides {
		prices[item] = price
	}
	return prices, nil
}

// Close releases any underlying storage (no-op for memory store).
func (b *PriceBook) Close() error {
	return nil
}

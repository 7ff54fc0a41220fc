package driven

import (
	"context"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

// EstimateWriter exports a priced estimate to an external format such as a
// spreadsheet workbook.
type EstimateWriter interface {
	// Write renders the estimate to the given path, overwriting any
	// existing file.
	Write(ctx context.Context, estimate *domain.DocumentEstimate, path string) error
}

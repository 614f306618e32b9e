package interfaces

import (
	"context"

	"solar-observer/src/models"
)

// -----------------------------------------------------------------------------
// IRecordSource yields normalized samples from one input artifact (a file,
// or anything that can produce hourly rows).
// -----------------------------------------------------------------------------

type IRecordSource interface {

	// Name returns the unique identifier of the source (e.g. the file name)
	Name() string

	// -----------------------------------------------------------------------------

	// Fetch reads and normalizes every row the source holds.
	// Row order within a source carries no meaning; the chronological merge
	// downstream establishes evaluation order.
	Fetch(ctx context.Context) ([]models.MSample, error)
}

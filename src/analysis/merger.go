package analysis

import (
	"sort"

	"solar-observer/src/models"
)

// -----------------------------------------------------------------------------
// Chronological Merger
// -----------------------------------------------------------------------------

// MergeChronological flattens per-file sample batches into one ascending
// timeline. Input files may arrive in any order and may be internally
// unordered; the sort, not file order, determines evaluation order.
// The sort is stable so duplicate timestamps (overlapping source files)
// keep their encounter order deterministically - they are retained, not
// deduplicated.
func MergeChronological(batches [][]models.MSample) []models.MSample {
	total := 0
	for _, batch := range batches {
		total += len(batch)
	}

	merged := make([]models.MSample, 0, total)
	for _, batch := range batches {
		merged = append(merged, batch...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})

	return merged
}

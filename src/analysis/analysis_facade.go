package analysis

import (
	"time"

	"solar-observer/src/logger"
	"solar-observer/src/models"
)

// AnalysisFacade orchestrates the full pass: chronological merge, sliding
// window aggregation and result projection.
type AnalysisFacade struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(cfg *models.MConfig, log *logger.Logger) *AnalysisFacade {
	return &AnalysisFacade{
		Config: cfg,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

// Run executes merge → aggregate → project over per-file sample batches and
// returns the flat report, the per-window records and the pass metrics.
// Batches may be given in any order; the result is identical for every
// permutation of input files.
func (a *AnalysisFacade) Run(batches [][]models.MSample) (*models.MWorstCaseStats, []models.MWindowStats, models.MProcessingMetrics, error) {
	start := time.Now()

	ordered := MergeChronological(batches)
	a.Logger.Debug("Merged %d samples from %d file(s)", len(ordered), len(batches))

	state := NewAggregationState()
	state.Consume(ordered)

	windows, err := ProjectResults(state)

	metrics := models.MProcessingMetrics{
		AggregationTimeSeconds: time.Since(start).Seconds(),
		FilesProcessed:         len(batches),
		SamplesProcessed:       len(ordered),
	}

	if err != nil {
		return nil, nil, metrics, err
	}

	return FlattenStats(windows), windows, metrics, nil
}

package analysis

import (
	"solar-observer/src/analysis/core"
	"solar-observer/src/models"
	"solar-observer/src/utils"
)

// -----------------------------------------------------------------------------
// Sliding Window Aggregator
// -----------------------------------------------------------------------------

// AggregationState owns the eight window trackers of one run (four lengths
// × two metrics). It is constructed per run, threaded through the pass and
// returned - never shared or package-level. All windows advance in lockstep
// over the same ordered stream but never share buffers.
type AggregationState struct {
	GHI         []*core.WindowState
	Temperature []*core.WindowState
}

// -----------------------------------------------------------------------------

func NewAggregationState() *AggregationState {
	s := &AggregationState{
		GHI:         make([]*core.WindowState, 0, len(utils.WindowDays)),
		Temperature: make([]*core.WindowState, 0, len(utils.WindowDays)),
	}

	for _, days := range utils.WindowDays {
		s.GHI = append(s.GHI, core.NewWindowState("ghi", days, core.KindSum))
		s.Temperature = append(s.Temperature, core.NewWindowState("temperature", days, core.KindMean))
	}

	return s
}

// -----------------------------------------------------------------------------

// Consume runs the single linear pass over the ordered sample sequence,
// updating every window per sample. O(1) amortized work per sample per
// window; the full window is never re-summed. The pass is inherently
// sequential: each window's running aggregate depends on the immediately
// preceding sample.
func (s *AggregationState) Consume(ordered []models.MSample) {
	for _, sample := range ordered {
		ghi := float64(sample.GHI)
		for _, w := range s.GHI {
			w.Advance(ghi, sample.Timestamp)
		}
		for _, w := range s.Temperature {
			w.Advance(sample.Temperature, sample.Timestamp)
		}
	}
}

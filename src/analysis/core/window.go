package core

import (
	"time"

	"solar-observer/src/utils"
)

// -----------------------------------------------------------------------------
// WindowState tracks the minimum rolling aggregate for one fixed-length
// window over one metric. Windows are counted in samples, never wall-clock
// time: a gap in the stream widens the real span of a window silently.
// -----------------------------------------------------------------------------

type AggregateKind int

const (
	// KindSum tracks the minimum rolling sum (GHI windows)
	KindSum AggregateKind = iota
	// KindMean tracks the minimum rolling mean (temperature windows)
	KindMean
)

type WindowState struct {
	Metric string
	Days   int
	Kind   AggregateKind

	buffer  *utils.RingBuffer
	best    float64
	bestAt  time.Time
	bestSet bool
}

// -----------------------------------------------------------------------------

func NewWindowState(metric string, days int, kind AggregateKind) *WindowState {
	return &WindowState{
		Metric: metric,
		Days:   days,
		Kind:   kind,
		buffer: utils.NewRingBuffer(utils.WindowCapacity(days)),
	}
}

// -----------------------------------------------------------------------------

// Advance feeds one sample value into the window. When the buffer reaches
// capacity the completed window is evaluated exactly once, then the oldest
// value is evicted (evaluate-then-evict). The comparison is strict less-than:
// a later window that ties the current minimum is NOT recorded, so the
// earliest-occurring worst case is the one reported.
func (w *WindowState) Advance(value float64, ts time.Time) {
	w.buffer.Append(value)

	if w.buffer.IsFull() {
		agg := w.buffer.Sum()
		if w.Kind == KindMean {
			agg = w.buffer.Mean()
		}

		if !w.bestSet || agg < w.best {
			w.best = agg
			w.bestAt = ts
			w.bestSet = true
		}

		w.buffer.PopOldest()
	}
}

// -----------------------------------------------------------------------------

// Best returns the minimum aggregate observed, the timestamp of the sample
// that completed that window (its right edge), and whether at least one full
// window has been evaluated.
func (w *WindowState) Best() (float64, time.Time, bool) {
	return w.best, w.bestAt, w.bestSet
}

// -----------------------------------------------------------------------------

// Capacity returns the window length in samples
func (w *WindowState) Capacity() int {
	return w.buffer.Capacity()
}

// -----------------------------------------------------------------------------

// Label returns the reporting name of the window ("24h", "3d", ...)
func (w *WindowState) Label() string {
	return utils.WindowLabel(w.Days)
}

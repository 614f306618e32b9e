package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-observer/src/analysis/core"
	"solar-observer/src/utils"
)

// -----------------------------------------------------------------------------

// fillWindow drives a window state with enough values to record best as the
// minimum, ending at the given anchor.
func fillWindowWithSum(w *core.WindowState, total float64, anchor time.Time) {
	capacity := w.Capacity()
	per := total / float64(capacity)
	for i := 0; i < capacity; i++ {
		w.Advance(per, anchor.Add(time.Duration(i-capacity+1)*time.Hour))
	}
}

// -----------------------------------------------------------------------------

func TestPeakSunHoursNormalization(t *testing.T) {
	anchor := time.Date(2023, 2, 10, 12, 0, 0, 0, time.UTC)

	state := NewAggregationState()
	for i, w := range state.GHI {
		fillWindowWithSum(w, []float64{114, 893, 2500, 7000}[i], anchor)
	}
	for _, w := range state.Temperature {
		fillWindowWithSum(w, -120, anchor)
	}

	windows, err := ProjectResults(state)
	require.NoError(t, err)
	require.Len(t, windows, 4)

	assert.Equal(t, 114, windows[0].GenerationSum)
	assert.InDelta(t, 0.114, windows[0].PeakSunHours, 1e-12)

	assert.Equal(t, 893, windows[1].GenerationSum)
	assert.InDelta(t, 0.297666666666, windows[1].PeakSunHours, 1e-9)

	assert.InDelta(t, 2500.0/5.0/utils.ReferenceIrradiance, windows[2].PeakSunHours, 1e-12)
	assert.InDelta(t, 7000.0/7.0/utils.ReferenceIrradiance, windows[3].PeakSunHours, 1e-12)

	for _, w := range windows {
		assert.Equal(t, anchor, w.GenerationAt)
	}
}

// -----------------------------------------------------------------------------

func TestTemperaturePassesThroughUnscaled(t *testing.T) {
	anchor := time.Date(2023, 2, 10, 12, 0, 0, 0, time.UTC)

	state := NewAggregationState()
	for _, w := range state.GHI {
		fillWindowWithSum(w, 1000, anchor)
	}
	for _, w := range state.Temperature {
		capacity := w.Capacity()
		for i := 0; i < capacity; i++ {
			w.Advance(-7.25, anchor.Add(time.Duration(i-capacity+1)*time.Hour))
		}
	}

	windows, err := ProjectResults(state)
	require.NoError(t, err)

	for _, w := range windows {
		assert.InDelta(t, -7.25, w.AvgTemperature, 1e-9)
	}
}

// -----------------------------------------------------------------------------

func TestFlattenStatsSpreadsEveryWindow(t *testing.T) {
	anchor := time.Date(2023, 2, 10, 12, 0, 0, 0, time.UTC)

	state := NewAggregationState()
	for i, w := range state.GHI {
		fillWindowWithSum(w, float64(1000*(i+1)), anchor)
	}
	for _, w := range state.Temperature {
		fillWindowWithSum(w, -240, anchor)
	}

	windows, err := ProjectResults(state)
	require.NoError(t, err)

	stats := FlattenStats(windows)
	assert.Equal(t, 1000, stats.WorstCaseSolarPowerGeneration24HourPeriod)
	assert.Equal(t, 2000, stats.WorstCaseSolarPowerGeneration3DayPeriod)
	assert.Equal(t, 3000, stats.WorstCaseSolarPowerGeneration5DayPeriod)
	assert.Equal(t, 4000, stats.WorstCaseSolarPowerGeneration7DayPeriod)
	assert.Equal(t, anchor, stats.WorstCaseSolarPowerGenerationTime24HourPeriod)
	assert.Equal(t, anchor, stats.WorstCaseAverageTemperatureTime7DayPeriod)
}

package analysis

import (
	"math"

	"solar-observer/src/helpers"
	"solar-observer/src/models"
	"solar-observer/src/utils"
)

// -----------------------------------------------------------------------------
// Result Projector
// -----------------------------------------------------------------------------

// ProjectResults maps every window tracker onto the public statistics
// records. GHI sums are additionally normalized into peak-sun-hours
// (sum / window-length-in-days / 1000). If any window never reached full
// capacity the projection fails with an InsufficientDataError naming the
// unfulfilled window(s) instead of reporting a sentinel.
func ProjectResults(state *AggregationState) ([]models.MWindowStats, error) {
	var missing []string
	results := make([]models.MWindowStats, 0, len(state.GHI))

	for i, ghiWin := range state.GHI {
		tempWin := state.Temperature[i]

		ghiBest, ghiAt, ghiOK := ghiWin.Best()
		tempBest, tempAt, tempOK := tempWin.Best()

		if !ghiOK || !tempOK {
			missing = append(missing, ghiWin.Label())
			continue
		}

		days := ghiWin.Days
		results = append(results, models.MWindowStats{
			WindowName:     ghiWin.Label(),
			Days:           days,
			SampleCount:    ghiWin.Capacity(),
			GenerationSum:  int(math.Round(ghiBest)),
			PeakSunHours:   ghiBest / float64(days) / utils.ReferenceIrradiance,
			GenerationAt:   ghiAt,
			AvgTemperature: tempBest,
			TemperatureAt:  tempAt,
		})
	}

	if len(missing) > 0 {
		return nil, helpers.NewInsufficientDataError(missing)
	}

	return results, nil
}

// -----------------------------------------------------------------------------

// FlattenStats spreads the per-window records into the flat report structure.
func FlattenStats(windows []models.MWindowStats) *models.MWorstCaseStats {
	stats := &models.MWorstCaseStats{}

	for _, w := range windows {
		switch w.Days {
		case 1:
			stats.WorstCaseSolarPowerGeneration24HourPeriod = w.GenerationSum
			stats.WorstCasePeakSolarHours24HourPeriod = w.PeakSunHours
			stats.WorstCaseSolarPowerGenerationTime24HourPeriod = w.GenerationAt
			stats.WorstCaseAverageTemperature24HourPeriod = w.AvgTemperature
			stats.WorstCaseAverageTemperatureTime24HourPeriod = w.TemperatureAt
		case 3:
			stats.WorstCaseSolarPowerGeneration3DayPeriod = w.GenerationSum
			stats.WorstCasePeakSolarHours3DayPeriod = w.PeakSunHours
			stats.WorstCaseSolarPowerGenerationTime3DayPeriod = w.GenerationAt
			stats.WorstCaseAverageTemperature3DayPeriod = w.AvgTemperature
			stats.WorstCaseAverageTemperatureTime3DayPeriod = w.TemperatureAt
		case 5:
			stats.WorstCaseSolarPowerGeneration5DayPeriod = w.GenerationSum
			stats.WorstCasePeakSolarHours5DayPeriod = w.PeakSunHours
			stats.WorstCaseSolarPowerGenerationTime5DayPeriod = w.GenerationAt
			stats.WorstCaseAverageTemperature5DayPeriod = w.AvgTemperature
			stats.WorstCaseAverageTemperatureTime5DayPeriod = w.TemperatureAt
		case 7:
			stats.WorstCaseSolarPowerGeneration7DayPeriod = w.GenerationSum
			stats.WorstCasePeakSolarHours7DayPeriod = w.PeakSunHours
			stats.WorstCaseSolarPowerGenerationTime7DayPeriod = w.GenerationAt
			stats.WorstCaseAverageTemperature7DayPeriod = w.AvgTemperature
			stats.WorstCaseAverageTemperatureTime7DayPeriod = w.TemperatureAt
		}
	}

	return stats
}

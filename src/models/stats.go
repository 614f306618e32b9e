package models

import "time"

// -----------------------------------------------------------------------------
// Worst-Case Statistics Structures
// -----------------------------------------------------------------------------

// MWindowStats holds the worst-case result for one rolling-window length.
// Anchoring timestamps denote the right (most recent) edge of the window
// that produced the minimum, in UTC.
type MWindowStats struct {
	WindowName     string    `json:"window_name"` // e.g. "24h", "3d"
	Days           int       `json:"days"`
	SampleCount    int       `json:"sample_count"` // window capacity in hourly samples
	GenerationSum  int       `json:"generation_sum"` // minimal GHI sum, W/m²
	PeakSunHours   float64   `json:"peak_sun_hours"`
	GenerationAt   time.Time `json:"generation_at"`
	AvgTemperature float64   `json:"avg_temperature"` // lowest rolling average, °C
	TemperatureAt  time.Time `json:"temperature_at"`
}

// -----------------------------------------------------------------------------

// MWorstCaseStats is the flat final statistics record, one field per reported
// scalar, matching the shape consumers of the sizing report expect.
type MWorstCaseStats struct {
	WorstCaseSolarPowerGeneration24HourPeriod     int       `json:"worst_case_solar_power_generation_24h"`
	WorstCasePeakSolarHours24HourPeriod           float64   `json:"worst_case_peak_solar_hours_24h"`
	WorstCaseSolarPowerGenerationTime24HourPeriod time.Time `json:"worst_case_solar_power_generation_time_24h"`
	WorstCaseAverageTemperature24HourPeriod       float64   `json:"worst_case_average_temperature_24h"`
	WorstCaseAverageTemperatureTime24HourPeriod   time.Time `json:"worst_case_average_temperature_time_24h"`

	WorstCaseSolarPowerGeneration3DayPeriod     int       `json:"worst_case_solar_power_generation_3d"`
	WorstCasePeakSolarHours3DayPeriod           float64   `json:"worst_case_peak_solar_hours_3d"`
	WorstCaseSolarPowerGenerationTime3DayPeriod time.Time `json:"worst_case_solar_power_generation_time_3d"`
	WorstCaseAverageTemperature3DayPeriod       float64   `json:"worst_case_average_temperature_3d"`
	WorstCaseAverageTemperatureTime3DayPeriod   time.Time `json:"worst_case_average_temperature_time_3d"`

	WorstCaseSolarPowerGeneration5DayPeriod     int       `json:"worst_case_solar_power_generation_5d"`
	WorstCasePeakSolarHours5DayPeriod           float64   `json:"worst_case_peak_solar_hours_5d"`
	WorstCaseSolarPowerGenerationTime5DayPeriod time.Time `json:"worst_case_solar_power_generation_time_5d"`
	WorstCaseAverageTemperature5DayPeriod       float64   `json:"worst_case_average_temperature_5d"`
	WorstCaseAverageTemperatureTime5DayPeriod   time.Time `json:"worst_case_average_temperature_time_5d"`

	WorstCaseSolarPowerGeneration7DayPeriod     int       `json:"worst_case_solar_power_generation_7d"`
	WorstCasePeakSolarHours7DayPeriod           float64   `json:"worst_case_peak_solar_hours_7d"`
	WorstCaseSolarPowerGenerationTime7DayPeriod time.Time `json:"worst_case_solar_power_generation_time_7d"`
	WorstCaseAverageTemperature7DayPeriod       float64   `json:"worst_case_average_temperature_7d"`
	WorstCaseAverageTemperatureTime7DayPeriod   time.Time `json:"worst_case_average_temperature_time_7d"`
}

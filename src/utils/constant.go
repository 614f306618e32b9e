package utils

import "fmt"

// -----------------------------------------------------------------------------

// Constants for the fixed rolling-window geometry.
// All windows are defined in hourly sample counts, not wall-clock spans:
// a gap in the source data widens the real time span of a window while
// its sample count stays fixed.
const (
	HoursPerDay = 24

	// ReferenceIrradiance is the full-sun irradiance used to normalize
	// GHI sums into peak-sun-hours (W/m²).
	ReferenceIrradiance = 1000.0

	// DerivedFileMarker tags intermediate files written next to the vendor
	// data. Files carrying it are never treated as primary inputs.
	DerivedFileMarker = "_derived"
)

// WindowDays lists the tracked rolling-window lengths, in days, ascending.
var WindowDays = []int{1, 3, 5, 7}

// -----------------------------------------------------------------------------

// WindowCapacity returns the number of hourly samples in a window of the
// given length.
func WindowCapacity(days int) int {
	return days * HoursPerDay
}

// -----------------------------------------------------------------------------

// WindowLabel returns the reporting name of a window length ("24h", "3d", ...).
func WindowLabel(days int) string {
	if days == 1 {
		return "24h"
	}
	return fmt.Sprintf("%dd", days)
}

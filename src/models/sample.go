package models

import "time"

// MSample represents one normalized hourly observation.
// Immutable after creation; consumed once by the aggregation pass.
type MSample struct {
	Timestamp   time.Time `json:"timestamp"`   // UTC, minute precision
	GHI         int       `json:"ghi"`         // Global Horizontal Irradiance, W/m² (non-negative)
	Temperature float64   `json:"temperature"` // Air temperature, °C
}

// -----------------------------------------------------------------------------

// MRawRecord is one data row exactly as read from an input file, before any
// validation or typing. File and Line identify the record for error reports.
type MRawRecord struct {
	File        string
	Line        int
	Year        string
	Month       string
	Day         string
	Hour        string
	Minute      string
	GHI         string
	Temperature string
}

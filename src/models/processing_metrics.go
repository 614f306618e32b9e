package models

// MProcessingMetrics represents the performance metrics for one full pass
// of the aggregation pipeline.
type MProcessingMetrics struct {
	AggregationTimeSeconds float64 `json:"aggregation_time_seconds"`
	FilesProcessed         int     `json:"files_processed"`
	SamplesProcessed       int     `json:"samples_processed"`
}

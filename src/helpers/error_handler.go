package helpers

import (
	"fmt"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type SolarObserverError struct {
	Message string
	Cause   error
}

func (e *SolarObserverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SolarObserverError) Unwrap() error {
	return e.Cause
}

// Distinct error types for type assertions. All of them are terminal for a
// run; there is no partial or best-effort output.
type ConfigurationError struct{ SolarObserverError }
type DataSourceError struct{ SolarObserverError }
type NetworkError struct{ SolarObserverError }

// MalformedRecordError identifies the exact input row that failed validation.
type MalformedRecordError struct {
	SolarObserverError
	File string
	Line int
}

// InsufficientDataError reports which window lengths never saw a full
// window of samples.
type InsufficientDataError struct {
	SolarObserverError
	Windows []string
}

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{SolarObserverError{Message: fmt.Sprintf(format, args...)}}
}

// -----------------------------------------------------------------------------

func NewMalformedRecordError(file string, line int, cause error) *MalformedRecordError {
	return &MalformedRecordError{
		SolarObserverError: SolarObserverError{
			Message: fmt.Sprintf("malformed record at %s line %d", file, line),
			Cause:   cause,
		},
		File: file,
		Line: line,
	}
}

// -----------------------------------------------------------------------------

func NewInsufficientDataError(windows []string) *InsufficientDataError {
	return &InsufficientDataError{
		SolarObserverError: SolarObserverError{
			Message: fmt.Sprintf("insufficient samples to fill window(s): %s", strings.Join(windows, ", ")),
		},
		Windows: windows,
	}
}

// -----------------------------------------------------------------------------
// Retry Logic (network fetches only; the aggregation pass never retries)
// -----------------------------------------------------------------------------

// RetryWithBackoff attempts to execute the operation up to maxRetries times with exponential backoff.
func RetryWithBackoff(operation string, maxRetries int, baseDelay time.Duration, fn func() (interface{}, error)) (interface{}, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		res, err := fn()
		if err == nil {
			return res, nil
		}

		lastErr = err
		if attempt == maxRetries-1 {
			break
		}

		delay := baseDelay * (1 << attempt)
		fmt.Printf("Warning: Attempt %d/%d failed for %s: %v. Retrying in %v\n", attempt+1, maxRetries, operation, err, delay)
		time.Sleep(delay)
	}

	return nil, &NetworkError{SolarObserverError{Message: fmt.Sprintf("%s failed after %d attempts", operation, maxRetries), Cause: lastErr}}
}

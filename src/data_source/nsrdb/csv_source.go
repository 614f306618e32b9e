package nsrdb

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"solar-observer/src/helpers"
	"solar-observer/src/interfaces"
	"solar-observer/src/logger"
	"solar-observer/src/models"
	"solar-observer/src/utils"
)

// -----------------------------------------------------------------------------
// CSVFileSource reads one NSRDB-style hourly file. Expected data columns:
// Year, Month, Day, Hour, Minute, GHI, Temperature. The first two rows of
// every file are non-data header lines and are skipped.
// -----------------------------------------------------------------------------

const headerLines = 2

// Column layout of a data row
const (
	colYear = iota
	colMonth
	colDay
	colHour
	colMinute
	colGHI
	colTemperature
	numColumns
)

type CSVFileSource struct {
	Path             string
	IgnoreStatedYear bool
	ReferenceYear    int
	Logger           *logger.Logger
}

// -----------------------------------------------------------------------------

func NewCSVFileSource(path string, ignoreStatedYear bool, referenceYear int, log *logger.Logger) *CSVFileSource {
	return &CSVFileSource{
		Path:             path,
		IgnoreStatedYear: ignoreStatedYear,
		ReferenceYear:    referenceYear,
		Logger:           log,
	}
}

// -----------------------------------------------------------------------------

// Name returns the file name of the source
func (s *CSVFileSource) Name() string {
	return filepath.Base(s.Path)
}

// -----------------------------------------------------------------------------

// Fetch reads the whole file and normalizes every data row. Any malformed
// row aborts the fetch with a MalformedRecordError naming file and line.
func (s *CSVFileSource) Fetch(ctx context.Context) ([]models.MSample, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &helpers.DataSourceError{SolarObserverError: helpers.SolarObserverError{
			Message: fmt.Sprintf("cannot open input file %s", s.Path),
			Cause:   err,
		}}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Header lines and data rows have different field counts
	reader.FieldsPerRecord = -1

	var samples []models.MSample
	line := 0

	for {
		if line%1024 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, helpers.NewMalformedRecordError(s.Name(), line+1, err)
		}
		line++

		if line <= headerLines {
			continue
		}

		raw := models.MRawRecord{
			File: s.Name(),
			Line: line,
		}
		if len(record) < numColumns {
			return nil, helpers.NewMalformedRecordError(s.Name(), line,
				fmt.Errorf("expected %d columns, got %d", numColumns, len(record)))
		}
		raw.Year = record[colYear]
		raw.Month = record[colMonth]
		raw.Day = record[colDay]
		raw.Hour = record[colHour]
		raw.Minute = record[colMinute]
		raw.GHI = record[colGHI]
		raw.Temperature = record[colTemperature]

		sample, err := NormalizeRecord(raw, s.IgnoreStatedYear, s.ReferenceYear)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	s.Logger.Debug("Fetched %d samples from %s", len(samples), s.Name())
	return samples, nil
}

// -----------------------------------------------------------------------------
// Sample Normalizer (pure transform)
// -----------------------------------------------------------------------------

// NormalizeRecord converts one raw row into a typed MSample. When
// ignoreStatedYear is set the row's year field is discarded and replaced
// with referenceYear for every row of the run, collapsing blended
// typical-year datasets onto one well-formed calendar.
func NormalizeRecord(raw models.MRawRecord, ignoreStatedYear bool, referenceYear int) (models.MSample, error) {
	var zero models.MSample

	year, err := parseField(raw, "year", raw.Year)
	if err != nil {
		return zero, err
	}
	if ignoreStatedYear {
		year = referenceYear
	}

	month, err := parseField(raw, "month", raw.Month)
	if err != nil {
		return zero, err
	}
	day, err := parseField(raw, "day", raw.Day)
	if err != nil {
		return zero, err
	}
	hour, err := parseField(raw, "hour", raw.Hour)
	if err != nil {
		return zero, err
	}
	minute, err := parseField(raw, "minute", raw.Minute)
	if err != nil {
		return zero, err
	}

	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); a round-trip
	// mismatch therefore means the stated date was not a real calendar date
	if ts.Year() != year || ts.Month() != time.Month(month) || ts.Day() != day ||
		ts.Hour() != hour || ts.Minute() != minute {
		return zero, helpers.NewMalformedRecordError(raw.File, raw.Line,
			fmt.Errorf("invalid calendar date %04d-%02d-%02d %02d:%02d", year, month, day, hour, minute))
	}

	ghi, err := strconv.Atoi(strings.TrimSpace(raw.GHI))
	if err != nil {
		return zero, helpers.NewMalformedRecordError(raw.File, raw.Line,
			fmt.Errorf("non-numeric GHI value %q", raw.GHI))
	}
	if ghi < 0 {
		return zero, helpers.NewMalformedRecordError(raw.File, raw.Line,
			fmt.Errorf("negative GHI value %d", ghi))
	}

	temp, err := strconv.ParseFloat(strings.TrimSpace(raw.Temperature), 64)
	if err != nil {
		return zero, helpers.NewMalformedRecordError(raw.File, raw.Line,
			fmt.Errorf("non-numeric temperature value %q", raw.Temperature))
	}

	return models.MSample{
		Timestamp:   ts,
		GHI:         ghi,
		Temperature: temp,
	}, nil
}

// -----------------------------------------------------------------------------

func parseField(raw models.MRawRecord, name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, helpers.NewMalformedRecordError(raw.File, raw.Line,
			fmt.Errorf("non-numeric %s value %q", name, value))
	}
	return v, nil
}

// -----------------------------------------------------------------------------
// Source Discovery
// -----------------------------------------------------------------------------

// NewSourcesFromDirectory builds one CSVFileSource per primary input file in
// the data directory. Files bearing the derived-file marker are intermediate
// artifacts and are skipped. Input file order is irrelevant to the result
// (the merge sorts), but discovery is sorted for reproducible logging.
func NewSourcesFromDirectory(cfg *models.MConfig, log *logger.Logger) ([]interfaces.IRecordSource, error) {
	dir := cfg.DataSource.DataDirectory

	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, &helpers.DataSourceError{SolarObserverError: helpers.SolarObserverError{
			Message: fmt.Sprintf("cannot scan data directory %s", dir),
			Cause:   err,
		}}
	}
	sort.Strings(matches)

	referenceYear := time.Now().UTC().Year()

	var sources []interfaces.IRecordSource
	for _, path := range matches {
		if strings.Contains(filepath.Base(path), utils.DerivedFileMarker) {
			log.Debug("Skipping derived file %s", filepath.Base(path))
			continue
		}
		sources = append(sources, NewCSVFileSource(path, cfg.DataSource.IgnoreStatedYear, referenceYear, log))
	}

	if len(sources) == 0 {
		return nil, &helpers.DataSourceError{SolarObserverError: helpers.SolarObserverError{
			Message: fmt.Sprintf("no input files found in %s", dir),
		}}
	}

	return sources, nil
}

package nsrdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-observer/src/helpers"
	"solar-observer/src/logger"
	"solar-observer/src/models"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func testLogger() *logger.Logger {
	return logger.NewLogger(nil, "test")
}

// Two non-data header lines, matching the vendor file layout
const testHeader = "Source,Location ID,Latitude,Longitude\n" +
	"NSRDB,145809,39.74,-104.99\n"

func writeCSV(t *testing.T, dir, name, rows string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(testHeader+rows), 0644))
	return path
}

func rawRecord(year, month, day, hour, minute, ghi, temp string) models.MRawRecord {
	return models.MRawRecord{
		File:        "test.csv",
		Line:        3,
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		GHI:         ghi,
		Temperature: temp,
	}
}

// -----------------------------------------------------------------------------

func TestFetchParsesDataRows(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "site.csv",
		"2020,1,1,0,0,0,-3.2\n"+
			"2020,1,1,1,0,15,-2.8\n"+
			"2020,1,1,2,0,120,-1.5\n")

	src := NewCSVFileSource(path, false, 2020, testLogger())
	samples, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), samples[0].Timestamp)
	assert.Equal(t, 0, samples[0].GHI)
	assert.InDelta(t, -3.2, samples[0].Temperature, 1e-9)

	assert.Equal(t, time.Date(2020, 1, 1, 2, 0, 0, 0, time.UTC), samples[2].Timestamp)
	assert.Equal(t, 120, samples[2].GHI)
}

// -----------------------------------------------------------------------------

func TestFetchReportsFileAndLine(t *testing.T) {
	t.Run("invalid calendar date", func(t *testing.T) {
		dir := t.TempDir()
		path := writeCSV(t, dir, "bad_date.csv",
			"2020,1,1,0,0,50,-1.0\n"+
				"2020,2,30,0,0,50,-1.0\n")

		src := NewCSVFileSource(path, false, 2020, testLogger())
		_, err := src.Fetch(context.Background())
		require.Error(t, err)

		var malformed *helpers.MalformedRecordError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "bad_date.csv", malformed.File)
		assert.Equal(t, 4, malformed.Line, "header lines count toward line numbers")
	})

	t.Run("too few columns", func(t *testing.T) {
		dir := t.TempDir()
		path := writeCSV(t, dir, "short.csv", "2020,1,1\n")

		src := NewCSVFileSource(path, false, 2020, testLogger())
		_, err := src.Fetch(context.Background())
		require.Error(t, err)

		var malformed *helpers.MalformedRecordError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 3, malformed.Line)
	})
}

// -----------------------------------------------------------------------------

func TestFetchHonoursCancellation(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "site.csv", "2020,1,1,0,0,0,-3.2\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewCSVFileSource(path, false, 2020, testLogger())
	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// -----------------------------------------------------------------------------

func TestFetchMissingFile(t *testing.T) {
	src := NewCSVFileSource(filepath.Join(t.TempDir(), "absent.csv"), false, 2020, testLogger())
	_, err := src.Fetch(context.Background())

	var dsErr *helpers.DataSourceError
	require.ErrorAs(t, err, &dsErr)
}

// -----------------------------------------------------------------------------

func TestNormalizeRecord(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		sample, err := NormalizeRecord(rawRecord("2019", "7", "14", "13", "30", "850", "31.5"), false, 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, 7, 14, 13, 30, 0, 0, time.UTC), sample.Timestamp)
		assert.Equal(t, 850, sample.GHI)
		assert.InDelta(t, 31.5, sample.Temperature, 1e-9)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		sample, err := NormalizeRecord(rawRecord(" 2019", "7", "14", "13", "0", " 850 ", " 31.5"), false, 0)
		require.NoError(t, err)
		assert.Equal(t, 850, sample.GHI)
	})

	t.Run("non-numeric GHI", func(t *testing.T) {
		_, err := NormalizeRecord(rawRecord("2019", "7", "14", "13", "0", "N/A", "31.5"), false, 0)
		var malformed *helpers.MalformedRecordError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("negative GHI", func(t *testing.T) {
		_, err := NormalizeRecord(rawRecord("2019", "7", "14", "13", "0", "-5", "31.5"), false, 0)
		var malformed *helpers.MalformedRecordError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("non-numeric temperature", func(t *testing.T) {
		_, err := NormalizeRecord(rawRecord("2019", "7", "14", "13", "0", "850", "warm"), false, 0)
		var malformed *helpers.MalformedRecordError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("non-numeric month", func(t *testing.T) {
		_, err := NormalizeRecord(rawRecord("2019", "July", "14", "13", "0", "850", "31.5"), false, 0)
		var malformed *helpers.MalformedRecordError
		require.ErrorAs(t, err, &malformed)
	})
}

// -----------------------------------------------------------------------------

func TestIgnoreStatedYearCollapsesBlendedDatasets(t *testing.T) {
	// Typical-year files blend rows from different source years; with the
	// flag set they all land on one reference calendar.
	years := []string{"2004", "2017", "1999"}
	for _, y := range years {
		sample, err := NormalizeRecord(rawRecord(y, "3", "15", "6", "0", "200", "10"), true, 2023)
		require.NoError(t, err)
		assert.Equal(t, 2023, sample.Timestamp.Year())
		assert.Equal(t, time.March, sample.Timestamp.Month())
	}

	// Without the flag the stated year is kept
	sample, err := NormalizeRecord(rawRecord("2004", "3", "15", "6", "0", "200", "10"), false, 2023)
	require.NoError(t, err)
	assert.Equal(t, 2004, sample.Timestamp.Year())
}

// -----------------------------------------------------------------------------

func TestNewSourcesFromDirectory(t *testing.T) {
	t.Run("discovers csv files and skips derived artifacts", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "b_site.csv", "2020,1,1,0,0,0,0\n")
		writeCSV(t, dir, "a_site.csv", "2020,1,1,0,0,0,0\n")
		writeCSV(t, dir, "a_site_derived.csv", "2020,1,1,0,0,0,0\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not data"), 0644))

		cfg := &models.MConfig{}
		cfg.DataSource.DataDirectory = dir

		sources, err := NewSourcesFromDirectory(cfg, testLogger())
		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, "a_site.csv", sources[0].Name())
		assert.Equal(t, "b_site.csv", sources[1].Name())
	})

	t.Run("empty directory is an error", func(t *testing.T) {
		cfg := &models.MConfig{}
		cfg.DataSource.DataDirectory = t.TempDir()

		_, err := NewSourcesFromDirectory(cfg, testLogger())
		var dsErr *helpers.DataSourceError
		require.ErrorAs(t, err, &dsErr)
	})
}

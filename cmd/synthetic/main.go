package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"solar-observer/src/analysis"
	datasource "solar-observer/src/data_source"
	"solar-observer/src/data_source/nsrdb"
	"solar-observer/src/logger"
	"solar-observer/src/models"
)

// -----------------------------------------------------------------------------
// Synthetic end-to-end harness: generates a deterministic hourly dataset
// split across several CSV files (written deliberately out of order), runs
// the full pipeline over it and prints the report.
// -----------------------------------------------------------------------------

func main() {
	days := flag.Int("days", 60, "number of days of synthetic data")
	files := flag.Int("files", 3, "number of CSV files to split the data across")
	dir := flag.String("dir", "", "output directory (temp dir when empty)")
	flag.Parse()

	outDir := *dir
	if outDir == "" {
		var err error
		outDir, err = os.MkdirTemp("", "solar-observer-synthetic")
		if err != nil {
			fmt.Printf("Error creating temp dir: %v\n", err)
			os.Exit(1)
		}
		defer os.RemoveAll(outDir)
	}

	cfg := &models.MConfig{
		Name:     "solar-observer-synthetic",
		LogLevel: "INFO",
		DataSource: models.MDataSourceConfig{
			DataDirectory: outDir,
		},
	}
	appLogger := logger.NewLogger(cfg, cfg.Name)

	if err := generateDataset(outDir, *days, *files); err != nil {
		appLogger.Critical("Failed to generate dataset: %v", err)
	}
	appLogger.Info("Generated %d days of synthetic data in %s", *days, outDir)

	sources, err := nsrdb.NewSourcesFromDirectory(cfg, appLogger)
	if err != nil {
		appLogger.Critical("Discovery failed: %v", err)
	}

	manager := datasource.NewMultiFileManager(sources, appLogger)
	batches, err := manager.FetchAll(context.Background())
	if err != nil {
		appLogger.Critical("Fetch failed: %v", err)
	}

	facade := analysis.NewAnalysisFacade(cfg, appLogger)
	stats, windows, metrics, err := facade.Run(batches)
	if err != nil {
		appLogger.Critical("Aggregation failed: %v", err)
	}

	fmt.Println()
	fmt.Printf("Processed %d samples from %d files in %.3fs\n",
		metrics.SamplesProcessed, metrics.FilesProcessed, metrics.AggregationTimeSeconds)
	for _, w := range windows {
		fmt.Printf("  %-4s  GHI sum %7d W/m²   peak sun %7.3f h   at %s\n",
			w.WindowName, w.GenerationSum, w.PeakSunHours, w.GenerationAt.Format("2006-01-02 15:04"))
		fmt.Printf("        avg temp %8.2f °C                      at %s\n",
			w.AvgTemperature, w.TemperatureAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("\n7-day worst generation: %d W/m² (%.3f peak sun hours)\n",
		stats.WorstCaseSolarPowerGeneration7DayPeriod, stats.WorstCasePeakSolarHours7DayPeriod)
}

// -----------------------------------------------------------------------------

// generateDataset writes hourly rows for the requested span, chunked across
// several files. Rows inside each file are written newest-first so the run
// also exercises the chronological merge.
func generateDataset(dir string, days, files int) error {
	if files < 1 {
		files = 1
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	total := days * 24

	rows := make([]string, 0, total)
	for i := 0; i < total; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		ghi, temp := syntheticConditions(ts, i)
		rows = append(rows, fmt.Sprintf("%d,%d,%d,%d,%d,%d,%.1f",
			ts.Year(), int(ts.Month()), ts.Day(), ts.Hour(), ts.Minute(), ghi, temp))
	}

	chunk := (total + files - 1) / files
	for f := 0; f < files; f++ {
		lo := f * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		if lo >= hi {
			break
		}

		path := filepath.Join(dir, fmt.Sprintf("synthetic_%02d.csv", f))
		out, err := os.Create(path)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "Source,Synthetic")
		fmt.Fprintln(out, "Year,Month,Day,Hour,Minute,GHI,Temperature")
		// Newest-first on purpose
		for i := hi - 1; i >= lo; i-- {
			fmt.Fprintln(out, rows[i])
		}
		if err := out.Close(); err != nil {
			return err
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// syntheticConditions produces a plausible diurnal GHI curve and temperature,
// with a deep three-day lull starting at day 20 so the worst-case windows
// land somewhere interesting.
func syntheticConditions(ts time.Time, hourIndex int) (int, float64) {
	hour := ts.Hour()

	ghi := 0.0
	if hour >= 6 && hour <= 18 {
		ghi = 900 * math.Sin(math.Pi*float64(hour-6)/12)
	}

	day := hourIndex / 24
	if day >= 20 && day < 23 {
		ghi *= 0.1 // storm lull
	}

	temp := 5 + 10*math.Sin(math.Pi*float64(hour-4)/24) - 0.05*float64(day)
	if day >= 20 && day < 23 {
		temp -= 8
	}

	return int(math.Round(ghi)), temp
}

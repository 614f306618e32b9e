package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"solar-observer/src/analysis"
	"solar-observer/src/config"
	datasource "solar-observer/src/data_source"
	"solar-observer/src/data_source/nsrdb"
	"solar-observer/src/logger"
	"solar-observer/src/models"
	"solar-observer/src/network"
	"solar-observer/src/server"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(conf.MConfig, conf.Name)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Optional vendor download (fills the data directory before discovery)
	if conf.Download.Enabled {
		netMgr := network.NewAsyncNetworkManager(conf.MConfig, appLogger)
		downloader := nsrdb.NewDownloader(conf.MConfig, netMgr, appLogger)

		n, err := downloader.DownloadAll()
		if err != nil {
			appLogger.Critical("Vendor download failed: %v", err)
		}
		if n > 0 {
			appLogger.Info("Downloaded %d vendor file(s)", n)
		}
	}

	// 2. Full pass: discover → normalize (parallel) → merge → aggregate → project
	snapshot, err := computeSnapshot(ctx, conf.MConfig, appLogger)
	if err != nil {
		appLogger.Critical("Processing failed: %v", err)
	}

	printReport(snapshot)

	// 3. One-shot mode ends here
	if !conf.ServeStats {
		return
	}

	// 4. Serving mode: expose the snapshot and rescan the directory
	srv := server.NewStatsServer(conf.MConfig, appLogger)
	srv.UpdateSnapshot(snapshot)

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	interval := conf.RescanIntervalSeconds
	if interval <= 0 {
		interval = 300
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	lastSignature := directorySignature(conf.DataSource.DataDirectory)
	appLogger.Info("Serving snapshot, rescanning every %ds...", interval)

	for {
		select {
		case <-ticker.C:
			signature := directorySignature(conf.DataSource.DataDirectory)
			if signature == lastSignature {
				continue
			}
			lastSignature = signature

			appLogger.Info("Data directory changed, recomputing...")
			snap, err := computeSnapshot(ctx, conf.MConfig, appLogger)
			if err != nil {
				// A broken rescan must not kill the served snapshot
				appLogger.Error("Rescan failed: %v", err)
				continue
			}
			srv.Broadcast(snap)

		case <-quit:
			appLogger.Info("Shutting down...")
			cancel()
			return
		}
	}
}

// -----------------------------------------------------------------------------

// computeSnapshot runs the whole pipeline once and wraps the result into the
// snapshot envelope shared with the server.
func computeSnapshot(ctx context.Context, cfg *models.MConfig, log *logger.Logger) (*models.MLatestData, error) {
	if cfg.DataSource.ExtractArchives {
		if _, err := nsrdb.ExtractArchives(cfg.DataSource.DataDirectory, log); err != nil {
			return nil, err
		}
	}

	sources, err := nsrdb.NewSourcesFromDirectory(cfg, log)
	if err != nil {
		return nil, err
	}

	manager := datasource.NewMultiFileManager(sources, log)
	batches, err := manager.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	facade := analysis.NewAnalysisFacade(cfg, log)
	stats, windows, metrics, err := facade.Run(batches)
	if err != nil {
		return nil, err
	}

	log.Info("Processed %d samples from %d file(s) in %.3fs",
		metrics.SamplesProcessed, metrics.FilesProcessed, metrics.AggregationTimeSeconds)

	return &models.MLatestData{
		Type:              "INITIAL",
		Stats:             stats,
		Windows:           windows,
		Timestamp:         time.Now().Unix(),
		ProcessingMetrics: metrics,
	}, nil
}

// -----------------------------------------------------------------------------

func printReport(snap *models.MLatestData) {
	fmt.Println()
	fmt.Println("Worst-case sustained conditions (all timestamps UTC, right edge of window):")
	for _, w := range snap.Windows {
		fmt.Printf("  %-4s  GHI sum %7d W/m²   peak sun %7.3f h   at %s\n",
			w.WindowName, w.GenerationSum, w.PeakSunHours, w.GenerationAt.Format("2006-01-02 15:04"))
		fmt.Printf("        avg temp %8.2f °C                      at %s\n",
			w.AvgTemperature, w.TemperatureAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
}

// -----------------------------------------------------------------------------

// directorySignature fingerprints the data directory contents so unchanged
// directories are not reprocessed on every rescan tick.
func directorySignature(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var b strings.Builder
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s:%d:%d;", e.Name(), info.Size(), info.ModTime().UnixNano())
	}
	return b.String()
}

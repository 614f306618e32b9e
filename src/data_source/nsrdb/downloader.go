package nsrdb

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-observer/src/helpers"
	"solar-observer/src/interfaces"
	"solar-observer/src/logger"
	"solar-observer/src/models"
)

// -----------------------------------------------------------------------------
// Downloader pulls hourly PSM3 CSVs from the NREL NSRDB API into the data
// directory so the regular file discovery can pick them up.
// -----------------------------------------------------------------------------

const psm3Endpoint = "https://developer.nrel.gov/api/nsrdb/v2/solar/psm3-download.csv"

type Downloader struct {
	Config  models.MDownloadConfig
	Network interfaces.INetworkManager
	Retries int
	DataDir string
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewDownloader(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *Downloader {
	return &Downloader{
		Config:  cfg.Download,
		Network: netMgr,
		Retries: cfg.Network.MaxRetries,
		DataDir: cfg.DataSource.DataDirectory,
		Logger:  log,
	}
}

// -----------------------------------------------------------------------------

// DownloadAll fetches every configured year that is not already present on
// disk. Returns the number of files downloaded.
func (d *Downloader) DownloadAll() (int, error) {
	downloaded := 0

	for _, year := range d.Config.Years {
		target := filepath.Join(d.DataDir, d.fileName(year))
		if _, err := os.Stat(target); err == nil {
			d.Logger.Debug("Year %d already present, skipping download", year)
			continue
		}

		if err := d.downloadYear(year, target); err != nil {
			return downloaded, err
		}
		downloaded++
	}

	return downloaded, nil
}

// -----------------------------------------------------------------------------

func (d *Downloader) downloadYear(year int, target string) error {
	d.Logger.Info("Downloading NSRDB year %d...", year)

	params := map[string]string{
		"api_key":    d.Config.APIKey,
		"email":      d.Config.Email,
		"wkt":        fmt.Sprintf("POINT(%f %f)", d.Config.Longitude, d.Config.Latitude),
		"names":      fmt.Sprintf("%d", year),
		"attributes": "ghi,air_temperature",
		"interval":   "60",
		"utc":        "true",
	}

	res, err := helpers.RetryWithBackoff(
		fmt.Sprintf("NSRDB fetch year %d", year),
		d.Retries,
		2*time.Second,
		func() (interface{}, error) {
			return d.Network.Get(psm3Endpoint, params)
		},
	)
	if err != nil {
		return err
	}

	body, ok := res.([]byte)
	if !ok {
		return &helpers.NetworkError{SolarObserverError: helpers.SolarObserverError{
			Message: fmt.Sprintf("unexpected response type %T for year %d", res, year),
		}}
	}

	return os.WriteFile(target, body, 0644)
}

// -----------------------------------------------------------------------------

func (d *Downloader) fileName(year int) string {
	return fmt.Sprintf("psm3_%.4f_%.4f_%d.csv", d.Config.Latitude, d.Config.Longitude, year)
}

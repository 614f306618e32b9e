package nsrdb

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"solar-observer/src/helpers"
	"solar-observer/src/logger"
)

// -----------------------------------------------------------------------------
// Vendor archive extraction. NSRDB bulk orders arrive as zip archives; any
// CSV payload they contain is unpacked next to them so discovery picks it up.
// -----------------------------------------------------------------------------

// ExtractArchives unpacks every *.zip in dir, flattening entries into dir
// itself. Existing files are never overwritten. Returns the number of CSV
// files extracted.
func ExtractArchives(dir string, log *logger.Logger) (int, error) {
	archives, err := filepath.Glob(filepath.Join(dir, "*.zip"))
	if err != nil {
		return 0, err
	}

	extracted := 0
	for _, archive := range archives {
		n, err := extractOne(archive, dir, log)
		if err != nil {
			return extracted, &helpers.DataSourceError{SolarObserverError: helpers.SolarObserverError{
				Message: fmt.Sprintf("cannot extract archive %s", filepath.Base(archive)),
				Cause:   err,
			}}
		}
		extracted += n
	}

	if extracted > 0 {
		log.Info("Extracted %d file(s) from %d archive(s)", extracted, len(archives))
	}
	return extracted, nil
}

// -----------------------------------------------------------------------------

func extractOne(archive, dir string, log *logger.Logger) (int, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	count := 0
	for _, entry := range r.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name), ".csv") {
			continue
		}

		// Flatten: archives may carry nested paths, only the base name is kept
		target := filepath.Join(dir, filepath.Base(entry.Name))
		if _, err := os.Stat(target); err == nil {
			log.Debug("Skipping %s, already extracted", filepath.Base(target))
			continue
		}

		if err := copyEntry(entry, target); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// -----------------------------------------------------------------------------

func copyEntry(entry *zip.File, target string) error {
	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

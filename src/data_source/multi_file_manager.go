package datasource

import (
	"context"
	"sync"

	"solar-observer/src/interfaces"
	"solar-observer/src/logger"
	"solar-observer/src/models"
)

// MultiFileManager fans normalization out across all record sources, one
// worker per source. Normalization of files is independent; the chronological
// merge downstream is the synchronization point.
type MultiFileManager struct {
	Sources []interfaces.IRecordSource
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewMultiFileManager(sources []interfaces.IRecordSource, log *logger.Logger) *MultiFileManager {
	return &MultiFileManager{
		Sources: sources,
		Logger:  log,
	}
}

// -----------------------------------------------------------------------------

// FetchAll fetches every source in parallel and returns one sample batch per
// source, indexed like Sources. Any source error is fatal for the whole run:
// the first error encountered (in source order) is returned and no partial
// result is produced.
func (m *MultiFileManager) FetchAll(ctx context.Context) ([][]models.MSample, error) {
	batches := make([][]models.MSample, len(m.Sources))
	errs := make([]error, len(m.Sources))

	var wg sync.WaitGroup
	for i, src := range m.Sources {
		wg.Add(1)
		go func(idx int, s interfaces.IRecordSource) {
			defer wg.Done()

			samples, err := s.Fetch(ctx)
			if err != nil {
				m.Logger.Error("Source %s failed: %v", s.Name(), err)
				errs[idx] = err
				return
			}
			batches[idx] = samples
		}(i, src)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return batches, nil
}

// -----------------------------------------------------------------------------

// SourceCount returns the number of managed sources
func (m *MultiFileManager) SourceCount() int {
	return len(m.Sources)
}

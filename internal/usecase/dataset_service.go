package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/record"
	"github.com/riskibarqy/fantacalcio-season/internal/infrastructure/dataset"
	"github.com/riskibarqy/fantacalcio-season/internal/platform/logging"
)

// DatasetService turns a directory of matchday CSV files into standardized
// per-matchday record sets.
type DatasetService struct {
	reader       *dataset.Reader
	standardizer *StandardizerService
	logger       *logging.Logger
	workerCount  int
}

func NewDatasetService(reader *dataset.Reader, standardizer *StandardizerService, workerCount int, logger *logging.Logger) *DatasetService {
	if reader == nil {
		reader = dataset.NewReader()
	}
	if standardizer == nil {
		standardizer = NewStandardizerService(logger)
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &DatasetService{
		reader:       reader,
		standardizer: standardizer,
		logger:       logger,
		workerCount:  workerCount,
	}
}

// LoadDir reads every matchday file in a directory in parallel and returns
// the standardized record sets. A file that fails to parse is logged as a
// warning and skipped; the rest of the batch proceeds.
func (s *DatasetService) LoadDir(ctx context.Context, dir string) (map[int][]record.MatchdayRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.LoadDir")
	defer span.End()

	files, err := dataset.DiscoverFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("discover matchday files: %w", err)
	}

	type loaded struct {
		matchday int
		rows     []record.MatchdayRecord
		err      error
	}
	results := make([]loaded, len(files))

	workers := pool.New().WithMaxGoroutines(s.workerCount)
	for idx, file := range files {
		idx, file := idx, file
		workers.Go(func() {
			rows, readErr := s.reader.ReadFile(file.Path)
			results[idx] = loaded{matchday: file.Matchday, rows: rows, err: readErr}
		})
	}
	workers.Wait()

	sets := make(map[int][]record.MatchdayRecord, len(files))
	failed := 0
	for i, result := range results {
		if result.err != nil {
			failed++
			s.logger.WarnContext(ctx, "matchday file skipped",
				"path", files[i].Path,
				"error", result.err,
			)
			continue
		}
		sets[result.matchday] = result.rows
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: all %d matchday files failed to load", ErrInvalidInput, len(files))
	}

	s.logger.InfoContext(ctx, "matchday files loaded",
		"dir", dir,
		"loaded", len(sets),
		"failed", failed,
	)

	return s.standardizer.Standardize(ctx, sets), nil
}

// WriteStandardized persists standardized sets back as matchday CSVs so
// successive runs diff cleanly. Per-matchday write failures are logged and
// do not block the others.
func (s *DatasetService) WriteStandardized(ctx context.Context, dir string, sets map[int][]record.MatchdayRecord) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.WriteStandardized")
	defer span.End()

	for matchday, rows := range sets {
		if _, err := dataset.WriteFile(dir, matchday, rows); err != nil {
			s.logger.WarnContext(ctx, "standardized matchday write failed",
				"matchday", matchday,
				"error", err,
			)
		}
	}
}

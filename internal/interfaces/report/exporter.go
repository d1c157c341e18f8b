package report

import (
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantacalcio-season/internal/usecase"
)

// Exporter writes the machine-readable season artifacts.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// SummaryFile is the name of the exported season summary document.
const SummaryFile = "season_summary.json"

// ProgressionsFile is the name of the exported per-team progression document.
const ProgressionsFile = "team_progressions.json"

// WriteSummary exports the season summary, final table included, as JSON.
func (e *Exporter) WriteSummary(summary usecase.SeasonSummary) (string, error) {
	return e.writeJSON(SummaryFile, summary)
}

// WriteProgressions exports every team's matchday trajectory as JSON.
func (e *Exporter) WriteProgressions(progressions []usecase.TeamProgression) (string, error) {
	return e.writeJSON(ProgressionsFile, progressions)
}

func (e *Exporter) writeJSON(name string, payload any) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", crerr.Wrapf(err, "create export directory %s", e.dir)
	}

	raw, err := sonic.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", crerr.Wrapf(err, "marshal %s", name)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write %s", path)
	}
	return path, nil
}

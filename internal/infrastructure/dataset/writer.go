package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/record"
)

var csvHeader = []string{
	"Team", "Cod", "Role", "Name", "Rating",
	"Gf", "Gs", "Rp", "Rs", "Rf", "Au", "Amm", "Esp", "Ass",
}

// WriteFile persists one matchday's record set as matchday<N>.csv, the same
// layout ReadFile consumes. Used to write standardized sets back for
// reproducible diffs.
func WriteFile(dir string, matchday int, rows []record.MatchdayRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", crerr.Wrapf(err, "create dir %s", dir)
	}

	path := filepath.Join(dir, fmt.Sprintf("matchday%d.csv", matchday))
	f, err := os.Create(path)
	if err != nil {
		return "", crerr.Wrapf(err, "create matchday file %s", path)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		return "", crerr.Wrapf(err, "write header %s", path)
	}

	for _, row := range rows {
		line := []string{
			row.Team,
			strconv.Itoa(row.Code),
			row.Role,
			row.Name,
			formatRating(row.Rating),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			strconv.Itoa(row.PenaltiesMissed),
			strconv.Itoa(row.PenaltiesSaved),
			strconv.Itoa(row.PenaltiesConceded),
			strconv.Itoa(row.OwnGoals),
			strconv.Itoa(row.YellowCards),
			strconv.Itoa(row.RedCards),
			strconv.Itoa(row.Assists),
		}
		if err := writer.Write(line); err != nil {
			return "", crerr.Wrapf(err, "write row %s", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", crerr.Wrapf(err, "flush %s", path)
	}
	return path, nil
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/record"
)

var (
	ErrNoMatchdayFiles = crerr.New("no matchday files found")
	ErrMissingColumn   = crerr.New("missing required column")
	ErrBadMatchdayName = crerr.New("cannot extract matchday number from filename")
)

var matchdayFilePattern = regexp.MustCompile(`(?i)matchday(\d+)\.csv$`)

// Reader extracts typed matchday records from matchday<N>.csv files.
type Reader struct {
	validate *validator.Validate
}

func NewReader() *Reader {
	return &Reader{validate: validator.New()}
}

// File is one discovered matchday file.
type File struct {
	Path     string
	Matchday int
}

// DiscoverFiles lists the matchday CSV files of a directory, ordered by
// matchday number.
func DiscoverFiles(dir string) ([]File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "matchday*.csv"))
	if err != nil {
		return nil, crerr.Wrapf(err, "glob matchday files in %s", dir)
	}
	if len(paths) == 0 {
		return nil, crerr.Wrapf(ErrNoMatchdayFiles, "dir=%s", dir)
	}

	out := make([]File, 0, len(paths))
	for _, path := range paths {
		matchday, err := MatchdayFromFilename(filepath.Base(path))
		if err != nil {
			continue
		}
		out = append(out, File{Path: path, Matchday: matchday})
	}
	if len(out) == 0 {
		return nil, crerr.Wrapf(ErrNoMatchdayFiles, "dir=%s has no parseable matchday filenames", dir)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Matchday < out[j].Matchday
	})
	return out, nil
}

func MatchdayFromFilename(name string) (int, error) {
	match := matchdayFilePattern.FindStringSubmatch(name)
	if match == nil {
		return 0, crerr.Wrapf(ErrBadMatchdayName, "file=%s", name)
	}
	matchday, err := strconv.Atoi(match[1])
	if err != nil || matchday <= 0 {
		return 0, crerr.Wrapf(ErrBadMatchdayName, "file=%s", name)
	}
	return matchday, nil
}

// ReadFile parses one matchday CSV into validated records. Numeric cells that
// are empty default to 0; a row failing boundary validation fails the file.
func (r *Reader) ReadFile(path string) ([]record.MatchdayRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open matchday file %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, crerr.Wrapf(err, "parse csv %s", path)
	}
	if len(rows) < 1 {
		return nil, crerr.Newf("empty csv %s", path)
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, crerr.Wrapf(err, "file=%s", path)
	}

	out := make([]record.MatchdayRecord, 0, len(rows)-1)
	for lineNo, row := range rows[1:] {
		item, err := r.parseRow(row, index)
		if err != nil {
			return nil, crerr.Wrapf(err, "file=%s line=%d", path, lineNo+2)
		}
		out = append(out, item)
	}
	return out, nil
}

var requiredColumns = []string{"Team", "Cod", "Role", "Name", "Rating"}
var numericColumns = []string{"Gf", "Gs", "Rp", "Rs", "Rf", "Au", "Amm", "Esp", "Ass"}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, crerr.Wrapf(ErrMissingColumn, "column=%s", name)
		}
	}
	return index, nil
}

func (r *Reader) parseRow(row []string, index map[string]int) (record.MatchdayRecord, error) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	code, err := strconv.Atoi(cell("Cod"))
	if err != nil {
		return record.MatchdayRecord{}, crerr.Wrapf(err, "parse Cod %q", cell("Cod"))
	}
	rating, err := parseFloatCell(cell("Rating"))
	if err != nil {
		return record.MatchdayRecord{}, crerr.Wrapf(err, "parse Rating %q", cell("Rating"))
	}

	counts := make(map[string]int, len(numericColumns))
	for _, name := range numericColumns {
		value, err := parseIntCell(cell(name))
		if err != nil {
			return record.MatchdayRecord{}, crerr.Wrapf(err, "parse %s %q", name, cell(name))
		}
		counts[name] = value
	}

	item := record.MatchdayRecord{
		Team:              cell("Team"),
		Code:              code,
		Role:              cell("Role"),
		Name:              cell("Name"),
		Rating:            rating,
		GoalsFor:          counts["Gf"],
		GoalsAgainst:      counts["Gs"],
		PenaltiesMissed:   counts["Rp"],
		PenaltiesSaved:    counts["Rs"],
		PenaltiesConceded: counts["Rf"],
		OwnGoals:          counts["Au"],
		YellowCards:       counts["Amm"],
		RedCards:          counts["Esp"],
		Assists:           counts["Ass"],
	}

	if err := r.validate.Struct(item); err != nil {
		return record.MatchdayRecord{}, crerr.Wrapf(err, "validate record cod=%d", code)
	}
	return item, nil
}

func parseFloatCell(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
}

func parseIntCell(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	// Some sources export counts as floats ("1.0").
	if strings.ContainsAny(v, ".,") {
		f, err := parseFloatCell(v)
		if err != nil {
			return 0, err
		}
		return int(f), nil
	}
	return strconv.Atoi(v)
}

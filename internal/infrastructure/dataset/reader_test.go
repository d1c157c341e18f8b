package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/record"
)

const sampleCSV = `Team,Cod,Role,Name,Rating,Gf,Gs,Rp,Rs,Rf,Au,Amm,Esp,Ass
Milan,101,A,Rossi,6.5,1,,,,,,1,,1
Milan,102,P,Maignan,6,,0,,1,,,,,
Inter,103,D,Bianchi,0,,,,,,,,,
`

func writeSample(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "matchday1.csv", sampleCSV)

	rows, err := NewReader().ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	rossi := rows[0]
	require.Equal(t, "Milan", rossi.Team)
	require.Equal(t, 101, rossi.Code)
	require.Equal(t, "A", rossi.Role)
	require.Equal(t, 6.5, rossi.Rating)
	require.Equal(t, 1, rossi.GoalsFor)
	require.Equal(t, 1, rossi.YellowCards)
	require.Equal(t, 1, rossi.Assists)
	// Empty cells default to zero.
	require.Equal(t, 0, rossi.GoalsAgainst)

	keeper := rows[1]
	require.Equal(t, 1, keeper.PenaltiesSaved)

	require.Equal(t, 0.0, rows[2].Rating)
}

func TestReadFileMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "matchday1.csv", "Team,Cod,Name\nMilan,1,Rossi\n")

	_, err := NewReader().ReadFile(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingColumn))
}

func TestReadFileRejectsUnknownRole(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "matchday1.csv",
		"Team,Cod,Role,Name,Rating,Gf,Gs,Rp,Rs,Rf,Au,Amm,Esp,Ass\nMilan,1,X,Rossi,6,,,,,,,,,\n")

	_, err := NewReader().ReadFile(path)
	require.Error(t, err)
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "matchday10.csv", sampleCSV)
	writeSample(t, dir, "matchday2.csv", sampleCSV)
	writeSample(t, dir, "matchday1.csv", sampleCSV)
	writeSample(t, dir, "notes.csv", "x\n")

	files, err := DiscoverFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	require.Equal(t, []int{1, 2, 10}, []int{files[0].Matchday, files[1].Matchday, files[2].Matchday})
}

func TestDiscoverFilesEmptyDir(t *testing.T) {
	_, err := DiscoverFiles(t.TempDir())
	require.True(t, errors.Is(err, ErrNoMatchdayFiles))
}

func TestMatchdayFromFilename(t *testing.T) {
	matchday, err := MatchdayFromFilename("matchday7.csv")
	require.NoError(t, err)
	require.Equal(t, 7, matchday)

	_, err = MatchdayFromFilename("giornata7.xlsx")
	require.True(t, errors.Is(err, ErrBadMatchdayName))
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rows := []record.MatchdayRecord{
		{Team: "Milan", Code: 101, Role: "A", Name: "Rossi", Rating: 6.5, GoalsFor: 1},
		{Team: "Inter", Code: 103, Role: "D", Name: "Bianchi"},
	}

	path, err := WriteFile(dir, 3, rows)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "matchday3.csv"), path)

	back, err := NewReader().ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, rows, back)
}

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/season"
	"github.com/riskibarqy/fantacalcio-season/internal/usecase"
)

func sampleTable() []season.TeamStats {
	return []season.TeamStats{
		{Team: "Gold", Position: 1, TotalPoints: 280.5, MatchdaysPlayed: 38, AverageScore: 7.38, BestScore: 12.5, WorstScore: 3.0},
		{Team: "Silver", Position: 2, TotalPoints: 261.0, MatchdaysPlayed: 38, AverageScore: 6.87, BestScore: 11.0, WorstScore: 2.5},
	}
}

func TestRendererFinalTable(t *testing.T) {
	out := NewRenderer().FinalTable("Serie A Fantacalcio", sampleTable())

	require.Contains(t, out, "FINAL STANDINGS: Serie A Fantacalcio")
	require.Contains(t, out, "Gold")
	require.Contains(t, out, "280.5")
	goldAt := strings.Index(out, "Gold")
	silverAt := strings.Index(out, "Silver")
	require.Less(t, goldAt, silverAt, "standings must list the leader first")
}

func TestRendererMatchdayScores(t *testing.T) {
	out := NewRenderer().MatchdayScores(7, []usecase.MatchdayScore{
		{Team: "Gold", Score: 9.5},
		{Team: "Silver", Score: 6.0},
	})

	require.Contains(t, out, "MATCHDAY 7")
	require.Contains(t, out, " 1. Gold")
	require.Contains(t, out, " 2. Silver")
}

func TestRendererProgressionAndSummary(t *testing.T) {
	progression := usecase.TeamProgression{
		Team: "Gold",
		Progression: []usecase.ProgressionEntry{
			{Matchday: 1, Score: 6.0, Cumulative: 6.0},
			{Matchday: 2, Score: 7.5, Cumulative: 13.5},
		},
		FinalTotal: 13.5,
	}
	out := NewRenderer().Progression(progression)
	require.Contains(t, out, "PROGRESSION: Gold")
	require.Contains(t, out, "Final total: 13.5")

	summary := usecase.SeasonSummary{
		SeasonName:              "Serie A Fantacalcio",
		Teams:                   2,
		TotalMatchdaysProcessed: 38,
		AverageScorePerMatchday: 6.9,
		Champion:                "Gold",
		ChampionPoints:          280.5,
		HighestSingleScore:      12.5,
		HighestScoreTeam:        "Gold",
		MostConsistentTeam:      "Silver",
	}
	out = NewRenderer().Summary(summary)
	require.Contains(t, out, "Champion:             Gold (280.5 pts)")
	require.Contains(t, out, "Most consistent:      Silver")
}

func TestExporterWritesJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exporter := NewExporter(dir)

	summary := usecase.SeasonSummary{
		SeasonName:     "Serie A Fantacalcio",
		Teams:          2,
		FinalTable:     sampleTable(),
		Champion:       "Gold",
		ChampionPoints: 280.5,
	}
	path, err := exporter.WriteSummary(summary)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded usecase.SeasonSummary
	require.NoError(t, sonic.Unmarshal(raw, &decoded))
	require.Equal(t, "Gold", decoded.Champion)
	require.Len(t, decoded.FinalTable, 2)

	_, err = exporter.WriteProgressions([]usecase.TeamProgression{{Team: "Gold"}})
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, ProgressionsFile))
	require.NoError(t, statErr)
}

package report

import (
	"fmt"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/season"
	"github.com/riskibarqy/fantacalcio-season/internal/usecase"
)

// Renderer produces the human-readable season reports. Buffers come from a
// shared pool since a full run renders several tables back to back.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// FinalTable renders the ranked season standings.
func (r *Renderer) FinalTable(seasonName string, table []season.TeamStats) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeHeader(buf, fmt.Sprintf("FINAL STANDINGS: %s", seasonName))
	fmt.Fprintf(buf, "%-4s %-24s %10s %6s %8s %8s %8s\n",
		"POS", "TEAM", "POINTS", "MD", "AVG", "BEST", "WORST")
	for _, row := range table {
		fmt.Fprintf(buf, "%-4d %-24s %10.1f %6d %8.2f %8.1f %8.1f\n",
			row.Position, row.Team, row.TotalPoints, row.MatchdaysPlayed,
			row.AverageScore, row.BestScore, row.WorstScore)
	}
	return buf.String()
}

// MatchdayScores renders a single matchday's ranked scores.
func (r *Renderer) MatchdayScores(matchday int, scores []usecase.MatchdayScore) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeHeader(buf, fmt.Sprintf("MATCHDAY %d", matchday))
	for idx, entry := range scores {
		fmt.Fprintf(buf, "%2d. %-24s %6.1f\n", idx+1, entry.Team, entry.Score)
	}
	return buf.String()
}

// Progression renders a team's matchday-by-matchday trajectory.
func (r *Renderer) Progression(progression usecase.TeamProgression) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeHeader(buf, fmt.Sprintf("PROGRESSION: %s", progression.Team))
	fmt.Fprintf(buf, "%-8s %8s %12s\n", "MD", "SCORE", "CUMULATIVE")
	for _, entry := range progression.Progression {
		fmt.Fprintf(buf, "%-8d %8.1f %12.1f\n", entry.Matchday, entry.Score, entry.Cumulative)
	}
	fmt.Fprintf(buf, "\nFinal total: %.1f\n", progression.FinalTotal)
	return buf.String()
}

// Summary renders the end-of-season highlights.
func (r *Renderer) Summary(summary usecase.SeasonSummary) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeHeader(buf, fmt.Sprintf("SEASON SUMMARY: %s", summary.SeasonName))
	fmt.Fprintf(buf, "Teams:                %d\n", summary.Teams)
	fmt.Fprintf(buf, "Matchdays processed:  %d\n", summary.TotalMatchdaysProcessed)
	fmt.Fprintf(buf, "Average score:        %.2f\n", summary.AverageScorePerMatchday)
	fmt.Fprintf(buf, "Champion:             %s (%.1f pts)\n", summary.Champion, summary.ChampionPoints)
	fmt.Fprintf(buf, "Highest single score: %.1f (%s)\n", summary.HighestSingleScore, summary.HighestScoreTeam)
	fmt.Fprintf(buf, "Most consistent:      %s\n", summary.MostConsistentTeam)
	return buf.String()
}

func writeHeader(buf *bytebufferpool.ByteBuffer, title string) {
	rule := strings.Repeat("=", 72)
	fmt.Fprintf(buf, "%s\n%s\n%s\n", rule, title, rule)
}

package season

import "math"

// TotalMatchdays is the number of rounds in a Serie A season.
const TotalMatchdays = 38

// Table accumulates one team's matchday scores across a season.
type Table struct {
	TeamName       string
	matchdayScores map[int]float64
}

func NewTable(teamName string) *Table {
	return &Table{
		TeamName:       teamName,
		matchdayScores: make(map[int]float64),
	}
}

// AddMatchdayScore records a score with overwrite semantics: re-adding a
// matchday replaces the previous value instead of double-counting it.
func (t *Table) AddMatchdayScore(matchday int, score float64) {
	t.matchdayScores[matchday] = score
}

func (t *Table) Score(matchday int) (float64, bool) {
	score, ok := t.matchdayScores[matchday]
	return score, ok
}

// TotalPoints is always recomputed as the sum of the recorded scores, so the
// total can never drift from the map.
func (t *Table) TotalPoints() float64 {
	total := 0.0
	for _, score := range t.matchdayScores {
		total += score
	}
	return total
}

func (t *Table) MatchdaysPlayed() int {
	return len(t.matchdayScores)
}

// TeamStats is a derived snapshot of one table, used for standings rows.
type TeamStats struct {
	Team            string  `json:"team"`
	Position        int     `json:"position"`
	TotalPoints     float64 `json:"total_points"`
	MatchdaysPlayed int     `json:"matchdays_played"`
	AverageScore    float64 `json:"average_score"`
	BestScore       float64 `json:"best_score"`
	WorstScore      float64 `json:"worst_score"`
}

func (t *Table) Stats() TeamStats {
	total := t.TotalPoints()
	played := t.MatchdaysPlayed()

	divisor := played
	if divisor < 1 {
		divisor = 1
	}

	best := 0.0
	worst := 0.0
	first := true
	for _, score := range t.matchdayScores {
		if first {
			best = score
			worst = score
			first = false
			continue
		}
		if score > best {
			best = score
		}
		if score < worst {
			worst = score
		}
	}

	return TeamStats{
		Team:            t.TeamName,
		TotalPoints:     Round1(total),
		MatchdaysPlayed: played,
		AverageScore:    Round1(total / float64(divisor)),
		BestScore:       best,
		WorstScore:      worst,
	}
}

// Round1 rounds to one decimal, the resolution every fantavoto-derived score
// is reported at.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

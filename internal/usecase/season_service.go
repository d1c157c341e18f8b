package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/season"
	"github.com/riskibarqy/fantacalcio-season/internal/domain/team"
	"github.com/riskibarqy/fantacalcio-season/internal/platform/logging"
)

// SeasonService owns the team list and one season table per team. Tables are
// created at construction and live for the whole season.
type SeasonService struct {
	name   string
	teams  []*team.Team
	tables map[string]*season.Table
	logger *logging.Logger

	workerCount     int
	currentMatchday int
	completed       bool
}

type MatchdayScore struct {
	Team  string  `json:"team"`
	Score float64 `json:"score"`
}

type ProgressionEntry struct {
	Matchday   int     `json:"matchday"`
	Score      float64 `json:"score"`
	Cumulative float64 `json:"cumulative_points"`
}

type TeamProgression struct {
	Team        string             `json:"team"`
	Progression []ProgressionEntry `json:"progression"`
	FinalTotal  float64            `json:"final_total"`
}

type SeasonSummary struct {
	SeasonName              string             `json:"season_name"`
	Teams                   int                `json:"teams"`
	TotalMatchdaysProcessed int                `json:"total_matchdays_processed"`
	AverageScorePerMatchday float64            `json:"average_score_per_matchday"`
	FinalTable              []season.TeamStats `json:"final_table"`
	Champion                string             `json:"champion"`
	ChampionPoints          float64            `json:"champion_points"`
	HighestSingleScore      float64            `json:"highest_single_score"`
	HighestScoreTeam        string             `json:"highest_score_team"`
	MostConsistentTeam      string             `json:"most_consistent_team"`
	SeasonCompleted         bool               `json:"season_completed"`
}

func NewSeasonService(name string, teams []*team.Team, workerCount int, logger *logging.Logger) (*SeasonService, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	tables := make(map[string]*season.Table, len(teams))
	for _, item := range teams {
		if item == nil || item.Name == "" {
			return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
		}
		if _, exists := tables[item.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTeam, item.Name)
		}
		tables[item.Name] = season.NewTable(item.Name)
	}

	return &SeasonService{
		name:            name,
		teams:           teams,
		tables:          tables,
		logger:          logger,
		workerCount:     workerCount,
		currentMatchday: 1,
	}, nil
}

func (s *SeasonService) Name() string {
	return s.name
}

func (s *SeasonService) CurrentMatchday() int {
	return s.currentMatchday
}

func (s *SeasonService) Completed() bool {
	return s.completed
}

// ProcessMatchday scores every team for one matchday and records the results.
// Scoring has no cross-team dependency, so teams fan out on a bounded worker
// pool; each table write happens after the pool drains. The current-matchday
// pointer advances only when the processed matchday equals it — out-of-order
// calls record scores without advancing.
func (s *SeasonService) ProcessMatchday(ctx context.Context, matchday int) (map[string]float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ProcessMatchday")
	defer span.End()

	if matchday < 1 || matchday > season.TotalMatchdays {
		return nil, fmt.Errorf("%w: matchday must be between 1 and %d, got %d",
			ErrMatchdayOutOfRange, season.TotalMatchdays, matchday)
	}

	type teamScore struct {
		name  string
		score float64
		err   error
	}

	results := make([]teamScore, len(s.teams))

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return nil, fmt.Errorf("create scoring pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx, item := range s.teams {
		idx, item := idx, item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			score, scoreErr := item.TotalScore(matchday)
			results[idx] = teamScore{name: item.Name, score: score, err: scoreErr}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit team to scoring pool: %w", err)
		}
	}
	workers.Wait()

	// No table is touched until every team scored cleanly: a failed
	// aggregation must not leave a half-written matchday behind.
	for _, row := range results {
		if row.err != nil {
			return nil, fmt.Errorf("%w: matchday=%d team=%s: %v", ErrAggregationFailed, matchday, row.name, row.err)
		}
	}

	scores := make(map[string]float64, len(results))
	for _, row := range results {
		s.tables[row.name].AddMatchdayScore(matchday, row.score)
		scores[row.name] = row.score
	}

	if matchday == s.currentMatchday {
		s.currentMatchday++
	}

	s.logger.InfoContext(ctx, "matchday processed",
		"matchday", matchday,
		"teams", len(scores),
	)

	return scores, nil
}

// ProcessCompleteSeason runs matchdays 1 through 38 in order, marks the
// season completed, and returns the summary. Any aggregation failure aborts
// the run; partial season state is not reported.
func (s *SeasonService) ProcessCompleteSeason(ctx context.Context) (SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ProcessCompleteSeason")
	defer span.End()

	s.logger.InfoContext(ctx, "season processing started", "season", s.name, "teams", len(s.teams))

	for matchday := 1; matchday <= season.TotalMatchdays; matchday++ {
		if _, err := s.ProcessMatchday(ctx, matchday); err != nil {
			return SeasonSummary{}, fmt.Errorf("process matchday %d: %w", matchday, err)
		}
	}

	s.completed = true
	s.logger.InfoContext(ctx, "season processing completed", "season", s.name)

	return s.SeasonSummary(), nil
}

// SeasonTable snapshots every team's stats ranked by total points descending.
// Ties keep stable-sort order; no secondary key is applied. Positions are
// assigned 1..N after sorting.
func (s *SeasonService) SeasonTable() []season.TeamStats {
	out := make([]season.TeamStats, 0, len(s.teams))
	for _, item := range s.teams {
		out = append(out, s.tables[item.Name].Stats())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalPoints > out[j].TotalPoints
	})

	for idx := range out {
		out[idx].Position = idx + 1
	}
	return out
}

// MatchdayScores lists the recorded scores of one matchday ranked descending.
func (s *SeasonService) MatchdayScores(matchday int) ([]MatchdayScore, error) {
	if matchday < 1 || matchday > season.TotalMatchdays {
		return nil, fmt.Errorf("%w: matchday must be between 1 and %d, got %d",
			ErrMatchdayOutOfRange, season.TotalMatchdays, matchday)
	}

	out := make([]MatchdayScore, 0, len(s.teams))
	for _, item := range s.teams {
		score, ok := s.tables[item.Name].Score(matchday)
		if !ok {
			continue
		}
		out = append(out, MatchdayScore{Team: item.Name, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}

// TeamProgression returns one team's matchday-by-matchday scores with the
// running cumulative total.
func (s *SeasonService) TeamProgression(teamName string) (TeamProgression, error) {
	table, ok := s.tables[teamName]
	if !ok {
		return TeamProgression{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamName)
	}

	progression := make([]ProgressionEntry, 0, table.MatchdaysPlayed())
	cumulative := 0.0
	for matchday := 1; matchday <= season.TotalMatchdays; matchday++ {
		score, recorded := table.Score(matchday)
		if !recorded {
			continue
		}
		cumulative += score
		progression = append(progression, ProgressionEntry{
			Matchday:   matchday,
			Score:      score,
			Cumulative: season.Round1(cumulative),
		})
	}

	return TeamProgression{
		Team:        teamName,
		Progression: progression,
		FinalTotal:  season.Round1(cumulative),
	}, nil
}

// SeasonSummary aggregates the season: final table, champion, the highest
// single matchday score, and the most consistent team (smallest best-worst
// spread, a proxy for variance).
func (s *SeasonService) SeasonSummary() SeasonSummary {
	finalTable := s.SeasonTable()

	scoreSum := 0.0
	scoreCount := 0
	totalMatchdays := 0
	for _, item := range s.teams {
		table := s.tables[item.Name]
		totalMatchdays += table.MatchdaysPlayed()
		for matchday := 1; matchday <= season.TotalMatchdays; matchday++ {
			if score, ok := table.Score(matchday); ok {
				scoreSum += score
				scoreCount++
			}
		}
	}

	average := 0.0
	if scoreCount > 0 {
		average = season.Round1(scoreSum / float64(scoreCount))
	}

	summary := SeasonSummary{
		SeasonName:              s.name,
		Teams:                   len(s.teams),
		TotalMatchdaysProcessed: totalMatchdays,
		AverageScorePerMatchday: average,
		FinalTable:              finalTable,
		SeasonCompleted:         s.completed,
	}

	if len(finalTable) == 0 {
		return summary
	}

	summary.Champion = finalTable[0].Team
	summary.ChampionPoints = finalTable[0].TotalPoints

	highest := finalTable[0]
	consistent := finalTable[0]
	for _, row := range finalTable[1:] {
		if row.BestScore > highest.BestScore {
			highest = row
		}
		if row.BestScore-row.WorstScore < consistent.BestScore-consistent.WorstScore {
			consistent = row
		}
	}
	summary.HighestSingleScore = highest.BestScore
	summary.HighestScoreTeam = highest.Team
	summary.MostConsistentTeam = consistent.Team

	return summary
}

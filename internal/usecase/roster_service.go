package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/player"
	"github.com/riskibarqy/fantacalcio-season/internal/domain/record"
	"github.com/riskibarqy/fantacalcio-season/internal/domain/team"
	"github.com/riskibarqy/fantacalcio-season/internal/infrastructure/rosterconfig"
	"github.com/riskibarqy/fantacalcio-season/internal/platform/logging"
)

// RosterService builds fully populated fantasy squads from team
// configurations and standardized matchday record sets.
type RosterService struct {
	rules  team.Rules
	logger *logging.Logger
}

func NewRosterService(rules team.Rules, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RosterService{rules: rules, logger: logger}
}

// BuildTeams resolves every configured team against the standardized sets:
// display names become player codes via the reference matchday, players are
// instantiated from their reference rows, and every matchday's stats are
// attached. Unresolvable entries are logged and skipped rather than failing
// the whole squad.
func (s *RosterService) BuildTeams(ctx context.Context, configs []rosterconfig.TeamConfig, sets map[int][]record.MatchdayRecord) ([]*team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.BuildTeams")
	defer span.End()

	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: no team configurations", ErrInvalidInput)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no matchday record sets", ErrInvalidInput)
	}

	reference := referenceRecords(sets)
	byCode := make(map[int]record.MatchdayRecord, len(reference))
	codeByName := make(map[string]int, len(reference))
	for _, row := range reference {
		byCode[row.Code] = row
		key := nameKey(row.Name)
		if _, seen := codeByName[key]; !seen {
			codeByName[key] = row.Code
		}
	}

	teams := make([]*team.Team, 0, len(configs))
	for _, cfg := range configs {
		codes := cfg.PlayerCodes
		if !cfg.HasExplicitCodes() {
			codes = s.resolveNames(ctx, cfg, codeByName)
		}

		squad := team.New(cfg.Name, codes)
		for _, code := range codes {
			row, ok := byCode[code]
			if !ok {
				s.logger.WarnContext(ctx, "player code missing from reference matchday",
					"team", cfg.Name,
					"code", code,
				)
				continue
			}
			p, err := s.buildPlayer(row, sets)
			if err != nil {
				s.logger.WarnContext(ctx, "player skipped",
					"team", cfg.Name,
					"code", code,
					"error", err,
				)
				continue
			}
			squad.AddPlayer(p)
		}

		if ok, counts := squad.ValidateComposition(s.rules); !ok {
			s.logger.WarnContext(ctx, "squad composition off the expected shape",
				"team", squad.Name,
				"goalkeepers", counts[player.RoleGoalkeeper],
				"defenders", counts[player.RoleDefender],
				"midfielders", counts[player.RoleMidfielder],
				"forwards", counts[player.RoleForward],
			)
		}
		teams = append(teams, squad)
	}
	return teams, nil
}

func (s *RosterService) buildPlayer(row record.MatchdayRecord, sets map[int][]record.MatchdayRecord) (*player.Player, error) {
	role, err := player.RoleFromCode(row.Role)
	if err != nil {
		return nil, err
	}
	p, err := player.New(row.Code, role, row.Name, row.Team)
	if err != nil {
		return nil, err
	}
	for matchday, rows := range sets {
		for _, candidate := range rows {
			if candidate.Code == row.Code {
				p.AddMatchdayStats(matchday, candidate.Stats())
				break
			}
		}
	}
	return p, nil
}

// resolveNames maps the per-role display names of a configuration to player
// codes. Entries written as "Name (Club)" drop the club suffix first.
func (s *RosterService) resolveNames(ctx context.Context, cfg rosterconfig.TeamConfig, codeByName map[string]int) []int {
	names := cfg.PlayerNames()
	codes := make([]int, 0, len(names))
	for _, name := range names {
		code, ok := codeByName[nameKey(name)]
		if !ok {
			s.logger.WarnContext(ctx, "player name not found in reference matchday",
				"team", cfg.Name,
				"player", name,
			)
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// referenceRecords returns the rows of the lowest loaded matchday. After
// standardization every matchday carries the same player universe, so any
// set would do; the lowest keeps the choice deterministic.
func referenceRecords(sets map[int][]record.MatchdayRecord) []record.MatchdayRecord {
	matchdays := make([]int, 0, len(sets))
	for matchday := range sets {
		matchdays = append(matchdays, matchday)
	}
	sort.Ints(matchdays)
	return sets[matchdays[0]]
}

func nameKey(name string) string {
	if idx := strings.Index(name, " ("); idx >= 0 {
		name = name[:idx]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

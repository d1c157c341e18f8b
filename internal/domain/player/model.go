package player

import (
	"errors"
	"fmt"
	"math"
)

// Role represents the football role categories used for fantavoto bonuses
// and squad composition checks.
type Role string

const (
	RoleGoalkeeper Role = "GK"
	RoleDefender   Role = "DEF"
	RoleMidfielder Role = "MID"
	RoleForward    Role = "FWD"
)

var AllRoles = map[Role]struct{}{
	RoleGoalkeeper: {},
	RoleDefender:   {},
	RoleMidfielder: {},
	RoleForward:    {},
}

var ErrUnknownRoleCode = errors.New("unknown role code")

// roleByCode maps the single-letter codes used by the matchday source files
// (P/D/C/A) to canonical roles.
var roleByCode = map[string]Role{
	"P": RoleGoalkeeper,
	"D": RoleDefender,
	"C": RoleMidfielder,
	"A": RoleForward,
}

func RoleFromCode(code string) (Role, error) {
	role, ok := roleByCode[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoleCode, code)
	}
	return role, nil
}

// Stats is one player's performance snapshot for a single matchday.
// A Rating of 0 means the player did not take the field.
type Stats struct {
	Rating            float64
	GoalsFor          int
	GoalsAgainst      int
	PenaltiesMissed   int
	PenaltiesSaved    int
	PenaltiesConceded int
	OwnGoals          int
	YellowCards       int
	RedCards          int
	Assists           int
}

// Player is one athlete tracked across the whole season. The code is the
// stable identity used by roster definitions and matchday record files.
type Player struct {
	Code     int
	Name     string
	RealTeam string
	role     Role

	matchdayStats     map[int]Stats
	matchdayFantavoto map[int]float64
}

func New(code int, role Role, name, realTeam string) (*Player, error) {
	if _, ok := AllRoles[role]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoleCode, role)
	}
	return &Player{
		Code:              code,
		Name:              name,
		RealTeam:          realTeam,
		role:              role,
		matchdayStats:     make(map[int]Stats),
		matchdayFantavoto: make(map[int]float64),
	}, nil
}

func (p *Player) Role() Role {
	return p.role
}

// AddMatchdayStats stores the snapshot for a matchday, overwriting any prior
// entry, and refreshes the cached fantavoto so the two maps never diverge.
func (p *Player) AddMatchdayStats(matchday int, stats Stats) {
	p.matchdayStats[matchday] = stats
	p.matchdayFantavoto[matchday] = p.computeFantavoto(stats)
}

func (p *Player) Stats(matchday int) (Stats, bool) {
	stats, ok := p.matchdayStats[matchday]
	return stats, ok
}

// Fantavoto returns the cached fantasy score for a matchday. Matchdays
// without a stats entry score 0.0.
func (p *Player) Fantavoto(matchday int) float64 {
	return p.matchdayFantavoto[matchday]
}

func (p *Player) HasPlayed(matchday int) bool {
	stats, ok := p.matchdayStats[matchday]
	return ok && stats.Rating > 0
}

func (p *Player) Matchdays() int {
	return len(p.matchdayStats)
}

// computeFantavoto applies the standard Fantacalcio formula. A zero rating is
// the did-not-play sentinel and short-circuits to 0.0 even when other fields
// carry leaked values.
func (p *Player) computeFantavoto(stats Stats) float64 {
	if stats.Rating == 0 {
		return 0.0
	}

	score := stats.Rating
	score += float64(stats.GoalsFor) * 3
	score += float64(stats.Assists)
	score -= float64(stats.PenaltiesMissed) * 3
	score += float64(stats.PenaltiesSaved) * 3
	score -= float64(stats.YellowCards) * 0.5
	score -= float64(stats.RedCards)
	score -= float64(stats.OwnGoals) * 2

	if p.role == RoleGoalkeeper {
		score -= float64(stats.GoalsAgainst)
		if stats.GoalsAgainst == 0 {
			score++
		}
	}

	return math.Round(score*10) / 10
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s) - %s", p.Name, p.role, p.RealTeam)
}

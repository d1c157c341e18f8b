package team

import (
	"github.com/riskibarqy/fantacalcio-season/internal/domain/player"
)

// Rules stores the required squad shape. The per-role counts are a league
// configuration concern supplied from the outside, not a universal constant.
type Rules struct {
	RequiredByRole map[player.Role]int
}

// DefaultRules returns the classic Serie A Fantacalcio 25-man shape:
// 3 goalkeepers, 8 defenders, 8 midfielders, 6 forwards.
func DefaultRules() Rules {
	return Rules{
		RequiredByRole: map[player.Role]int{
			player.RoleGoalkeeper: 3,
			player.RoleDefender:   8,
			player.RoleMidfielder: 8,
			player.RoleForward:    6,
		},
	}
}

func (r Rules) SquadSize() int {
	size := 0
	for _, count := range r.RequiredByRole {
		size += count
	}
	return size
}

// ValidateComposition compares the populated roster against the required
// shape. It never mutates the roster and never rejects a team: an invalid
// composition is reported, the team stays usable.
func (t *Team) ValidateComposition(rules Rules) (bool, map[player.Role]int) {
	counts := t.RoleCounts()

	valid := true
	for role, required := range rules.RequiredByRole {
		if counts[role] != required {
			valid = false
		}
	}
	return valid, counts
}

package team

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/player"
)

var ErrNilPlayer = errors.New("nil player in roster")

// Team is a fantasy squad: a name, the roster definition as ordered player
// codes, and the owned Player objects once the roster is populated.
type Team struct {
	Name        string
	PlayerCodes []int
	players     []*player.Player
}

func New(name string, playerCodes []int) *Team {
	codes := append([]int(nil), playerCodes...)
	return &Team{
		Name:        name,
		PlayerCodes: codes,
	}
}

func (t *Team) AddPlayer(p *player.Player) {
	t.players = append(t.players, p)
}

func (t *Team) Players() []*player.Player {
	return t.players
}

// RoleCounts tallies the populated roster by role. Used for composition
// diagnostics.
func (t *Team) RoleCounts() map[player.Role]int {
	counts := make(map[player.Role]int, len(player.AllRoles))
	for _, p := range t.players {
		if p == nil {
			continue
		}
		counts[p.Role()]++
	}
	return counts
}

// TotalScore sums the fantavoto of every rostered player for a matchday.
// Players without a rating contribute 0 through the did-not-play sentinel,
// so there is no lineup or bench distinction. An empty roster scores 0.0.
func (t *Team) TotalScore(matchday int) (float64, error) {
	total := 0.0
	for idx, p := range t.players {
		if p == nil {
			return 0, fmt.Errorf("%w: team=%s index=%d", ErrNilPlayer, t.Name, idx)
		}
		total += p.Fantavoto(matchday)
	}
	return total, nil
}

package team

import (
	"testing"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/player"
)

func buildSquad(t *testing.T, shape map[player.Role]int) *Team {
	t.Helper()

	squad := New("Test Squad", nil)
	code := 1
	for role, count := range shape {
		for i := 0; i < count; i++ {
			p, err := player.New(code, role, "Player", "Club")
			if err != nil {
				t.Fatalf("new player: %v", err)
			}
			squad.AddPlayer(p)
			code++
		}
	}
	return squad
}

func TestValidateComposition(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		shape map[player.Role]int
		valid bool
	}{
		{
			name: "exact shape",
			shape: map[player.Role]int{
				player.RoleGoalkeeper: 3,
				player.RoleDefender:   8,
				player.RoleMidfielder: 8,
				player.RoleForward:    6,
			},
			valid: true,
		},
		{
			name: "missing goalkeeper",
			shape: map[player.Role]int{
				player.RoleGoalkeeper: 2,
				player.RoleDefender:   8,
				player.RoleMidfielder: 8,
				player.RoleForward:    6,
			},
			valid: false,
		},
		{
			name: "extra forward",
			shape: map[player.Role]int{
				player.RoleGoalkeeper: 3,
				player.RoleDefender:   8,
				player.RoleMidfielder: 8,
				player.RoleForward:    7,
			},
			valid: false,
		},
		{
			name:  "empty roster",
			shape: map[player.Role]int{},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			squad := buildSquad(t, tt.shape)
			valid, counts := squad.ValidateComposition(rules)
			if valid != tt.valid {
				t.Fatalf("expected valid=%v, got %v (counts=%v)", tt.valid, valid, counts)
			}
			for role, want := range tt.shape {
				if counts[role] != want {
					t.Fatalf("role %s count = %d, want %d", role, counts[role], want)
				}
			}
		})
	}
}

func TestValidateCompositionCustomRules(t *testing.T) {
	rules := Rules{
		RequiredByRole: map[player.Role]int{
			player.RoleGoalkeeper: 1,
			player.RoleDefender:   2,
		},
	}
	if rules.SquadSize() != 3 {
		t.Fatalf("expected squad size 3, got %d", rules.SquadSize())
	}

	squad := buildSquad(t, map[player.Role]int{
		player.RoleGoalkeeper: 1,
		player.RoleDefender:   2,
	})
	if valid, _ := squad.ValidateComposition(rules); !valid {
		t.Fatalf("expected valid composition under custom rules")
	}
}

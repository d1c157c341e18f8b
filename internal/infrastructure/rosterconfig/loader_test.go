package rosterconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExplicitCodes(t *testing.T) {
	path := writeConfig(t, `[
		{"name": "Dream Team", "players": [101, 102, 103]},
		{"name": "Underdogs", "players": [201]}
	]`)

	teams, err := Load(path)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, "Dream Team", teams[0].Name)
	require.True(t, teams[0].HasExplicitCodes())
	require.Equal(t, []int{101, 102, 103}, teams[0].PlayerCodes)
}

func TestLoadRoleNameLists(t *testing.T) {
	path := writeConfig(t, `[
		{
			"name": "Named Team",
			"goalkeepers": ["Maignan (Milan)"],
			"defenders": ["Bastoni (Inter)"],
			"midfielders": ["Barella (Inter)"],
			"forwards": ["Lautaro (Inter)"]
		}
	]`)

	teams, err := Load(path)
	require.NoError(t, err)
	require.False(t, teams[0].HasExplicitCodes())
	require.Equal(t,
		[]string{"Maignan (Milan)", "Bastoni (Inter)", "Barella (Inter)", "Lautaro (Inter)"},
		teams[0].PlayerNames(),
	)
}

func TestLoadRejectsMissingName(t *testing.T) {
	path := writeConfig(t, `[{"players": [1]}]`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsEmptyList(t *testing.T) {
	path := writeConfig(t, `[]`)
	_, err := Load(path)
	require.True(t, errors.Is(err, ErrNoTeams))
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := Load(path)
	require.Error(t, err)
}

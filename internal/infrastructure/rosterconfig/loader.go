package rosterconfig

import (
	"os"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	ErrNoTeams = crerr.New("roster configuration contains no teams")
)

// TeamConfig is one fantasy team definition. A team lists either explicit
// player codes or per-role display names; names are resolved to codes later
// against a reference matchday.
type TeamConfig struct {
	Name        string   `json:"name" validate:"required"`
	PlayerCodes []int    `json:"players,omitempty"`
	Goalkeepers []string `json:"goalkeepers,omitempty"`
	Defenders   []string `json:"defenders,omitempty"`
	Midfielders []string `json:"midfielders,omitempty"`
	Forwards    []string `json:"forwards,omitempty"`
}

// PlayerNames flattens the per-role name lists in role order.
func (c TeamConfig) PlayerNames() []string {
	out := make([]string, 0, len(c.Goalkeepers)+len(c.Defenders)+len(c.Midfielders)+len(c.Forwards))
	out = append(out, c.Goalkeepers...)
	out = append(out, c.Defenders...)
	out = append(out, c.Midfielders...)
	out = append(out, c.Forwards...)
	return out
}

func (c TeamConfig) HasExplicitCodes() bool {
	return len(c.PlayerCodes) > 0
}

// Load parses and validates the roster configuration JSON file.
func Load(path string) ([]TeamConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read roster configuration %s", path)
	}

	var teams []TeamConfig
	if err := sonic.Unmarshal(raw, &teams); err != nil {
		return nil, crerr.Wrapf(err, "parse roster configuration %s", path)
	}
	if len(teams) == 0 {
		return nil, crerr.Wrapf(ErrNoTeams, "file=%s", path)
	}

	validate := validator.New()
	for _, item := range teams {
		if err := validate.Struct(item); err != nil {
			return nil, crerr.Wrapf(err, "validate team configuration in %s", path)
		}
	}
	return teams, nil
}

package record

import (
	"github.com/riskibarqy/fantacalcio-season/internal/domain/player"
)

// MatchdayRecord is one player row as handed over by the matchday extraction
// layer. The role stays the raw single-letter source code (P/D/C/A) until the
// roster layer maps it to a canonical role.
type MatchdayRecord struct {
	Team   string  `json:"team" validate:"required"`
	Code   int     `json:"cod" validate:"required,gt=0"`
	Role   string  `json:"role" validate:"required,oneof=P D C A"`
	Name   string  `json:"name" validate:"required"`
	Rating float64 `json:"rating" validate:"gte=0"`

	GoalsFor          int `json:"gf" validate:"gte=0"`
	GoalsAgainst      int `json:"gs" validate:"gte=0"`
	PenaltiesMissed   int `json:"rp" validate:"gte=0"`
	PenaltiesSaved    int `json:"rs" validate:"gte=0"`
	PenaltiesConceded int `json:"rf" validate:"gte=0"`
	OwnGoals          int `json:"au" validate:"gte=0"`
	YellowCards       int `json:"amm" validate:"gte=0"`
	RedCards          int `json:"esp" validate:"gte=0"`
	Assists           int `json:"ass" validate:"gte=0"`
}

// Key is the identity tuple standardization reconciles on.
type Key struct {
	Team string
	Code int
	Role string
	Name string
}

func (r MatchdayRecord) Key() Key {
	return Key{
		Team: r.Team,
		Code: r.Code,
		Role: r.Role,
		Name: r.Name,
	}
}

// Stats converts the record's numeric fields into a matchday snapshot.
func (r MatchdayRecord) Stats() player.Stats {
	return player.Stats{
		Rating:            r.Rating,
		GoalsFor:          r.GoalsFor,
		GoalsAgainst:      r.GoalsAgainst,
		PenaltiesMissed:   r.PenaltiesMissed,
		PenaltiesSaved:    r.PenaltiesSaved,
		PenaltiesConceded: r.PenaltiesConceded,
		OwnGoals:          r.OwnGoals,
		YellowCards:       r.YellowCards,
		RedCards:          r.RedCards,
		Assists:           r.Assists,
	}
}

// Zeroed returns a synthesized record for a player absent from a matchday:
// identity copied, every numeric field zero, rating included.
func (k Key) Zeroed() MatchdayRecord {
	return MatchdayRecord{
		Team: k.Team,
		Code: k.Code,
		Role: k.Role,
		Name: k.Name,
	}
}

package usecase

import (
	"context"
	"sort"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/record"
	"github.com/riskibarqy/fantacalcio-season/internal/platform/logging"
)

// StandardizerService reconciles the player universe across matchday record
// sets: after Standardize every matchday covers the exact same keys, absent
// players filled in with zero-valued records.
type StandardizerService struct {
	logger *logging.Logger
}

func NewStandardizerService(logger *logging.Logger) *StandardizerService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StandardizerService{logger: logger}
}

// Standardize runs the two-pass reconciliation: collect the union of keys
// seen in any matchday, then pad every matchday with zero records for the
// keys it misses. Each set is sorted by (team, role, name), stable, so the
// output is reproducible for downstream diffs.
func (s *StandardizerService) Standardize(ctx context.Context, sets map[int][]record.MatchdayRecord) map[int][]record.MatchdayRecord {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandardizerService.Standardize")
	defer span.End()

	if len(sets) == 0 {
		return map[int][]record.MatchdayRecord{}
	}

	universe := make([]record.Key, 0)
	seen := make(map[record.Key]struct{})

	matchdays := make([]int, 0, len(sets))
	for matchday := range sets {
		matchdays = append(matchdays, matchday)
	}
	sort.Ints(matchdays)

	for _, matchday := range matchdays {
		for _, row := range sets[matchday] {
			key := row.Key()
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			universe = append(universe, key)
		}
	}

	s.logger.InfoContext(ctx, "player universe collected",
		"matchdays", len(sets),
		"players", len(universe),
	)

	out := make(map[int][]record.MatchdayRecord, len(sets))
	for _, matchday := range matchdays {
		rows := sets[matchday]

		existing := make(map[record.Key]struct{}, len(rows))
		for _, row := range rows {
			existing[row.Key()] = struct{}{}
		}

		merged := append([]record.MatchdayRecord(nil), rows...)
		missing := 0
		for _, key := range universe {
			if _, ok := existing[key]; ok {
				continue
			}
			merged = append(merged, key.Zeroed())
			missing++
		}
		if missing > 0 {
			s.logger.Debug("synthesized absent players",
				"matchday", matchday,
				"added", missing,
			)
		}

		sort.SliceStable(merged, func(i, j int) bool {
			if merged[i].Team != merged[j].Team {
				return merged[i].Team < merged[j].Team
			}
			if merged[i].Role != merged[j].Role {
				return merged[i].Role < merged[j].Role
			}
			return merged[i].Name < merged[j].Name
		})

		out[matchday] = merged
	}

	return out
}

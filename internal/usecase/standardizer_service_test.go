package usecase

import (
	"context"

	"testing"

	"github.com/riskibarqy/fantacalcio-season/internal/domain/record"
)

func recordFor(team string, code int, role, name string, rating float64) record.MatchdayRecord {
	return record.MatchdayRecord{
		Team:   team,
		Code:   code,
		Role:   role,
		Name:   name,
		Rating: rating,
	}
}

func TestStandardizeFillsUniverse(t *testing.T) {
	service := NewStandardizerService(nil)

	sets := map[int][]record.MatchdayRecord{
		1: {
			recordFor("Milan", 101, "A", "Rossi", 6.5),
			recordFor("Inter", 102, "C", "Bianchi", 7.0),
		},
		2: {
			recordFor("Milan", 101, "A", "Rossi", 6.0),
			recordFor("Roma", 103, "D", "Verdi", 6.5),
		},
	}

	out := service.Standardize(context.Background(), sets)

	for matchday, rows := range out {
		if len(rows) != 3 {
			t.Fatalf("matchday %d: expected 3 records, got %d", matchday, len(rows))
		}
	}

	keys1 := make(map[record.Key]struct{})
	for _, row := range out[1] {
		keys1[row.Key()] = struct{}{}
	}
	for _, row := range out[2] {
		if _, ok := keys1[row.Key()]; !ok {
			t.Fatalf("matchday 2 key %+v missing from matchday 1", row.Key())
		}
	}
}

func TestStandardizeSynthesizedRecordsAreZero(t *testing.T) {
	service := NewStandardizerService(nil)

	sets := map[int][]record.MatchdayRecord{
		1: {func() record.MatchdayRecord {
			r := recordFor("Milan", 101, "A", "Rossi", 6.5)
			r.GoalsFor = 2
			r.Assists = 1
			return r
		}()},
		2: {recordFor("Roma", 103, "D", "Verdi", 6.5)},
	}

	out := service.Standardize(context.Background(), sets)

	var synthesized *record.MatchdayRecord
	for i := range out[2] {
		if out[2][i].Code == 101 {
			synthesized = &out[2][i]
			break
		}
	}
	if synthesized == nil {
		t.Fatalf("expected Rossi synthesized into matchday 2")
	}

	if synthesized.Rating != 0 || synthesized.GoalsFor != 0 || synthesized.Assists != 0 {
		t.Fatalf("synthesized record must be all-zero, got %+v", *synthesized)
	}
	if synthesized.Team != "Milan" || synthesized.Role != "A" || synthesized.Name != "Rossi" {
		t.Fatalf("synthesized record lost identity fields: %+v", *synthesized)
	}
}

func TestStandardizeDeterministicOrder(t *testing.T) {
	service := NewStandardizerService(nil)

	sets := map[int][]record.MatchdayRecord{
		1: {
			recordFor("Roma", 1, "D", "Verdi", 6.0),
			recordFor("Inter", 2, "A", "Bianchi", 6.0),
			recordFor("Inter", 3, "A", "Alfa", 6.0),
			recordFor("Inter", 4, "C", "Zeta", 6.0),
		},
	}

	out := service.Standardize(context.Background(), sets)
	rows := out[1]

	wantNames := []string{"Alfa", "Bianchi", "Zeta", "Verdi"}
	for i, want := range wantNames {
		if rows[i].Name != want {
			t.Fatalf("row %d = %s, want %s (got order: %v)", i, rows[i].Name, want, names(rows))
		}
	}
}

func names(rows []record.MatchdayRecord) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Name)
	}
	return out
}

func TestStandardizeEmptyInput(t *testing.T) {
	service := NewStandardizerService(nil)
	out := service.Standardize(context.Background(), nil)
	if len(out) != 0 {
		t.Fatalf("expected empty output for empty input, got %d sets", len(out))
	}
}

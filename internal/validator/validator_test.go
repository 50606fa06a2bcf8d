package validator

import (
	"context"
	"testing"

	"svw.info/nqueens/internal/domain"
)

func TestValidateAcceptsKnownSolution(t *testing.T) {
	sol := domain.Placement{1, 3, 0, 2}
	ok, conf, err := New().Validate(context.Background(), 4, sol.Cells())
	if err != nil || !ok {
		t.Fatalf("valid placement rejected: err=%v conflicts=%v", err, conf)
	}
}

func TestValidateFlagsConflicts(t *testing.T) {
	cases := []struct {
		name   string
		queens []domain.CellCoord
		bad    domain.CellCoord
	}{
		{"column", []domain.CellCoord{{Row: 0, Col: 1}, {Row: 2, Col: 1}}, domain.CellCoord{Row: 2, Col: 1}},
		{"row", []domain.CellCoord{{Row: 1, Col: 0}, {Row: 1, Col: 3}}, domain.CellCoord{Row: 1, Col: 3}},
		{"diagonal", []domain.CellCoord{{Row: 0, Col: 0}, {Row: 3, Col: 3}}, domain.CellCoord{Row: 3, Col: 3}},
		{"anti-diagonal", []domain.CellCoord{{Row: 0, Col: 3}, {Row: 3, Col: 0}}, domain.CellCoord{Row: 3, Col: 0}},
		{"out of range", []domain.CellCoord{{Row: 0, Col: 9}}, domain.CellCoord{Row: 0, Col: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conf, err := New().Validate(context.Background(), 4, tc.queens)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok || len(conf) == 0 {
				t.Fatalf("conflict not detected: ok=%v conflicts=%v", ok, conf)
			}
			if conf[0] != tc.bad {
				t.Errorf("got conflict at %v, want %v", conf[0], tc.bad)
			}
		})
	}
}

func TestValidateBadSize(t *testing.T) {
	if _, _, err := New().Validate(context.Background(), 0, nil); err == nil {
		t.Fatal("expected an error for size 0")
	}
}

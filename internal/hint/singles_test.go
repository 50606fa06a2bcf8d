package hint

import (
	"context"
	"testing"

	"svw.info/nqueens/internal/domain"
)

func TestHintFindsForcedColumn(t *testing.T) {
	// Row 3 has a single surviving column (1) once these three are placed.
	p := &domain.Problem{
		Size:   4,
		Queens: []domain.CellCoord{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 3}},
	}
	h, ok, err := NewSingles().Hint(context.Background(), p)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a hint")
	}
	if h.Cell != (domain.CellCoord{Row: 3, Col: 1}) {
		t.Errorf("got cell %v, want (3,1)", h.Cell)
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	_, ok, err := NewSingles().Hint(context.Background(), &domain.Problem{Size: 8})
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if ok {
		t.Error("an empty board has no forced rows")
	}
}

func TestHintRejectsBadSize(t *testing.T) {
	_, _, err := NewSingles().Hint(context.Background(), &domain.Problem{Size: 0})
	if err == nil {
		t.Fatal("expected an error for size 0")
	}
}

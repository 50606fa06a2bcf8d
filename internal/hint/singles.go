package hint

import (
	"context"
	"fmt"

	"svw.info/nqueens/internal/domain"
)

// Singles implements a minimal Hinter that looks for a forced row: a row
// without a queen where the pre-placed queens leave exactly one column.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first forced placement found, scanning rows top down.
func (h *Singles) Hint(ctx context.Context, p *domain.Problem) (domain.Hint, bool, error) {
	if err := domain.CheckSize(p.Size); err != nil {
		return domain.Hint{}, false, err
	}
	occupied := make([]bool, p.Size)
	for _, q := range p.Queens {
		if q.Row >= 0 && q.Row < p.Size {
			occupied[q.Row] = true
		}
	}
	for row := 0; row < p.Size; row++ {
		if occupied[row] {
			continue
		}
		col, ok := soleColumn(p, row)
		if ok {
			msg := fmt.Sprintf("Forced: only column %d is left for row %d", col, row)
			return domain.Hint{
				Message: msg,
				Cell:    domain.CellCoord{Row: row, Col: col},
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

func soleColumn(p *domain.Problem, row int) (int, bool) {
	last := -1
	count := 0
	for c := 0; c < p.Size; c++ {
		if allowed(p, row, c) {
			count++
			last = c
			if count > 1 {
				return -1, false
			}
		}
	}
	return last, count == 1
}

func allowed(p *domain.Problem, row, col int) bool {
	for _, q := range p.Queens {
		d := q.Row - row
		if d < 0 {
			d = -d
		}
		if q.Col == col || q.Col == col-d || q.Col == col+d {
			return false
		}
	}
	return true
}

package validator

import (
	"context"

	"svw.info/nqueens/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate checks a set of queens for out-of-range cells and for pairs
// sharing a row, column or diagonal. A queen is reported at the later of
// the two positions involved in a conflict.
func (v *FastValidator) Validate(ctx context.Context, n int, queens []domain.CellCoord) (bool, []domain.CellCoord, error) {
	if err := domain.CheckSize(n); err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)
	rows := make([]bool, n)
	cols := make([]bool, n)
	downs := make([]bool, 2*n-1) // row+col
	ups := make([]bool, 2*n-1)   // row-col, shifted by n-1
	for _, q := range queens {
		if q.Row < 0 || q.Row >= n || q.Col < 0 || q.Col >= n {
			conf = append(conf, q)
			continue
		}
		d, u := q.Row+q.Col, q.Row-q.Col+n-1
		if rows[q.Row] || cols[q.Col] || downs[d] || ups[u] {
			conf = append(conf, q)
		}
		rows[q.Row] = true
		cols[q.Col] = true
		downs[d] = true
		ups[u] = true
	}
	return len(conf) == 0, conf, nil
}

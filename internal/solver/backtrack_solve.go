package solver

import (
	"context"
	"time"

	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/ports"
)

// Solve enumerates placements row by row. At each row the candidate columns
// are the complement (within the board's width) of the occupied columns,
// the two diagonal masks and the cells blocked by pre-placed queens; the
// diagonal masks are re-aligned to the next row with a single shift. LSB
// first iteration makes FindAll output lexicographic in the column sequence.
func (s *BitmaskSolver) Solve(ctx context.Context, p *domain.Problem, mode domain.Mode) ([]domain.Placement, ports.Stats, error) {
	start := time.Now()
	st, err := newSearch(p)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	full := allOnes(st.n)
	cur := make([]int, st.n)
	nodes := 0
	var solutions []domain.Placement

	var dfs func(row int, cols, downs, ups mask) bool
	dfs = func(row int, cols, downs, ups mask) bool {
		if ctx.Err() != nil {
			return true
		}
		if row == st.n {
			sol := make(domain.Placement, st.n)
			copy(sol, cur)
			solutions = append(solutions, sol)
			return mode == domain.FindOne
		}
		if c := st.fixed[row]; c >= 0 {
			bit := oneBit(c)
			cur[row] = c
			return dfs(row+1, cols.or(bit), downs.or(bit).shl1(), ups.or(bit).shr1())
		}
		avail := full.andNot(cols.or(downs).or(ups).or(st.blocked[row]))
		for !avail.isZero() {
			bit := avail.lowBit()
			nodes++
			cur[row] = bit.index()
			if dfs(row+1, cols.or(bit), downs.or(bit).shl1(), ups.or(bit).shr1()) {
				return true
			}
			avail = avail.andNot(bit)
		}
		return false
	}
	dfs(0, mask{}, mask{}, mask{})

	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	return solutions, stats, nil
}

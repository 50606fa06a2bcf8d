package solver

import (
	"context"
	"time"

	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/ports"
)

// BasicSolver is a straightforward recursive solver that re-checks earlier
// rows for every candidate. Slower than the bitmask engine but independent
// of it, which makes it a useful cross-check.
type BasicSolver struct{}

func NewBasicSolver() *BasicSolver { return &BasicSolver{} }

func (s *BasicSolver) Solve(ctx context.Context, p *domain.Problem, mode domain.Mode) ([]domain.Placement, ports.Stats, error) {
	start := time.Now()
	st, err := newSearch(p)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	n := st.n
	cur := make([]int, n)
	nodes := 0
	var solutions []domain.Placement

	safe := func(row, col int) bool {
		for r := 0; r < row; r++ {
			d := row - r
			if cur[r] == col || cur[r] == col-d || cur[r] == col+d {
				return false
			}
		}
		// fixed queens on rows the search has not reached yet
		for r := row + 1; r < n; r++ {
			c := st.fixed[r]
			if c < 0 {
				continue
			}
			d := r - row
			if c == col || c == col-d || c == col+d {
				return false
			}
		}
		return true
	}

	var dfs func(row int) bool
	dfs = func(row int) bool {
		if ctx.Err() != nil {
			return true
		}
		if row == n {
			sol := make(domain.Placement, n)
			copy(sol, cur)
			solutions = append(solutions, sol)
			return mode == domain.FindOne
		}
		if c := st.fixed[row]; c >= 0 {
			cur[row] = c
			return dfs(row + 1)
		}
		for col := 0; col < n; col++ {
			nodes++
			if safe(row, col) {
				cur[row] = col
				if dfs(row + 1) {
					return true
				}
			}
		}
		return false
	}
	dfs(0)

	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}
	return solutions, stats, nil
}

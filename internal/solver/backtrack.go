package solver

import (
	"errors"
	"fmt"

	"svw.info/nqueens/internal/domain"
)

// BitmaskSolver is the bitmask backtracking engine. Column and diagonal
// occupancy travel through the recursion as per-call mask values, so
// backtracking needs no undo step.
type BitmaskSolver struct{}

func NewBitmaskSolver() *BitmaskSolver { return &BitmaskSolver{} }

// ErrAttackingQueens reports a problem whose pre-placed queens already
// attack each other.
var ErrAttackingQueens = errors.New("pre-placed queens attack each other")

// --- search state shared by the engines (built once per solve) ---

// search holds the immutable per-problem setup: which rows carry a fixed
// queen and, for every row, the cells ruled out by those queens.
type search struct {
	n       int
	fixed   []int  // column per row, -1 where the search chooses
	blocked []mask // cells attacked by fixed queens, per row
}

func newSearch(p *domain.Problem) (*search, error) {
	if err := domain.CheckSize(p.Size); err != nil {
		return nil, err
	}
	n := p.Size
	s := &search{
		n:       n,
		fixed:   make([]int, n),
		blocked: make([]mask, n),
	}
	for r := range s.fixed {
		s.fixed[r] = -1
	}
	for _, q := range p.Queens {
		if q.Row < 0 || q.Row >= n || q.Col < 0 || q.Col >= n {
			return nil, fmt.Errorf("queen at (%d,%d) outside %dx%d board", q.Row, q.Col, n, n)
		}
		if s.fixed[q.Row] >= 0 && s.fixed[q.Row] != q.Col {
			return nil, fmt.Errorf("%w: rows %d", ErrAttackingQueens, q.Row)
		}
		s.fixed[q.Row] = q.Col
	}
	for i, a := range p.Queens {
		for _, b := range p.Queens[:i] {
			if a == b {
				continue
			}
			dr, dc := a.Row-b.Row, a.Col-b.Col
			if dc < 0 {
				dc = -dc
			}
			if dr < 0 {
				dr = -dr
			}
			if dc == 0 || dc == dr {
				return nil, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrAttackingQueens, a.Row, a.Col, b.Row, b.Col)
			}
		}
	}
	// Rule the fixed queens' columns and diagonals out of every other row.
	for _, q := range p.Queens {
		for r := 0; r < n; r++ {
			if r == q.Row {
				continue
			}
			d := r - q.Row
			if d < 0 {
				d = -d
			}
			s.block(r, q.Col)
			s.block(r, q.Col-d)
			s.block(r, q.Col+d)
		}
	}
	return s, nil
}

func (s *search) block(row, col int) {
	if col < 0 || col >= s.n {
		return
	}
	s.blocked[row] = s.blocked[row].or(oneBit(col))
}

package solver

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/ports"
)

// ParallelSolver fans the first-row column choices out across a worker
// pool. Subtrees rooted at different first-row columns share no mutable
// state, so each branch runs an independent sequential search; FindAll
// merges the branch results in first-row column order, which keeps the
// enumeration identical to the sequential engine's.
type ParallelSolver struct {
	workers int
}

func NewParallelSolver(workers int) *ParallelSolver {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelSolver{workers: workers}
}

// errFoundOne aborts sibling branches once any of them has a solution.
var errFoundOne = errors.New("solution found")

func (s *ParallelSolver) Solve(ctx context.Context, p *domain.Problem, mode domain.Mode) ([]domain.Placement, ports.Stats, error) {
	start := time.Now()
	st, err := newSearch(p)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	// Branch on the first row's candidate columns.
	var branches []int
	if c := st.fixed[0]; c >= 0 {
		branches = []int{c}
	} else {
		avail := allOnes(st.n).andNot(st.blocked[0])
		for !avail.isZero() {
			bit := avail.lowBit()
			branches = append(branches, bit.index())
			avail = avail.andNot(bit)
		}
	}

	results := make([][]domain.Placement, len(branches))
	nodes := make([]int, len(branches))
	inner := NewBitmaskSolver()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, col := range branches {
		i, col := i, col
		g.Go(func() error {
			sub := &domain.Problem{Size: p.Size, Queens: p.Queens}
			if st.fixed[0] < 0 {
				qs := make([]domain.CellCoord, 0, len(p.Queens)+1)
				qs = append(qs, p.Queens...)
				qs = append(qs, domain.CellCoord{Row: 0, Col: col})
				sub.Queens = qs
			}
			sols, bst, err := inner.Solve(gctx, sub, mode)
			if err != nil {
				return err
			}
			results[i] = sols
			nodes[i] = bst.Nodes
			if mode == domain.FindOne && len(sols) > 0 {
				return errFoundOne
			}
			return nil
		})
	}
	err = g.Wait()
	if err != nil && !errors.Is(err, errFoundOne) {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	total := 0
	var out []domain.Placement
	for i := range results {
		total += nodes[i]
		if mode == domain.FindOne {
			if out == nil && len(results[i]) > 0 {
				out = results[i][:1]
			}
			continue
		}
		out = append(out, results[i]...)
	}
	return out, ports.Stats{Nodes: total, Duration: time.Since(start)}, nil
}

package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/ports"
)

// Generate builds a puzzle from seed: it finds a random complete placement,
// keeps `clues` of its queens as givens and drops the rest. The result is
// solvable by construction; the wired solver confirms it and its node count
// is reported in the stats.
func (g *SolvableGenerator) Generate(ctx context.Context, seed int64, size, clues int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := domain.CheckSize(size); err != nil {
		return nil, ports.Stats{}, err
	}
	if clues < 0 {
		clues = 0
	}
	if clues > size {
		clues = size
	}
	rng := rand.New(rand.NewSource(seed))

	// 1) full random placement
	full := make(domain.Placement, size)
	if !fillRandom(ctx, rng, full) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Duration: time.Since(start)},
			errors.New("no complete placement exists for this size")
	}

	// 2) keep a random subset of its rows as givens
	rows := rng.Perm(size)[:clues]
	queens := make([]domain.CellCoord, 0, clues)
	for _, r := range rows {
		queens = append(queens, domain.CellCoord{Row: r, Col: full[r]})
	}
	p := domain.Problem{Size: size, Queens: queens}

	nodes := 0
	if g.Solver != nil {
		sols, st, err := g.Solver.Solve(ctx, &p, domain.FindOne)
		nodes = st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if len(sols) == 0 {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)},
				errors.New("generated puzzle is unsolvable")
		}
	}

	puz := &domain.Puzzle{Seed: seed, Clues: len(queens), Problem: p}
	return puz, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom backtracks row by row, trying the safe columns of each row in
// random order until the whole board is filled.
func fillRandom(ctx context.Context, rng *rand.Rand, cur domain.Placement) bool {
	n := len(cur)
	var dfs func(row int) bool
	dfs = func(row int) bool {
		if ctx.Err() != nil {
			return false
		}
		if row == n {
			return true
		}
		cols := candidates(cur, row)
		rng.Shuffle(len(cols), func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })
		for _, c := range cols {
			cur[row] = c
			if dfs(row + 1) {
				return true
			}
		}
		return false
	}
	return dfs(0)
}

// candidates mirrors the column/diagonal checks locally for the generator.
func candidates(cur domain.Placement, row int) []int {
	n := len(cur)
	cols := make([]int, 0, n)
next:
	for c := 0; c < n; c++ {
		for r := 0; r < row; r++ {
			d := row - r
			if cur[r] == c || cur[r] == c-d || cur[r] == c+d {
				continue next
			}
		}
		cols = append(cols, c)
	}
	return cols
}

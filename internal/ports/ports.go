package ports

import (
	"context"
	"time"

	"svw.info/nqueens/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver enumerates queen placements for a problem. FindOne yields at most
// one placement; FindAll yields the complete set in lexicographic order of
// the column sequence.
type Solver interface {
	Solve(ctx context.Context, p *domain.Problem, mode domain.Mode) ([]domain.Placement, Stats, error)
}

// Generator creates solvable problems with a target number of fixed queens.
type Generator interface {
	Generate(ctx context.Context, seed int64, size, clues int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast conflict checks (column and both diagonals).
type Validator interface {
	Validate(ctx context.Context, n int, queens []domain.CellCoord) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns a forced placement for a partially filled board, if any.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Problem) (domain.Hint, bool, error)
}

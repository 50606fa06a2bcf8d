package generator

import "svw.info/nqueens/internal/ports"

// SolvableGenerator creates puzzles that are guaranteed to extend to a
// complete placement, using a provided Solver as the final check.
type SolvableGenerator struct {
	Solver ports.Solver
}

// NewSolvableGenerator wires a generator that confirms solvability with the
// given solver.
func NewSolvableGenerator(s ports.Solver) *SolvableGenerator {
	return &SolvableGenerator{Solver: s}
}

// The Generate method is implemented in simple.go.

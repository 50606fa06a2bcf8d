package domain

import "fmt"

// MaxSize is the largest supported board side. The solver's masks are two
// 64-bit words wide, so anything up to 128 columns fits.
const MaxSize = 128

// CellCoord identifies a square on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement is a complete, conflict-free assignment: entry r holds the
// column of the queen on row r.
type Placement []int

// Cells expands a placement into explicit board coordinates.
func (p Placement) Cells() []CellCoord {
	cells := make([]CellCoord, len(p))
	for r, c := range p {
		cells[r] = CellCoord{Row: r, Col: c}
	}
	return cells
}

// Problem describes a board to solve: its size and any queens already
// fixed on it. An empty Queens slice is the classic N-Queens instance.
type Problem struct {
	Size   int         `json:"size"`
	Queens []CellCoord `json:"queens,omitempty"`
}

// InvalidSizeError reports a board size outside [1, MaxSize].
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("board size %d out of range [1,%d]", e.Size, MaxSize)
}

// CheckSize validates a board size. Size 0 is rejected rather than treated
// as a trivially solved empty board.
func CheckSize(n int) error {
	if n < 1 || n > MaxSize {
		return &InvalidSizeError{Size: n}
	}
	return nil
}

// Puzzle is a generated problem with its seed and clue count, as handed
// out by the generator.
type Puzzle struct {
	Seed    int64   `json:"seed,omitempty"`
	Clues   int     `json:"clues"`
	Problem Problem `json:"problem"`
}

// Hint describes a forced placement: a row where only one column remains.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
}

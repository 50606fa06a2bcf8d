package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/validator"
)

func solveAll(t *testing.T, n int) []domain.Placement {
	t.Helper()
	sols, _, err := NewBitmaskSolver().Solve(context.Background(), &domain.Problem{Size: n}, domain.FindAll)
	if err != nil {
		t.Fatalf("Solve(n=%d) failed: %v", n, err)
	}
	return sols
}

func TestSolutionCounts(t *testing.T) {
	// A000170: number of n-queens solutions.
	want := []int{1, 0, 0, 2, 10, 4, 40, 92, 352, 724}
	for i, w := range want {
		n := i + 1
		if got := len(solveAll(t, n)); got != w {
			t.Errorf("n=%d: got %d solutions, want %d", n, got, w)
		}
	}
}

func TestFindAllFourQueens(t *testing.T) {
	want := []domain.Placement{{1, 3, 0, 2}, {2, 0, 3, 1}}
	if diff := cmp.Diff(want, solveAll(t, 4)); diff != "" {
		t.Errorf("n=4 solutions mismatch (-want +got):\n%s", diff)
	}
}

func TestOneQueen(t *testing.T) {
	want := []domain.Placement{{0}}
	if diff := cmp.Diff(want, solveAll(t, 1)); diff != "" {
		t.Errorf("n=1 solutions mismatch (-want +got):\n%s", diff)
	}
}

func TestNoSolutionIsNotAnError(t *testing.T) {
	for _, n := range []int{2, 3} {
		for _, mode := range []domain.Mode{domain.FindOne, domain.FindAll} {
			sols, _, err := NewBitmaskSolver().Solve(context.Background(), &domain.Problem{Size: n}, mode)
			if err != nil {
				t.Fatalf("n=%d mode=%s: unexpected error %v", n, mode, err)
			}
			if len(sols) != 0 {
				t.Errorf("n=%d mode=%s: got %d solutions, want none", n, mode, len(sols))
			}
		}
	}
}

func TestFindOneEightQueensIsValid(t *testing.T) {
	ctx := context.Background()
	sols, st, err := NewBitmaskSolver().Solve(ctx, &domain.Problem{Size: 8}, domain.FindOne)
	if err != nil || len(sols) != 1 {
		t.Fatalf("FindOne(n=8): sols=%v err=%v", sols, err)
	}
	ok, conf, err := validator.New().Validate(ctx, 8, sols[0].Cells())
	if err != nil || !ok {
		t.Fatalf("invalid solution %v: err=%v conflicts=%v", sols[0], err, conf)
	}
	if st.Nodes == 0 {
		t.Error("expected a non-zero node count")
	}
}

func TestDeterministicEnumeration(t *testing.T) {
	first := solveAll(t, 6)
	second := solveAll(t, 6)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated FindAll differs (-first +second):\n%s", diff)
	}
}

func TestInvalidSizes(t *testing.T) {
	for _, n := range []int{0, -1, domain.MaxSize + 1} {
		_, _, err := NewBitmaskSolver().Solve(context.Background(), &domain.Problem{Size: n}, domain.FindAll)
		var sizeErr *domain.InvalidSizeError
		if !errors.As(err, &sizeErr) {
			t.Errorf("n=%d: got %v, want InvalidSizeError", n, err)
		}
	}
}

func TestSolveAroundFixedQueens(t *testing.T) {
	cases := []struct {
		name   string
		size   int
		queens []domain.CellCoord
		want   []domain.Placement
	}{
		{
			name:   "three givens force the rest",
			size:   4,
			queens: []domain.CellCoord{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 3}},
			want:   []domain.Placement{{2, 0, 3, 1}},
		},
		{
			name:   "corner queen",
			size:   5,
			queens: []domain.CellCoord{{Row: 0, Col: 0}},
			want:   []domain.Placement{{0, 2, 4, 1, 3}, {0, 3, 1, 4, 2}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &domain.Problem{Size: tc.size, Queens: tc.queens}
			sols, _, err := NewBitmaskSolver().Solve(context.Background(), p, domain.FindAll)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, sols); diff != "" {
				t.Errorf("solutions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttackingGivensRejected(t *testing.T) {
	p := &domain.Problem{
		Size:   6,
		Queens: []domain.CellCoord{{Row: 0, Col: 0}, {Row: 3, Col: 3}},
	}
	_, _, err := NewBitmaskSolver().Solve(context.Background(), p, domain.FindAll)
	if !errors.Is(err, ErrAttackingQueens) {
		t.Fatalf("got %v, want ErrAttackingQueens", err)
	}
}

func TestBasicSolverMatchesBitmask(t *testing.T) {
	ctx := context.Background()
	for _, n := range []int{4, 5, 6, 7} {
		p := &domain.Problem{Size: n}
		want, _, err := NewBitmaskSolver().Solve(ctx, p, domain.FindAll)
		if err != nil {
			t.Fatalf("bitmask n=%d: %v", n, err)
		}
		got, _, err := NewBasicSolver().Solve(ctx, p, domain.FindAll)
		if err != nil {
			t.Fatalf("basic n=%d: %v", n, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("n=%d: engines disagree (-bitmask +basic):\n%s", n, diff)
		}
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBitmaskSolver().Solve(ctx, &domain.Problem{Size: 8}, domain.FindAll)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

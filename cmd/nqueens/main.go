// The nqueens command solves N-Queens instances from the command line and
// prints each solution as rows of 'Q'/'0' characters.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/golang/glog"

	"svw.info/nqueens/internal/board"
	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/ports"
	"svw.info/nqueens/internal/solver"
)

var (
	size       = flag.Int("n", 8, "board size")
	modeStr    = flag.String("mode", "first", "first|all")
	boardPath  = flag.String("board", "", "file with a 'Q'/'0' board of pre-placed queens ('-' for stdin)")
	solverKind = flag.String("solver", "bitmask", "bitmask|basic|parallel")
	workers    = flag.Int("workers", 0, "worker count for the parallel solver (0 = NumCPU)")
	timeout    = flag.Duration("timeout", 0, "abort the search after this long (0 = no limit)")
)

func pickSolver(kind string, workers int) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "basic":
		return solver.NewBasicSolver()
	case "parallel":
		return solver.NewParallelSolver(workers)
	default:
		return solver.NewBitmaskSolver()
	}
}

func readProblem() (*domain.Problem, error) {
	if *boardPath == "" {
		return &domain.Problem{Size: *size}, nil
	}
	if *boardPath == "-" {
		return board.Parse(*size, os.Stdin)
	}
	f, err := os.Open(*boardPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return board.Parse(*size, f)
}

func main() {
	flag.Parse()
	defer log.Flush()

	mode := domain.FindOne
	if strings.EqualFold(strings.TrimSpace(*modeStr), "all") {
		mode = domain.FindAll
	}

	p, err := readProblem()
	if err != nil {
		log.Exitf("reading board failed: %v", err)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	s := pickSolver(*solverKind, *workers)
	sols, st, err := s.Solve(ctx, p, mode)
	if err != nil {
		log.Exitf("solve failed: %v", err)
	}
	log.Infof("n=%d mode=%s solutions=%d nodes=%d dur=%v", p.Size, mode, len(sols), st.Nodes, st.Duration.Round(time.Microsecond))

	if len(sols) == 0 {
		fmt.Println("There are no solutions for the configuration provided.")
		return
	}
	fmt.Print(board.RenderAll(p.Size, sols))
	if mode == domain.FindAll {
		fmt.Printf("\n%d solutions\n", len(sols))
	}
}

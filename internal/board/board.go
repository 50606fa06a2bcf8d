// Package board converts between the text form of a board and the domain
// types. The text form is n lines of n characters, 'Q' for a queen and '0'
// for an empty square.
package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"

	"svw.info/nqueens/internal/domain"
)

// Parse reads n board lines from r and collects the queens found on them.
// Format problems are reported per line and combined into a single error.
func Parse(n int, r io.Reader) (*domain.Problem, error) {
	if err := domain.CheckSize(n); err != nil {
		return nil, err
	}
	p := &domain.Problem{Size: n}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4*domain.MaxSize), 4*domain.MaxSize)

	var errs error
	for row := 0; row < n; row++ {
		if !sc.Scan() {
			errs = multierr.Append(errs, fmt.Errorf("row %d: missing (want %d rows)", row, n))
			break
		}
		line := strings.TrimSpace(sc.Text())
		if len(line) != n {
			errs = multierr.Append(errs, fmt.Errorf("row %d: got %d characters, want %d", row, len(line), n))
			continue
		}
		for col, c := range line {
			switch c {
			case 'Q':
				p.Queens = append(p.Queens, domain.CellCoord{Row: row, Col: col})
			case '0':
			default:
				errs = multierr.Append(errs, fmt.Errorf("row %d: invalid character %q (want 'Q' or '0')", row, c))
			}
		}
	}
	if err := sc.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return nil, errs
	}
	return p, nil
}

// Render writes a placement as board text.
func Render(n int, p domain.Placement) string {
	var b strings.Builder
	b.Grow((n + 1) * n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if row < len(p) && p[row] == col {
				b.WriteByte('Q')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderAll renders every placement with a blank line between boards.
func RenderAll(n int, ps []domain.Placement) string {
	boards := make([]string, len(ps))
	for i, p := range ps {
		boards[i] = Render(n, p)
	}
	return strings.Join(boards, "\n")
}

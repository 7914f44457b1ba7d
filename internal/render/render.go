// Package render formats boards and solve traces for terminal output.
package render

import (
	"fmt"
	"strings"

	"svw.info/sudoku-steps/internal/domain"
)

const (
	header    = "   A B C | D E F | G H I"
	separator = "  -------+-------+-------"
)

// Board renders the grid with column letters, box separators and dots for
// empty cells.
func Board(g domain.Grid) string {
	return board(g, -1, -1, 0)
}

// BoardHighlight renders the grid with the just-placed value bracketed.
func BoardHighlight(g domain.Grid, row, col int, v uint8) string {
	return board(g, row, col, v)
}

func board(g domain.Grid, hr, hc int, hv uint8) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteByte('\n')
	for r := 0; r < 9; r++ {
		fmt.Fprintf(&b, "%d ", r+1)
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				b.WriteString("| ")
			}
			switch {
			case r == hr && c == hc:
				fmt.Fprintf(&b, "[%d]", hv)
			case g[r][c] != 0:
				fmt.Fprintf(&b, "%d", g[r][c])
			default:
				b.WriteByte('.')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		if (r+1)%3 == 0 && r != 8 {
			b.WriteString(separator)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Step renders one deduction: heading, explanation, and the board after the
// action with the placed cell highlighted.
func Step(s domain.Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d: %s\n", s.Index+1, s.Technique)
	fmt.Fprintf(&b, "  %s\n", s.Description)
	fmt.Fprintf(&b, "  %s\n", s.Explanation)
	if len(s.Eliminated) > 0 {
		b.WriteString("  Removed:")
		for _, e := range s.Eliminated {
			fmt.Fprintf(&b, " %d@(%d,%d)", e.Value, e.Cell.Row+1, e.Cell.Col+1)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if s.Value != 0 {
		b.WriteString(BoardHighlight(s.Board, s.Row, s.Col, s.Value))
	} else {
		b.WriteString(Board(s.Board))
	}
	return b.String()
}

// Trace renders the whole solve run, step by step, then the outcome.
func Trace(t *domain.Trace) string {
	var b strings.Builder
	for _, s := range t.Steps {
		b.WriteString(Step(s))
		b.WriteByte('\n')
	}
	switch t.Outcome {
	case domain.Solved:
		fmt.Fprintf(&b, "Solved in %d steps.\n", len(t.Steps))
	default:
		fmt.Fprintf(&b, "Stuck after %d steps; the implemented techniques cannot finish this puzzle.\n", len(t.Steps))
	}
	b.WriteByte('\n')
	b.WriteString(Board(t.Final))
	return b.String()
}

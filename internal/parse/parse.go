// Package parse reads the plain-text puzzle format: nine lines of nine
// characters, digits 1-9 for givens and 0 or . for blanks. Blank lines and
// lines starting with # are skipped.
package parse

import (
	"bufio"
	"io"
	"strings"

	"svw.info/sudoku-steps/internal/domain"
)

// Grid reads one puzzle from r.
func Grid(r io.Reader) (domain.Grid, error) {
	var g domain.Grid
	row := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if row == 9 {
			return g, domain.Invalidf("more than 9 puzzle lines")
		}
		if len(line) != 9 {
			return g, domain.Invalidf("line %d has %d characters, want 9", row+1, len(line))
		}
		for col, ch := range line {
			switch {
			case ch == '.' || ch == '0':
				g[row][col] = 0
			case ch >= '1' && ch <= '9':
				g[row][col] = uint8(ch - '0')
			default:
				return g, domain.Invalidf("bad character %q at line %d, column %d", ch, row+1, col+1)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return g, err
	}
	if row != 9 {
		return g, domain.Invalidf("got %d puzzle lines, want 9", row)
	}
	return g, nil
}

// GridString parses a puzzle from an in-memory string.
func GridString(s string) (domain.Grid, error) {
	return Grid(strings.NewReader(s))
}

// Format renders a grid back into the nine-line text format.
func Format(g domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.WriteByte('0' + g[r][c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

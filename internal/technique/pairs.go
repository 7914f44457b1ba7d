package technique

import (
	"fmt"
	"math/bits"

	"svw.info/sudoku-steps/internal/board"
	"svw.info/sudoku-steps/internal/domain"
)

// NakedPairScan looks for two cells in one unit holding an identical
// two-candidate set; those two values can then be removed from every other
// cell of the unit. Units are tried rows first, then columns, then boxes.
// A result is returned only when at least one removal would change the
// board.
func NakedPairScan(b *board.Board) *Result {
	for _, u := range board.Units() {
		for i := 0; i < 9; i++ {
			first := u.Cells[i]
			m := b.CandidateMask(first.Row, first.Col)
			if b.Value(first.Row, first.Col) != 0 || bits.OnesCount16(m) != 2 {
				continue
			}
			for j := i + 1; j < 9; j++ {
				second := u.Cells[j]
				if b.Value(second.Row, second.Col) != 0 || b.CandidateMask(second.Row, second.Col) != m {
					continue
				}
				if res := nakedPair(b, u, first, second); res != nil {
					return res
				}
			}
		}
	}
	return nil
}

func nakedPair(b *board.Board, u board.Unit, first, second domain.CellCoord) *Result {
	pair := b.Candidates(first.Row, first.Col)

	var elims []domain.Elimination
	for _, cell := range u.Cells {
		if cell == first || cell == second || b.Value(cell.Row, cell.Col) != 0 {
			continue
		}
		for _, v := range pair {
			if b.HasCandidate(cell.Row, cell.Col, v) {
				elims = append(elims, domain.Elimination{Cell: cell, Value: v})
			}
		}
	}
	if len(elims) == 0 {
		return nil
	}

	return &Result{
		Technique: domain.NakedPair,
		Description: fmt.Sprintf("Remove %d and %d from other cells in %s",
			pair[0], pair[1], u.Name()),
		Explanation: fmt.Sprintf(
			"Cells (%d,%d) and (%d,%d) in %s both allow only %d and %d, so this naked pair claims those values and they cannot appear elsewhere in the %s.",
			first.Row+1, first.Col+1, second.Row+1, second.Col+1, u.Name(),
			pair[0], pair[1], kindName(u.Kind)),
		Row:          first.Row,
		Col:          first.Col,
		Cells:        []domain.CellCoord{first, second},
		Eliminations: elims,
	}
}

func kindName(k board.UnitKind) string {
	switch k {
	case board.ColUnit:
		return "column"
	case board.BoxUnit:
		return "box"
	}
	return "row"
}

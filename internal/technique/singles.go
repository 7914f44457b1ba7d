package technique

import (
	"fmt"

	"svw.info/sudoku-steps/internal/board"
	"svw.info/sudoku-steps/internal/domain"
)

// NakedSingleScan finds the first empty cell with exactly one remaining
// candidate, scanning rows top to bottom and columns left to right.
func NakedSingleScan(b *board.Board) *Result {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Value(r, c) != 0 || b.CandidateCount(r, c) != 1 {
				continue
			}
			v := b.Candidates(r, c)[0]
			return &Result{
				Technique:   domain.NakedSingle,
				Description: fmt.Sprintf("Place %d in cell (%d,%d)", v, r+1, c+1),
				Explanation: fmt.Sprintf("Cell (%d,%d) has only one possible candidate: %d", r+1, c+1, v),
				Row:         r,
				Col:         c,
				Value:       v,
				Cells:       []domain.CellCoord{{Row: r, Col: c}},
			}
		}
	}
	return nil
}

// HiddenSingleScan finds the first value that fits in only one cell of some
// unit. Units are tried rows first, then columns, then boxes; within a unit
// values ascend.
func HiddenSingleScan(b *board.Board) *Result {
	for _, u := range board.Units() {
		for v := uint8(1); v <= 9; v++ {
			var home domain.CellCoord
			count := 0
			for _, cell := range u.Cells {
				if b.Value(cell.Row, cell.Col) == v {
					count = 2 // already placed in this unit
					break
				}
				if b.Value(cell.Row, cell.Col) == 0 && b.HasCandidate(cell.Row, cell.Col, v) {
					home = cell
					count++
					if count > 1 {
						break
					}
				}
			}
			if count != 1 {
				continue
			}
			return &Result{
				Technique:   domain.HiddenSingle,
				Description: fmt.Sprintf("Place %d in cell (%d,%d)", v, home.Row+1, home.Col+1),
				Explanation: fmt.Sprintf("Number %d can only go in position (%d,%d) in %s",
					v, home.Row+1, home.Col+1, u.Name()),
				Row:   home.Row,
				Col:   home.Col,
				Value: v,
				Cells: []domain.CellCoord{home},
			}
		}
	}
	return nil
}

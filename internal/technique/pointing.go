package technique

import (
	"fmt"
	"strings"

	"svw.info/sudoku-steps/internal/board"
	"svw.info/sudoku-steps/internal/domain"
)

// PointingScan looks for a box whose candidates for some value all sit in a
// single row or column. The value can then be removed from that line outside
// the box. A result is returned only when at least one removal would
// actually change the board.
func PointingScan(b *board.Board) *Result {
	for box := 0; box < 9; box++ {
		u := board.Units()[18+box]
		for v := uint8(1); v <= 9; v++ {
			var cells []domain.CellCoord
			for _, cell := range u.Cells {
				if b.Value(cell.Row, cell.Col) == 0 && b.HasCandidate(cell.Row, cell.Col, v) {
					cells = append(cells, cell)
				}
			}
			if len(cells) < 2 {
				continue
			}
			if res := pointingLine(b, box, v, cells, true); res != nil {
				return res
			}
			if res := pointingLine(b, box, v, cells, false); res != nil {
				return res
			}
		}
	}
	return nil
}

// pointingLine checks whether all pattern cells share one row (or column)
// and collects the eliminations along that line outside the box.
func pointingLine(b *board.Board, box int, v uint8, cells []domain.CellCoord, byRow bool) *Result {
	line := coord(cells[0], byRow)
	for _, cell := range cells[1:] {
		if coord(cell, byRow) != line {
			return nil
		}
	}

	var elims []domain.Elimination
	lineUnit := board.ColOf(line)
	if byRow {
		lineUnit = board.RowOf(line)
	}
	for _, cell := range lineUnit.Cells {
		if board.BoxIndex(cell.Row, cell.Col) == box {
			continue
		}
		if b.Value(cell.Row, cell.Col) == 0 && b.HasCandidate(cell.Row, cell.Col, v) {
			elims = append(elims, domain.Elimination{Cell: cell, Value: v})
		}
	}
	if len(elims) == 0 {
		return nil
	}

	return &Result{
		Technique: domain.Pointing,
		Description: fmt.Sprintf("Remove %d from %s outside box %d",
			v, lineUnit.Name(), box+1),
		Explanation: fmt.Sprintf(
			"Number %d in box %d can only be placed in %s (cells %s). Since %d must go there inside the box, it cannot appear anywhere else in that %s. This eliminates %d from the other cells of the %s.",
			v, box+1, lineUnit.Name(), cellList(cells), v, kindWord(byRow), v, kindWord(byRow)),
		Row:          cells[0].Row,
		Col:          cells[0].Col,
		Cells:        cells,
		Eliminations: elims,
	}
}

func coord(c domain.CellCoord, byRow bool) int {
	if byRow {
		return c.Row
	}
	return c.Col
}

func kindWord(byRow bool) string {
	if byRow {
		return "row"
	}
	return "column"
}

func cellList(cells []domain.CellCoord) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row+1, c.Col+1)
	}
	if len(parts) == 2 {
		return parts[0] + " and " + parts[1]
	}
	return strings.Join(parts, ", ")
}

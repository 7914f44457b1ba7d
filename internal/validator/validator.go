package validator

import (
	"context"

	"svw.info/sudoku-steps/internal/board"
	"svw.info/sudoku-steps/internal/domain"
)

// FastValidator checks the 27 unit invariants with one bitmask pass per
// unit. It reports the cells that repeat an earlier value in their unit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	seen := map[domain.CellCoord]bool{}
	for _, u := range board.Units() {
		m := 0
		for _, cell := range u.Cells {
			val := g[cell.Row][cell.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 && !seen[cell] {
				seen[cell] = true
				conf = append(conf, cell)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

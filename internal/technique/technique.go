// Package technique holds the deduction rules of the step solver. Each rule
// is a pure scan over the current board that proposes either a single
// placement or a set of candidate eliminations, never both, together with
// the text explaining it. Scans mutate nothing; the orchestrator applies
// the winning result.
package technique

import (
	"svw.info/sudoku-steps/internal/board"
	"svw.info/sudoku-steps/internal/domain"
)

// Result is one applicable deduction. Value != 0 means a placement at
// (Row, Col); otherwise Eliminations holds at least one candidate removal
// that would change the board.
type Result struct {
	Technique    domain.Technique
	Description  string
	Explanation  string
	Row, Col     int
	Value        uint8
	Cells        []domain.CellCoord
	Eliminations []domain.Elimination
}

// Scan inspects a board and returns the first applicable deduction for its
// rule, or nil when the rule does not apply.
type Scan func(b *board.Board) *Result

// All returns the scans in solver priority order: the position in this list
// decides which explanation a board state gets when several rules apply.
func All() []Scan {
	return []Scan{NakedSingleScan, HiddenSingleScan, PointingScan, NakedPairScan}
}

// Package board implements the candidate-tracking grid the deduction
// techniques operate on. A Board owns its cells exclusively; every mutation
// preserves the peer-uniqueness invariant.
package board

import (
	"math/bits"

	"svw.info/sudoku-steps/internal/domain"
)

const fullMask uint16 = 0x3FE // bits 1..9 set

// Board is a 9x9 grid with per-cell candidate sets. A filled cell has an
// empty candidate mask; an empty cell's mask holds the values its peers
// still permit.
type Board struct {
	values [9][9]uint8
	cands  [9][9]uint16
}

// New validates the given grid and seeds candidates from the placed values.
// It fails with a domain.ValidationError if any value is out of range or two
// peer cells share a nonzero value.
func New(grid domain.Grid) (*Board, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] > 9 {
				return nil, domain.Invalidf("value %d at (%d,%d) out of range", grid[r][c], r+1, c+1)
			}
		}
	}
	for _, u := range Units() {
		m := uint16(0)
		for _, cell := range u.Cells {
			v := grid[cell.Row][cell.Col]
			if v == 0 {
				continue
			}
			bit := uint16(1) << v
			if m&bit != 0 {
				return nil, domain.Invalidf("duplicate %d in %s", v, u.Name())
			}
			m |= bit
		}
	}

	b := &Board{values: grid}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if grid[r][c] != 0 {
				continue
			}
			m := fullMask
			for _, p := range Peers(r, c) {
				if v := grid[p.Row][p.Col]; v != 0 {
					m &^= uint16(1) << v
				}
			}
			b.cands[r][c] = m
		}
	}
	return b, nil
}

// Value returns the placed value at (r, c), 0 if empty.
func (b *Board) Value(r, c int) uint8 { return b.values[r][c] }

// HasCandidate reports whether v is still possible at (r, c).
func (b *Board) HasCandidate(r, c int, v uint8) bool {
	return b.cands[r][c]&(1<<v) != 0
}

// CandidateCount returns the number of candidates left at (r, c).
func (b *Board) CandidateCount(r, c int) int {
	return bits.OnesCount16(b.cands[r][c])
}

// Candidates returns the remaining candidates at (r, c) in ascending order.
func (b *Board) Candidates(r, c int) []uint8 {
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if b.HasCandidate(r, c, v) {
			out = append(out, v)
		}
	}
	return out
}

// CandidateMask returns the raw candidate bitmask at (r, c). Two cells form
// a naked pair exactly when their masks are equal with two bits set.
func (b *Board) CandidateMask(r, c int) uint16 { return b.cands[r][c] }

// Place writes v into the empty cell (r, c), clears its candidates, and
// strips v from the candidate sets of its empty peers. It returns the peers
// whose candidates actually changed. Placing into a filled cell, or placing
// a value the cell no longer admits, is an invariant violation.
func (b *Board) Place(r, c int, v uint8) ([]domain.CellCoord, error) {
	if b.values[r][c] != 0 {
		return nil, domain.Invalidf("cell (%d,%d) already holds %d", r+1, c+1, b.values[r][c])
	}
	if !b.HasCandidate(r, c, v) {
		return nil, domain.Invalidf("%d is not a candidate of (%d,%d)", v, r+1, c+1)
	}
	b.values[r][c] = v
	b.cands[r][c] = 0
	var changed []domain.CellCoord
	for _, p := range Peers(r, c) {
		if b.values[p.Row][p.Col] == 0 && b.HasCandidate(p.Row, p.Col, v) {
			b.cands[p.Row][p.Col] &^= uint16(1) << v
			changed = append(changed, p)
		}
	}
	return changed, nil
}

// Eliminate removes v from the candidates of (r, c) and reports whether a
// change occurred. Filled cells and absent candidates are no-ops.
func (b *Board) Eliminate(r, c int, v uint8) bool {
	if b.values[r][c] != 0 || !b.HasCandidate(r, c, v) {
		return false
	}
	b.cands[r][c] &^= uint16(1) << v
	return true
}

// IsComplete reports whether every cell is filled and every unit holds each
// value exactly once.
func (b *Board) IsComplete() bool {
	for _, u := range Units() {
		m := uint16(0)
		for _, cell := range u.Cells {
			v := b.values[cell.Row][cell.Col]
			if v == 0 {
				return false
			}
			m |= uint16(1) << v
		}
		if m != fullMask {
			return false
		}
	}
	return true
}

// Snapshot copies the current cell values for step recording. Candidate
// state is deliberately not exposed.
func (b *Board) Snapshot() domain.Grid { return b.values }

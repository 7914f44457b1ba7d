package board

import (
	"strconv"

	"svw.info/sudoku-steps/internal/domain"
)

// UnitKind distinguishes the three peer group families.
type UnitKind int

const (
	RowUnit UnitKind = iota
	ColUnit
	BoxUnit
)

// Unit is one of the 27 fixed peer groups.
type Unit struct {
	Kind  UnitKind
	Index int // 0-based row, column, or box number
	Cells [9]domain.CellCoord
}

// units holds all 27 groups in row, column, box order. peers maps each cell
// to its 20 distinct peers. Both are computed once at init and never written
// again.
var (
	units [27]Unit
	peers [9][9][]domain.CellCoord
)

// Name renders the unit for explanations, 1-based ("row 3", "box 7").
func (u Unit) Name() string {
	kind := "row"
	switch u.Kind {
	case ColUnit:
		kind = "column"
	case BoxUnit:
		kind = "box"
	}
	return kind + " " + strconv.Itoa(u.Index+1)
}

// BoxIndex returns the 0-based box number of a cell, row-major.
func BoxIndex(r, c int) int { return (r/3)*3 + c/3 }

// Units returns all 27 units: rows 0-8, then columns, then boxes.
func Units() []Unit { return units[:] }

// RowOf, ColOf and BoxOf return the unit containing the given cell.
func RowOf(r int) Unit    { return units[r] }
func ColOf(c int) Unit    { return units[9+c] }
func BoxOf(r, c int) Unit { return units[18+BoxIndex(r, c)] }

// Peers returns the 20 cells sharing a row, column or box with (r, c),
// excluding the cell itself. The returned slice is shared and read-only.
func Peers(r, c int) []domain.CellCoord { return peers[r][c] }

func init() {
	for i := 0; i < 9; i++ {
		ru := Unit{Kind: RowUnit, Index: i}
		cu := Unit{Kind: ColUnit, Index: i}
		bu := Unit{Kind: BoxUnit, Index: i}
		br, bc := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			ru.Cells[j] = domain.CellCoord{Row: i, Col: j}
			cu.Cells[j] = domain.CellCoord{Row: j, Col: i}
			bu.Cells[j] = domain.CellCoord{Row: br + j/3, Col: bc + j%3}
		}
		units[i] = ru
		units[9+i] = cu
		units[18+i] = bu
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			seen := map[domain.CellCoord]bool{}
			ps := make([]domain.CellCoord, 0, 20)
			for _, u := range []Unit{RowOf(r), ColOf(c), BoxOf(r, c)} {
				for _, cell := range u.Cells {
					if (cell.Row == r && cell.Col == c) || seen[cell] {
						continue
					}
					seen[cell] = true
					ps = append(ps, cell)
				}
			}
			peers[r][c] = ps
		}
	}
}

package board

import (
	"errors"
	"testing"

	"svw.info/sudoku-steps/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestUnitsAndPeers(t *testing.T) {
	if got := len(Units()); got != 27 {
		t.Fatalf("units = %d, want 27", got)
	}
	for _, u := range Units() {
		seen := map[domain.CellCoord]bool{}
		for _, c := range u.Cells {
			if seen[c] {
				t.Fatalf("%s repeats cell %v", u.Name(), c)
			}
			seen[c] = true
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			ps := Peers(r, c)
			if len(ps) != 20 {
				t.Fatalf("peers(%d,%d) = %d, want 20", r, c, len(ps))
			}
			for _, p := range ps {
				if p.Row == r && p.Col == c {
					t.Fatalf("peers(%d,%d) contains the cell itself", r, c)
				}
			}
		}
	}
	if BoxIndex(4, 7) != 5 {
		t.Fatalf("BoxIndex(4,7) = %d, want 5", BoxIndex(4, 7))
	}
}

func TestUnitNames(t *testing.T) {
	for _, tc := range []struct {
		unit Unit
		want string
	}{
		{RowOf(0), "row 1"},
		{ColOf(2), "column 3"},
		{BoxOf(8, 8), "box 9"},
	} {
		if got := tc.unit.Name(); got != tc.want {
			t.Fatalf("Name() = %q, want %q", got, tc.want)
		}
	}
}

func TestNewSeedsCandidates(t *testing.T) {
	b, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// filled cells carry no candidates
	if got := b.CandidateCount(0, 0); got != 0 {
		t.Fatalf("filled cell has %d candidates", got)
	}
	// (0,2) sees 5,3 in its row... its full peer set allows exactly 1,2,4
	want := []uint8{1, 2, 4}
	got := b.Candidates(0, 2)
	if len(got) != len(want) {
		t.Fatalf("candidates(0,2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("candidates(0,2) = %v, want %v", got, want)
		}
	}
}

func TestNewRejectsBadGrids(t *testing.T) {
	dup := sample
	dup[0][8] = 5 // 5 already present in row 0
	outOfRange := sample
	outOfRange[4][4] = 12

	for _, tc := range []struct {
		name string
		grid domain.Grid
	}{
		{"duplicate in row", dup},
		{"value out of range", outOfRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.grid)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestPlaceUpdatesPeers(t *testing.T) {
	b, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !b.HasCandidate(0, 2, 4) {
		t.Fatal("expected 4 to be a candidate of (0,2)")
	}
	changed, err := b.Place(0, 2, 4)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if b.Value(0, 2) != 4 || b.CandidateCount(0, 2) != 0 {
		t.Fatalf("placed cell not finalized: value=%d candidates=%d", b.Value(0, 2), b.CandidateCount(0, 2))
	}
	if len(changed) == 0 {
		t.Fatal("expected some peer candidates to change")
	}
	for _, p := range changed {
		if b.HasCandidate(p.Row, p.Col, 4) {
			t.Fatalf("peer (%d,%d) still holds candidate 4", p.Row, p.Col)
		}
	}

	// defensive invariant checks
	if _, err := b.Place(0, 2, 4); err == nil {
		t.Fatal("placing into a filled cell should fail")
	}
	if _, err := b.Place(0, 3, 9); err == nil {
		t.Fatal("placing a non-candidate should fail")
	}
}

func TestEliminate(t *testing.T) {
	b, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !b.Eliminate(0, 2, 4) {
		t.Fatal("first elimination should report a change")
	}
	if b.Eliminate(0, 2, 4) {
		t.Fatal("second elimination should be a no-op")
	}
	if b.Eliminate(0, 0, 5) {
		t.Fatal("eliminating on a filled cell should be a no-op")
	}
}

func TestIsCompleteAndSnapshot(t *testing.T) {
	b, err := New(sample)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.IsComplete() {
		t.Fatal("partial board reported complete")
	}
	snap := b.Snapshot()
	if snap != sample {
		t.Fatal("snapshot does not match input grid")
	}
	// mutating the board must not alter an earlier snapshot
	if _, err := b.Place(0, 2, 1); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if snap[0][2] != 0 {
		t.Fatal("snapshot aliased board state")
	}

	solved := solvedGrid()
	sb, err := New(solved)
	if err != nil {
		t.Fatalf("New(solved) failed: %v", err)
	}
	if !sb.IsComplete() {
		t.Fatal("solved board not reported complete")
	}
}

// solvedGrid returns the unique solution of sample.
func solvedGrid() domain.Grid {
	return domain.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
}

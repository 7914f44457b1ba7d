package archive

import (
	"context"
	"path/filepath"
	"testing"

	"svw.info/sudoku-steps/internal/domain"
)

func testSession() *domain.Session {
	s := &domain.Session{
		ID:         "sess-1",
		Outcome:    domain.Solved,
		CreatedAt:  1234,
		DurationMs: 7,
	}
	s.Grid[0][0] = 5
	step := domain.Step{
		Index:       0,
		Technique:   domain.NakedSingle,
		Description: "Place 9 in cell (1,9)",
		Explanation: "Cell (1,9) has only one possible candidate: 9",
		Row:         0,
		Col:         8,
		Value:       9,
		Cells:       []domain.CellCoord{{Row: 0, Col: 8}},
	}
	step.Board = s.Grid
	step.Board[0][8] = 9
	s.Steps = []domain.Step{step}
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := store.SaveSession(ctx, testSession()); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := store.LoadSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if got.Outcome != domain.Solved || got.DurationMs != 7 || got.Grid[0][0] != 5 {
		t.Fatalf("session mismatch: %+v", got)
	}
	if len(got.Steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(got.Steps))
	}
	step := got.Steps[0]
	if step.Technique != domain.NakedSingle || step.Value != 9 || step.Board[0][8] != 9 {
		t.Fatalf("step mismatch: %+v", step)
	}
	if len(step.Cells) != 1 || step.Cells[0] != (domain.CellCoord{Row: 0, Col: 8}) {
		t.Fatalf("step cells mismatch: %+v", step.Cells)
	}

	metas, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "sess-1" || metas[0].StepCount != 1 {
		t.Fatalf("list mismatch: %+v", metas)
	}
}

func TestSaveSessionRequiresID(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()
	if err := store.SaveSession(context.Background(), &domain.Session{}); err == nil {
		t.Fatal("expected an error for a session without ID")
	}
}

func TestLoadMissingSession(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()
	if _, err := store.LoadSession(context.Background(), "nope"); err == nil {
		t.Fatal("expected an error for a missing session")
	}
}

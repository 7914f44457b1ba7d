package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"svw.info/sudoku-steps/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "abc",
		Name:       "classic",
		Difficulty: domain.Hard,
		CreatedAt:  42,
	}
	p.Grid[0][0] = 5
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Name != "classic" || got.Difficulty != domain.Hard || got.Grid[0][0] != 5 {
		t.Fatalf("loaded puzzle mismatch: %+v", got)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "abc" || metas[0].Difficulty != domain.Hard {
		t.Fatalf("list mismatch: %+v", metas)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected an error for a puzzle without ID")
	}
}

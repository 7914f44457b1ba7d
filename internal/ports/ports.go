package ports

import (
	"context"
	"time"

	"svw.info/sudoku-steps/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Scans    int // technique scans executed
	Duration time.Duration
}

// StepSolver produces an explained, ordered deduction trace for a grid.
type StepSolver interface {
	SolveSteps(ctx context.Context, g domain.Grid) (*domain.Trace, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

// Archive records completed solve sessions with their full step traces.
type Archive interface {
	SaveSession(ctx context.Context, s *domain.Session) error
	LoadSession(ctx context.Context, id string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.SessionMeta, error)
}

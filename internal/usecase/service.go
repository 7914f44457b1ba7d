package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-steps/internal/domain"
	"svw.info/sudoku-steps/internal/ports"
)

// Service is the application facade the adapters talk to.
type Service struct {
	Solver    ports.StepSolver
	Validator ports.Validator
	Storage   ports.Storage
	Archive   ports.Archive
}

func NewService(s ports.StepSolver, v ports.Validator, st ports.Storage, ar ports.Archive) *Service {
	return &Service{Solver: s, Validator: v, Storage: st, Archive: ar}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Grid) (*domain.Trace, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.SolveSteps(ctx, g)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Puzzle persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

// Session archive
func (u *Service) SaveSession(ctx context.Context, s *domain.Session) error {
	if u.Archive == nil {
		return errNotConfigured
	}
	return u.Archive.SaveSession(ctx, s)
}

func (u *Service) LoadSession(ctx context.Context, id string) (*domain.Session, error) {
	if u.Archive == nil {
		return nil, errNotConfigured
	}
	return u.Archive.LoadSession(ctx, id)
}

func (u *Service) ListSessions(ctx context.Context) ([]domain.SessionMeta, error) {
	if u.Archive == nil {
		return nil, errNotConfigured
	}
	return u.Archive.ListSessions(ctx)
}

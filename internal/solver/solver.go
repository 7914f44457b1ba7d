// Package solver drives the deduction techniques to a fixed point, recording
// one Step per applied action. It never guesses: a board the technique set
// cannot finish terminates as Stuck, which is a reportable outcome rather
// than an error.
package solver

import (
	"context"
	"time"

	"svw.info/sudoku-steps/internal/board"
	"svw.info/sudoku-steps/internal/domain"
	"svw.info/sudoku-steps/internal/ports"
	"svw.info/sudoku-steps/internal/technique"
)

// StepSolver applies techniques in a fixed priority order, so a given grid
// always yields the same trace.
type StepSolver struct {
	scans []technique.Scan
}

func NewStepSolver() *StepSolver {
	return &StepSolver{scans: technique.All()}
}

// SolveSteps validates the grid, then repeatedly applies the highest
// priority applicable technique until the board is complete or no technique
// makes progress. Each cycle appends exactly one Step. Termination needs no
// iteration cap: every applied action strictly shrinks the total of
// candidates plus unfilled cells.
func (s *StepSolver) SolveSteps(ctx context.Context, g domain.Grid) (*domain.Trace, ports.Stats, error) {
	start := time.Now()
	st := ports.Stats{}

	b, err := board.New(g)
	if err != nil {
		st.Duration = time.Since(start)
		return nil, st, err
	}

	var steps []domain.Step
	for !b.IsComplete() {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}

		var res *technique.Result
		for _, scan := range s.scans {
			st.Scans++
			if r := scan(b); r != nil {
				res = r
				break
			}
		}
		if res == nil {
			break // stuck
		}

		if err := s.apply(b, res); err != nil {
			// Scans only propose actions the board admits; a failure here
			// means a technique bug, surfaced instead of swallowed.
			st.Duration = time.Since(start)
			return nil, st, err
		}

		steps = append(steps, domain.Step{
			Index:       len(steps),
			Technique:   res.Technique,
			Description: res.Description,
			Explanation: res.Explanation,
			Row:         res.Row,
			Col:         res.Col,
			Value:       res.Value,
			Cells:       res.Cells,
			Eliminated:  res.Eliminations,
			Board:       b.Snapshot(),
		})
	}

	outcome := domain.Stuck
	if b.IsComplete() {
		outcome = domain.Solved
	}
	st.Duration = time.Since(start)
	return &domain.Trace{Outcome: outcome, Steps: steps, Final: b.Snapshot()}, st, nil
}

func (s *StepSolver) apply(b *board.Board, res *technique.Result) error {
	if res.Value != 0 {
		_, err := b.Place(res.Row, res.Col, res.Value)
		return err
	}
	for _, e := range res.Eliminations {
		b.Eliminate(e.Cell.Row, e.Cell.Col, e.Value)
	}
	return nil
}

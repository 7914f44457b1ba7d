package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"svw.info/sudoku-steps/internal/domain"
	"svw.info/sudoku-steps/internal/infrastructure/archive"
	"svw.info/sudoku-steps/internal/parse"
	"svw.info/sudoku-steps/internal/render"
	"svw.info/sudoku-steps/internal/solver"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		quiet       bool
		archivePath string
	)
	cmd := &cobra.Command{
		Use:   "sudoku-cli [puzzle-file]",
		Short: "Solve a Sudoku with explained logical deductions",
		Long: `Solves a 9x9 Sudoku using human-style techniques (naked single, hidden
single, pointing pair/triple, naked pair) and prints each deduction with
its explanation. Reads the puzzle from a file, or from stdin when no file
is given: nine lines of nine characters, 1-9 for givens and 0 or . for
blanks.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, quiet, archivePath)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the outcome and final board")
	cmd.Flags().StringVar(&archivePath, "archive", "", "record the solve session in this sqlite database")
	return cmd
}

func run(cmd *cobra.Command, args []string, quiet bool, archivePath string) error {
	var grid domain.Grid
	var err error
	if len(args) == 1 {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		grid, err = parse.Grid(f)
	} else {
		grid, err = parse.Grid(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	trace, st, err := solver.NewStepSolver().SolveSteps(context.Background(), grid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quiet {
		switch trace.Outcome {
		case domain.Solved:
			fmt.Fprintf(out, "Solved in %d steps.\n\n", len(trace.Steps))
		default:
			fmt.Fprintf(out, "Stuck after %d steps.\n\n", len(trace.Steps))
		}
		fmt.Fprint(out, render.Board(trace.Final))
	} else {
		fmt.Fprint(out, render.Trace(trace))
	}

	if archivePath != "" {
		store, err := archive.Open(archivePath)
		if err != nil {
			return err
		}
		defer store.Close()
		sess := &domain.Session{
			ID:         uuid.NewString(),
			Grid:       grid,
			Outcome:    trace.Outcome,
			Steps:      trace.Steps,
			CreatedAt:  time.Now().UnixNano(),
			DurationMs: st.Duration.Milliseconds(),
		}
		if err := store.SaveSession(context.Background(), sess); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSession archived as %s\n", sess.ID)
	}
	return nil
}

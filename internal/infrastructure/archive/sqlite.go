// Package archive records solve sessions in SQLite: one row per session and
// one row per step, so traces can be reloaded and rendered later.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"svw.info/sudoku-steps/internal/domain"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the archive database and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		grid TEXT NOT NULL,
		final TEXT NOT NULL,
		outcome TEXT NOT NULL,
		step_count INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS steps (
		session_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		technique TEXT NOT NULL,
		description TEXT NOT NULL,
		explanation TEXT NOT NULL,
		cell_row INTEGER NOT NULL,
		cell_col INTEGER NOT NULL,
		value INTEGER NOT NULL,
		cells TEXT,
		eliminated TEXT,
		board TEXT NOT NULL,
		PRIMARY KEY (session_id, idx),
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) SaveSession(ctx context.Context, sess *domain.Session) error {
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("invalid session: missing ID")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	final := sess.Grid
	if n := len(sess.Steps); n > 0 {
		final = sess.Steps[n-1].Board
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, grid, final, outcome, step_count, created_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, gridJSON(sess.Grid), gridJSON(final), sess.Outcome.String(),
		len(sess.Steps), sess.CreatedAt, sess.DurationMs)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO steps (session_id, idx, technique, description, explanation,
		 cell_row, cell_col, value, cells, eliminated, board)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, st := range sess.Steps {
		cells, _ := json.Marshal(st.Cells)
		elim, _ := json.Marshal(st.Eliminated)
		if _, err := stmt.ExecContext(ctx,
			sess.ID, st.Index, st.Technique.String(), st.Description, st.Explanation,
			st.Row, st.Col, st.Value, string(cells), string(elim), gridJSON(st.Board)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) LoadSession(ctx context.Context, id string) (*domain.Session, error) {
	var (
		sess            domain.Session
		gridStr, outStr string
		finalStr        string
		stepCount       int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, grid, final, outcome, step_count, created_at, duration_ms
		 FROM sessions WHERE id = ?`, id).
		Scan(&sess.ID, &gridStr, &finalStr, &outStr, &stepCount, &sess.CreatedAt, &sess.DurationMs)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(gridStr), &sess.Grid); err != nil {
		return nil, err
	}
	sess.Outcome = parseOutcome(outStr)

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, technique, description, explanation, cell_row, cell_col, value, cells, eliminated, board
		 FROM steps WHERE session_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			st                   domain.Step
			techStr, cells, elim string
			boardStr             string
		)
		if err := rows.Scan(&st.Index, &techStr, &st.Description, &st.Explanation,
			&st.Row, &st.Col, &st.Value, &cells, &elim, &boardStr); err != nil {
			return nil, err
		}
		st.Technique = parseTechnique(techStr)
		if cells != "" {
			_ = json.Unmarshal([]byte(cells), &st.Cells)
		}
		if elim != "" {
			_ = json.Unmarshal([]byte(elim), &st.Eliminated)
		}
		if err := json.Unmarshal([]byte(boardStr), &st.Board); err != nil {
			return nil, err
		}
		sess.Steps = append(sess.Steps, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) ListSessions(ctx context.Context) ([]domain.SessionMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, outcome, step_count, created_at FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.SessionMeta
	for rows.Next() {
		var (
			m      domain.SessionMeta
			outStr string
		)
		if err := rows.Scan(&m.ID, &outStr, &m.StepCount, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Outcome = parseOutcome(outStr)
		out = append(out, m)
	}
	return out, rows.Err()
}

func gridJSON(g domain.Grid) string {
	b, _ := json.Marshal(g)
	return string(b)
}

func parseOutcome(s string) domain.Outcome {
	if s == domain.Solved.String() {
		return domain.Solved
	}
	return domain.Stuck
}

func parseTechnique(s string) domain.Technique {
	for _, t := range []domain.Technique{domain.NakedSingle, domain.HiddenSingle, domain.Pointing, domain.NakedPair} {
		if s == t.String() {
			return t
		}
	}
	return domain.NakedSingle
}

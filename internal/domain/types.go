package domain

// Grid is the raw 9x9 board exchanged with callers (0 = empty).
type Grid [9][9]uint8

// CellCoord identifies a cell on the board (0-based).
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Elimination records one candidate removed from one cell.
type Elimination struct {
	Cell  CellCoord `json:"cell"`
	Value uint8     `json:"value"`
}

// Step is one applied deduction. It is immutable once appended to a trace.
// Row/Col/Value identify the placement for placement steps; Value is 0 for
// elimination-only steps.
type Step struct {
	Index       int           `json:"index"`
	Technique   Technique     `json:"technique"`
	Description string        `json:"description"`
	Explanation string        `json:"explanation"`
	Row         int           `json:"row"`
	Col         int           `json:"col"`
	Value       uint8         `json:"value"`
	Cells       []CellCoord   `json:"cells,omitempty"`
	Eliminated  []Elimination `json:"eliminated,omitempty"`
	Board       Grid          `json:"board"`
}

// Trace is the full result of a step-by-step solve.
type Trace struct {
	Outcome Outcome `json:"outcome"`
	Steps   []Step  `json:"steps"`
	Final   Grid    `json:"final"`
}

// Session is an archived solve run.
type Session struct {
	ID         string  `json:"id"`
	Grid       Grid    `json:"grid"`
	Outcome    Outcome `json:"outcome"`
	Steps      []Step  `json:"steps"`
	CreatedAt  int64   `json:"createdAt"`
	DurationMs int64   `json:"durationMs"`
}

// SessionMeta is a lightweight archive listing entry.
type SessionMeta struct {
	ID        string  `json:"id"`
	Outcome   Outcome `json:"outcome"`
	StepCount int     `json:"stepCount"`
	CreatedAt int64   `json:"createdAt"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

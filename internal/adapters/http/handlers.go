package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-steps/internal/domain"
	"svw.info/sudoku-steps/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/solve/ws", h.handleSolveWS)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
	mux.HandleFunc("/api/sessions", h.handleSessions)
	mux.HandleFunc("/api/session", h.handleSession)
}

// ---- Solve ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}

type solveResp struct {
	Steps      []stepJSON  `json:"steps,omitempty"`
	FinalBoard domain.Grid `json:"finalBoard,omitempty"`
	Outcome    string      `json:"outcome,omitempty"`
	SessionID  string      `json:"sessionId,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Scans      int         `json:"scans,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// stepJSON flattens a Step for clients, with the technique as text.
type stepJSON struct {
	Index       int                  `json:"index"`
	Technique   string               `json:"technique"`
	Description string               `json:"description"`
	Explanation string               `json:"explanation"`
	Row         int                  `json:"row"`
	Col         int                  `json:"col"`
	Value       uint8                `json:"value"`
	Cells       []domain.CellCoord   `json:"cells,omitempty"`
	Eliminated  []domain.Elimination `json:"eliminated,omitempty"`
	Board       domain.Grid          `json:"board"`
}

func toStepJSON(s domain.Step) stepJSON {
	return stepJSON{
		Index:       s.Index,
		Technique:   s.Technique.String(),
		Description: s.Description,
		Explanation: s.Explanation,
		Row:         s.Row,
		Col:         s.Col,
		Value:       s.Value,
		Cells:       s.Cells,
		Eliminated:  s.Eliminated,
		Board:       s.Board,
	}
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	trace, st, err := h.UC.Solve(r.Context(), req.Board)
	if err != nil {
		code := http.StatusInternalServerError
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			code = http.StatusBadRequest
		}
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}

	sessionID := h.archiveRun(r, req.Board, trace, st.Duration.Milliseconds())

	steps := make([]stepJSON, len(trace.Steps))
	for i, s := range trace.Steps {
		steps[i] = toStepJSON(s)
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Steps:      steps,
		FinalBoard: trace.Final,
		Outcome:    trace.Outcome.String(),
		SessionID:  sessionID,
		DurationMs: st.Duration.Milliseconds(),
		Scans:      st.Scans,
	})
}

// archiveRun stores the finished run when an archive is configured; a
// failure to archive never fails the solve response.
func (h *Handler) archiveRun(r *http.Request, g domain.Grid, trace *domain.Trace, durMs int64) string {
	if h.UC.Archive == nil {
		return ""
	}
	sess := &domain.Session{
		ID:         uuid.NewString(),
		Grid:       g,
		Outcome:    trace.Outcome,
		Steps:      trace.Steps,
		CreatedAt:  time.Now().UnixNano(),
		DurationMs: durMs,
	}
	if err := h.UC.SaveSession(r.Context(), sess); err != nil {
		return ""
	}
	return sess.ID
}

// ---- Validate ----

type validateReq struct {
	Board domain.Grid `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Board)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}

// ---- Sessions ----

type sessionsResp struct {
	Sessions []sessionMetaJSON `json:"sessions"`
	Error    string            `json:"error,omitempty"`
}

type sessionMetaJSON struct {
	ID        string `json:"id"`
	Outcome   string `json:"outcome"`
	StepCount int    `json:"stepCount"`
	CreatedAt int64  `json:"createdAt"`
}

func (h *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ms, err := h.UC.ListSessions(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(sessionsResp{Error: err.Error()})
		return
	}
	out := make([]sessionMetaJSON, len(ms))
	for i, m := range ms {
		out[i] = sessionMetaJSON{ID: m.ID, Outcome: m.Outcome.String(), StepCount: m.StepCount, CreatedAt: m.CreatedAt}
	}
	_ = json.NewEncoder(w).Encode(sessionsResp{Sessions: out})
}

type sessionReq struct {
	ID string `json:"id"`
}
type sessionResp struct {
	Session *domain.Session `json:"session,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(sessionResp{Error: "invalid JSON or missing id"})
		return
	}
	s, err := h.UC.LoadSession(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(sessionResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(sessionResp{Session: s})
}

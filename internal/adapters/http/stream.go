package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"svw.info/sudoku-steps/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Same-origin UI only; the API carries no credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsEnvelope frames each websocket message: one "step" message per applied
// deduction, then a single "done" (or "error") message.
type wsEnvelope struct {
	Type    string      `json:"type"` // "step", "done", "error"
	Step    *stepJSON   `json:"step,omitempty"`
	Outcome string      `json:"outcome,omitempty"`
	Board   domain.Grid `json:"board,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// handleSolveWS accepts one solve request over a websocket and streams each
// step as its own text message, so the UI can animate the deduction trace.
func (h *Handler) handleSolveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req solveReq
	if _, msg, err := conn.ReadMessage(); err != nil {
		return
	} else if err := json.Unmarshal(msg, &req); err != nil {
		writeWS(conn, wsEnvelope{Type: "error", Error: "invalid JSON: " + err.Error()})
		return
	}

	trace, st, err := h.UC.Solve(r.Context(), req.Board)
	if err != nil {
		writeWS(conn, wsEnvelope{Type: "error", Error: err.Error()})
		return
	}
	h.archiveRun(r, req.Board, trace, st.Duration.Milliseconds())

	for _, s := range trace.Steps {
		step := toStepJSON(s)
		if !writeWS(conn, wsEnvelope{Type: "step", Step: &step}) {
			return
		}
	}
	writeWS(conn, wsEnvelope{Type: "done", Outcome: trace.Outcome.String(), Board: trace.Final})
}

func writeWS(conn *websocket.Conn, env wsEnvelope) bool {
	msg, err := json.Marshal(env)
	if err != nil {
		return false
	}
	return conn.WriteMessage(websocket.TextMessage, msg) == nil
}

package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"svw.info/sudoku-steps/internal/domain"
	"svw.info/sudoku-steps/internal/solver"
	"svw.info/sudoku-steps/internal/usecase"
	"svw.info/sudoku-steps/internal/validator"
)

var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewService(solver.NewStepSolver(), validator.New(), nil, nil)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	w := postJSON(t, newTestMux(t), "/api/solve", solveReq{Board: sample})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Outcome != "solved" {
		t.Fatalf("outcome = %q, want solved", resp.Outcome)
	}
	if len(resp.Steps) == 0 {
		t.Fatal("expected steps in the response")
	}
	if resp.Steps[0].Technique == "" || resp.Steps[0].Explanation == "" {
		t.Fatalf("step missing text: %+v", resp.Steps[0])
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if resp.FinalBoard[r][c] == 0 {
				t.Fatal("final board still has blanks")
			}
		}
	}
}

func TestSolveEndpointRejectsBadGrid(t *testing.T) {
	bad := sample
	bad[0][8] = 5
	w := postJSON(t, newTestMux(t), "/api/solve", solveReq{Board: bad})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body)
	}
	var resp solveResp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error == "" {
		t.Fatal("expected an error message")
	}
}

func TestSolveEndpointMethodGuard(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	w := httptest.NewRecorder()
	newTestMux(t).ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	mux := newTestMux(t)

	w := postJSON(t, mux, "/api/validate", validateReq{Board: sample})
	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if !resp.OK || len(resp.Conflicts) != 0 {
		t.Fatalf("valid grid reported conflicts: %+v", resp)
	}

	bad := sample
	bad[0][8] = 5
	w = postJSON(t, mux, "/api/validate", validateReq{Board: bad})
	resp = validateResp{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.OK || len(resp.Conflicts) == 0 {
		t.Fatalf("conflicting grid reported OK: %+v", resp)
	}
}

func TestSolveWebsocketStreamsSteps(t *testing.T) {
	srv := httptest.NewServer(newTestMux(t))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/solve/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(solveReq{Board: sample}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	steps := 0
	for {
		var env wsEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read failed after %d steps: %v", steps, err)
		}
		switch env.Type {
		case "step":
			if env.Step == nil || env.Step.Index != steps {
				t.Fatalf("step %d out of order: %+v", steps, env.Step)
			}
			steps++
		case "done":
			if env.Outcome != "solved" {
				t.Fatalf("outcome = %q, want solved", env.Outcome)
			}
			if steps == 0 {
				t.Fatal("done before any steps")
			}
			return
		default:
			t.Fatalf("unexpected message: %+v", env)
		}
	}
}

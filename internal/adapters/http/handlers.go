package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"svw.info/nqueens/internal/board"
	"svw.info/nqueens/internal/domain"
	"svw.info/nqueens/internal/solver"
	"svw.info/nqueens/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/hint", h.handleHint)
}

func parseMode(s string) domain.Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return domain.FindAll
	default:
		return domain.FindOne
	}
}

// statusFor distinguishes bad input from a server-side failure. An invalid
// size or an impossible starting position is the caller's mistake; an empty
// solution set is not an error at all.
func statusFor(err error) int {
	var sizeErr *domain.InvalidSizeError
	if errors.As(err, &sizeErr) || errors.Is(err, solver.ErrAttackingQueens) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ---- Solve ----

type solveReq struct {
	Size   int                `json:"size"`
	Queens []domain.CellCoord `json:"queens,omitempty"`
	Mode   string             `json:"mode,omitempty"`
}

type solveResp struct {
	Solutions  []domain.Placement `json:"solutions"`
	Count      int                `json:"count"`
	Boards     []string           `json:"boards,omitempty"`
	DurationMs int64              `json:"durationMs,omitempty"`
	Nodes      int                `json:"nodes,omitempty"`
	Error      string             `json:"error,omitempty"`
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
	p := &domain.Problem{Size: req.Size, Queens: req.Queens}
	sols, st, err := h.UC.Solve(r.Context(), p, parseMode(req.Mode))
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	boards := make([]string, len(sols))
	for i, s := range sols {
		boards[i] = board.Render(req.Size, s)
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Solutions:  sols,
		Count:      len(sols),
		Boards:     boards,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Size   int                `json:"size"`
	Queens []domain.CellCoord `json:"queens"`
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
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Size, req.Queens)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateReq struct {
	Size  int   `json:"size"`
	Clues int   `json:"clues,omitempty"`
	Seed  int64 `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	Board      string         `json:"board,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	puz, st, err := h.UC.Generate(r.Context(), seed, req.Size, req.Clues)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	// Render the givens as a partial board for display.
	givens := make(domain.Placement, puz.Problem.Size)
	for i := range givens {
		givens[i] = -1
	}
	for _, q := range puz.Problem.Queens {
		givens[q.Row] = q.Col
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Puzzle:     puz,
		Board:      board.Render(puz.Problem.Size, givens),
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Hint ----

type hintReq struct {
	Size   int                `json:"size"`
	Queens []domain.CellCoord `json:"queens"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	p := &domain.Problem{Size: req.Size, Queens: req.Queens}
	hh, ok, err := h.UC.Hint(r.Context(), p)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

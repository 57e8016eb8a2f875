package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"svw.info/gridkit/internal/domain"
	"svw.info/gridkit/internal/infrastructure/session"
	"svw.info/gridkit/internal/ports"
	"svw.info/gridkit/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// Trace receives propagation events in addition to any WebSocket
	// watchers, e.g. for server-side logging. May be nil.
	Trace ports.TraceSink

	hub *hub
}

func New(uc *usecase.Service, trace ports.TraceSink) *Handler {
	return &Handler{UC: uc, Trace: trace, hub: newHub()}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/state", h.handleState)
	mux.HandleFunc("/api/set", h.handleSet)
	mux.HandleFunc("/api/propagate", h.handlePropagate)
	mux.HandleFunc("/api/games", h.handleGames)
	mux.HandleFunc("/api/sessions", h.handleSessions)
	mux.HandleFunc("/api/watch", h.handleWatch)
}

// ---- shared projection ----

// cellState is the read-only projection of one cell for rendering.
type cellState struct {
	Row           int                  `json:"row"`
	Col           int                  `json:"col"`
	Possibilities []domain.CellContent `json:"possibilities"`
	Fixed         bool                 `json:"fixed,omitempty"`
	Found         bool                 `json:"found,omitempty"`
	Invalid       bool                 `json:"invalid,omitempty"`
}

type gridState struct {
	Game   string      `json:"game"`
	MaxRow int         `json:"maxRow"`
	MaxCol int         `json:"maxCol"`
	Cells  []cellState `json:"cells"`
}

func projectSession(s *domain.Session) gridState {
	s.Lock()
	defer s.Unlock()
	g := s.Grid
	out := gridState{Game: s.Game, MaxRow: g.MaxRow(), MaxCol: g.MaxCol()}
	for r := 0; r < g.MaxRow(); r++ {
		for c := 0; c < g.MaxCol(); c++ {
			cell, err := g.CellAt(domain.Coordinate{Row: r, Col: c})
			if err != nil {
				continue
			}
			out.Cells = append(out.Cells, cellState{
				Row:           r,
				Col:           c,
				Possibilities: cell.Possibilities,
				Fixed:         cell.IsFixed(),
				Found:         cell.IsFound(),
				Invalid:       cell.IsInvalid(),
			})
		}
	}
	return out
}

func statusFor(err error) int {
	var oor *domain.OutOfRangeError
	var inv *domain.InvalidCellError
	var fix *domain.FixedCellMutationError
	var inc *domain.IncompleteInitialCellError
	switch {
	case errors.As(err, &oor), errors.As(err, &inv), errors.As(err, &fix), errors.As(err, &inc):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ---- New ----

type initCell struct {
	Row   int                `json:"row"`
	Col   int                `json:"col"`
	Value domain.CellContent `json:"value"`
}

type newReq struct {
	Game  string     `json:"game"`
	Cells []initCell `json:"cells,omitempty"`
}

type newResp struct {
	ID    string    `json:"id,omitempty"`
	State gridState `json:"state,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	initial := make([]domain.Cell, 0, len(req.Cells))
	for _, c := range req.Cells {
		initial = append(initial, domain.FixedCell(c.Value, domain.Coordinate{Row: c.Row, Col: c.Col}))
	}
	s, err := h.UC.NewSession(r.Context(), req.Game, initial)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(newResp{ID: s.ID, State: projectSession(s)})
}

// ---- State ----

type stateResp struct {
	State gridState `json:"state,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stateResp{Error: "missing id"})
		return
	}
	s, err := h.UC.Session(r.Context(), id)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(stateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(stateResp{State: projectSession(s)})
}

// ---- Set ----

type setReq struct {
	ID     string               `json:"id"`
	Row    int                  `json:"row"`
	Col    int                  `json:"col"`
	Values []domain.CellContent `json:"values"`
}

type setResp struct {
	State gridState `json:"state,omitempty"`
	Error string    `json:"error,omitempty"`
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req setReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(setResp{Error: "invalid JSON or missing id"})
		return
	}
	at := domain.Coordinate{Row: req.Row, Col: req.Col}
	cell := domain.Cell{Possibilities: req.Values, Coord: at}
	if err := h.UC.SetCell(r.Context(), req.ID, at, cell); err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(setResp{Error: err.Error()})
		return
	}
	s, err := h.UC.Session(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(setResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(setResp{State: projectSession(s)})
}

// ---- Propagate ----

type propagateReq struct {
	ID string `json:"id"`
}

type propagateResp struct {
	Result        string             `json:"result,omitempty"`
	Contradiction *domain.Coordinate `json:"contradiction,omitempty"`
	Rule          string             `json:"rule,omitempty"`
	Passes        int                `json:"passes,omitempty"`
	Eliminations  int                `json:"eliminations,omitempty"`
	DurationMs    int64              `json:"durationMs"`
	State         gridState          `json:"state,omitempty"`
	Error         string             `json:"error,omitempty"`
}

func (h *Handler) handlePropagate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req propagateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(propagateResp{Error: "invalid JSON or missing id"})
		return
	}
	res, st, err := h.UC.Propagate(r.Context(), req.ID, h.traceFor(req.ID))
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(propagateResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds()})
		return
	}
	resp := propagateResp{
		Result:       res.Outcome.String(),
		Passes:       st.Passes,
		Eliminations: st.Eliminations,
		DurationMs:   st.Duration.Milliseconds(),
	}
	if res.Outcome == domain.Contradiction {
		at := res.At
		resp.Contradiction = &at
		resp.Rule = res.Rule
	}
	if s, err := h.UC.Session(r.Context(), req.ID); err == nil {
		resp.State = projectSession(s)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Games / Sessions ----

type gamesResp struct {
	Games []string `json:"games"`
	Error string   `json:"error,omitempty"`
}

func (h *Handler) handleGames(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	names, err := h.UC.Games(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(gamesResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(gamesResp{Games: names})
}

type sessionsResp struct {
	Sessions []domain.SessionMeta `json:"sessions"`
	Error    string               `json:"error,omitempty"`
}

func (h *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ms, err := h.UC.Sessions(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(sessionsResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(sessionsResp{Sessions: ms})
}

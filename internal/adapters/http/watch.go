package httpadapter

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"svw.info/gridkit/internal/domain"
	"svw.info/gridkit/internal/ports"
)

// hub tracks WebSocket watchers per session and fans propagation events out
// to them. Writes happen under the hub lock, so one slow client can delay the
// others but interleaved frames cannot occur.
type hub struct {
	mu       sync.Mutex
	watchers map[string]map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{watchers: make(map[string]map[*websocket.Conn]bool)}
}

func (h *hub) add(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[id] == nil {
		h.watchers[id] = make(map[*websocket.Conn]bool)
	}
	h.watchers[id][conn] = true
}

func (h *hub) remove(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.watchers[id], conn)
	if len(h.watchers[id]) == 0 {
		delete(h.watchers, id)
	}
}

func (h *hub) broadcast(id string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.watchers[id] {
		if err := conn.WriteJSON(v); err != nil {
			conn.Close()
			delete(h.watchers[id], conn)
		}
	}
}

// traceEvent is the wire form of one propagation event.
type traceEvent struct {
	Type         string `json:"type"` // elimination | pass | finished
	Row          int    `json:"row,omitempty"`
	Col          int    `json:"col,omitempty"`
	Value        string `json:"value,omitempty"`
	Rule         string `json:"rule,omitempty"`
	Scope        string `json:"scope,omitempty"`
	Pass         int    `json:"pass,omitempty"`
	Eliminations int    `json:"eliminations,omitempty"`
	Result       string `json:"result,omitempty"`
}

// wsSink streams one session's propagation events to its watchers.
type wsSink struct {
	hub *hub
	id  string
}

func (s wsSink) Elimination(at domain.Coordinate, value domain.CellContent, rule, scope string) {
	s.hub.broadcast(s.id, traceEvent{
		Type: "elimination", Row: at.Row, Col: at.Col,
		Value: value.String(), Rule: rule, Scope: scope,
	})
}

func (s wsSink) PassDone(pass, eliminations int) {
	s.hub.broadcast(s.id, traceEvent{Type: "pass", Pass: pass, Eliminations: eliminations})
}

func (s wsSink) Finished(res domain.PropagationResult, st ports.Stats) {
	ev := traceEvent{
		Type: "finished", Result: res.Outcome.String(),
		Pass: st.Passes, Eliminations: st.Eliminations,
	}
	if res.Outcome == domain.Contradiction {
		ev.Row, ev.Col, ev.Rule = res.At.Row, res.At.Col, res.Rule
	}
	s.hub.broadcast(s.id, ev)
}

// fanSink forwards events to every non-nil sink.
type fanSink []ports.TraceSink

func (f fanSink) Elimination(at domain.Coordinate, value domain.CellContent, rule, scope string) {
	for _, s := range f {
		s.Elimination(at, value, rule, scope)
	}
}

func (f fanSink) PassDone(pass, eliminations int) {
	for _, s := range f {
		s.PassDone(pass, eliminations)
	}
}

func (f fanSink) Finished(res domain.PropagationResult, st ports.Stats) {
	for _, s := range f {
		s.Finished(res, st)
	}
}

// traceFor composes the handler-level sink with the session's watchers.
func (h *Handler) traceFor(id string) ports.TraceSink {
	sinks := fanSink{wsSink{hub: h.hub, id: id}}
	if h.Trace != nil {
		sinks = append(sinks, h.Trace)
	}
	return sinks
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is same-host tooling; cross-origin pages may subscribe too.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleWatch upgrades the connection and streams trace events for the given
// session until the client hangs up.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, `{"error":"missing id"}`, http.StatusBadRequest)
		return
	}
	if _, err := h.UC.Session(r.Context(), id); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, statusFor(err))
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.hub.add(id, conn)
	defer func() {
		h.hub.remove(id, conn)
		conn.Close()
	}()
	// drain control frames; exit on close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

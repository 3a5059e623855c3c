package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/samdwyer/mazerush/internal/game"
)

// Intent is a message from the client: a move or a session-level action.
type Intent struct {
	Type      string `json:"type"` // move | restart_level | restart_game | force_next | snapshot
	Direction string `json:"direction,omitempty"`
	Speed     int    `json:"speed,omitempty"`
}

// State is the server's reply: the fresh snapshot plus whatever the
// turn produced.
type State struct {
	Type     string        `json:"type"`
	Snapshot game.Snapshot `json:"snapshot"`
	Events   []game.Event  `json:"events,omitempty"`
}

// ErrorReply reports a malformed intent without dropping the session.
type ErrorReply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The server renders a local single-player game; accept any origin.
		return true
	},
}

// Handler upgrades websocket requests and runs one session per
// connection. The session is owned by the connection's read loop, so
// intents resolve strictly one at a time.
type Handler struct {
	cfg game.Config
}

// NewHandler creates a handler that starts sessions with the given config.
func NewHandler(cfg game.Config) *Handler {
	return &Handler{cfg: cfg}
}

// ServeHTTP upgrades the request and serves the session until the
// client disconnects.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	conn := NewConnection(ws)
	go conn.WritePump()
	defer conn.Close()

	ctx := r.Context()
	sc := &sessionClient{
		ctx:     ctx,
		session: game.NewSession(ctx, h.cfg),
	}
	log.Printf("session %s connected from %s", sc.session.ID(), r.RemoteAddr)

	// Initial state so the client can render before the first intent.
	conn.Send(State{Type: "state", Snapshot: sc.session.Snapshot()})
	conn.ReadPump(sc)
	log.Printf("session %s disconnected", sc.session.ID())
}

// sessionClient binds one session to one connection.
type sessionClient struct {
	ctx     context.Context
	session *game.Session
}

// HandleMessage resolves one intent against the session and replies
// with the resulting state.
func (sc *sessionClient) HandleMessage(conn *Connection, message []byte) {
	var intent Intent
	if err := json.Unmarshal(message, &intent); err != nil {
		conn.Send(ErrorReply{Type: "error", Message: "malformed intent"})
		return
	}

	var (
		snap   game.Snapshot
		events []game.Event
	)
	switch intent.Type {
	case "move":
		dir, err := game.ParseDirection(intent.Direction)
		if err != nil {
			conn.Send(ErrorReply{Type: "error", Message: err.Error()})
			return
		}
		snap, events = sc.session.SubmitMove(sc.ctx, dir, intent.Speed)
	case "restart_level":
		snap = sc.session.RestartLevel(sc.ctx)
	case "restart_game":
		snap = sc.session.RestartGame(sc.ctx)
	case "force_next":
		snap = sc.session.ForceNextLevel(sc.ctx)
	case "snapshot":
		snap = sc.session.Snapshot()
	default:
		conn.Send(ErrorReply{Type: "error", Message: "unknown intent type " + intent.Type})
		return
	}

	conn.Send(State{Type: "state", Snapshot: snap, Events: events})
}

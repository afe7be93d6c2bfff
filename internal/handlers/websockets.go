package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"freeze_dryer/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 16 // 64 KB settings payloads
)

// wsEnvelope frames every message on the recalculation channel.
type wsEnvelope struct {
	Type  string      `json:"type"` // result | error
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Origins are deliberately unrestricted: the
// channel carries no credentials and no server state, it only recomputes a
// curve from the payload the client supplies, so a cross-origin page learns
// nothing it could not compute itself.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRecalculate is the live recalculation channel: every settings payload the
// client pushes is answered with a freshly computed progress curve. The engine
// is pure and cheap (bounded sample count), so each edit just recomputes.
func (h *Handler) wsRecalculate(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine: each incoming message is a settings document. quit
	// unblocks a reader parked on the channel send once this loop exits, so a
	// payload queued behind an in-flight one never strands the goroutine.
	incoming := make(chan models.SettingsDocument)
	done := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)
	go h.readSettings(conn, incoming, done, quit)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case doc := <-incoming:
			if err := h.sendResult(conn, doc); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// readSettings drains incoming messages, decoding settings payloads and
// detecting closure. The send races the writer's shutdown; whichever comes
// first releases the goroutine.
func (h *Handler) readSettings(conn *websocket.Conn, incoming chan<- models.SettingsDocument, done chan<- struct{}, quit <-chan struct{}) {
	defer close(done)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		var doc models.SettingsDocument
		if err := json.Unmarshal(msg, &doc); err != nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: "invalid settings payload: " + err.Error()})
			continue
		}
		select {
		case incoming <- doc:
		case <-quit:
			return
		}
	}
}

// sendResult runs the simulation and writes the result with a write deadline.
func (h *Handler) sendResult(conn *websocket.Conn, doc models.SettingsDocument) error {
	res, err := h.services.Simulation.Run(doc.ToSettings())
	if err != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(wsEnvelope{Type: "error", Error: err.Error()})
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "result", Data: res})
}

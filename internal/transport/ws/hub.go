package ws

import (
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"voxterview-server-go/internal/domain/eventbus"
	"voxterview-server-go/internal/platform/logging"
)

// Hub tracks the active websocket clients and fans progress snapshots out to
// them. Every client sees the full snapshot stream; the last snapshot of a
// run is the session summary.
type Hub struct {
	logger   *logging.Logger
	sessions sync.Map // map[string]*Session
}

// NewHub builds a client hub subscribed to interview progress.
func NewHub(logger *logging.Logger) (*Hub, error) {
	h := &Hub{logger: logger}
	if err := eventbus.Subscribe(eventbus.EventInterviewProgress, h.onProgress); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Hub) onProgress(data eventbus.ProgressEventData) {
	payload, err := sonic.Marshal(data)
	if err != nil {
		h.logger.ErrorTag("WebSocket", "marshal progress snapshot: %v", err)
		return
	}
	h.Broadcast(payload)
}

// Broadcast writes a text message to every connected client.
func (h *Hub) Broadcast(payload []byte) {
	h.sessions.Range(func(key, value any) bool {
		session, ok := value.(*Session)
		if !ok {
			return true
		}
		if err := session.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.WarnTag("WebSocket", "write to %s failed: %v", session.ID(), err)
		}
		return true
	})
}

// Register adds a new client session to the hub.
func (h *Hub) Register(session *Session) {
	if session == nil {
		return
	}
	h.sessions.Store(session.ID(), session)
}

// Unregister removes the session from the hub.
func (h *Hub) Unregister(id string) {
	if id == "" {
		return
	}
	h.sessions.Delete(id)
}

// CloseAll terminates all active client sessions.
func (h *Hub) CloseAll(reason error) {
	if reason == nil {
		reason = ErrSessionShutdown
	}

	h.sessions.Range(func(key, value any) bool {
		if session, ok := value.(*Session); ok {
			session.Close(reason)
		}
		h.sessions.Delete(key)
		return true
	})
}

// Count exposes the number of active websocket clients.
func (h *Hub) Count() int {
	count := 0
	h.sessions.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

package ws

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"voxterview-server-go/internal/domain/interview"
	"voxterview-server-go/internal/platform/logging"
)

// controlMessage is what a UI client may send over the progress channel.
type controlMessage struct {
	Type string `json:"type"`
}

// ackPayload is the immediate response to a control message.
type ackPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Session is one connected UI client. It reads control messages (start,
// skip, stop) and receives the broadcast snapshot stream via the hub.
type Session struct {
	id      string
	conn    *Connection
	manager *interview.Manager
	logger  *logging.Logger

	ctx    context.Context
	cancel context.CancelCauseFunc
	closed atomic.Bool
}

// NewSession constructs a managed websocket client session.
func NewSession(parent context.Context, id string, conn *Connection, manager *interview.Manager, logger *logging.Logger) *Session {
	sessionCtx, cancel := context.WithCancelCause(parent)
	return &Session{
		id:      id,
		conn:    conn,
		manager: manager,
		logger:  logger,
		ctx:     sessionCtx,
		cancel:  cancel,
	}
}

// ID exposes the client session identifier.
func (s *Session) ID() string {
	return s.id
}

// Run reads control messages until the connection drops, then invokes onDone.
func (s *Session) Run(onDone func(error)) {
	var runErr error
	defer func() {
		s.Close(runErr)
		if onDone != nil {
			onDone(runErr)
		}
	}()

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				runErr = err
			}
			return
		}
		s.dispatch(payload)
	}
}

func (s *Session) dispatch(payload []byte) {
	var msg controlMessage
	if err := sonic.Unmarshal(payload, &msg); err != nil {
		s.logger.WarnTag("WebSocket", "client %s sent invalid control message", s.id)
		return
	}

	ack := ackPayload{Type: msg.Type}
	switch strings.ToLower(msg.Type) {
	case "start":
		status := s.manager.Start()
		ack.Message = "interview started: " + status.SessionID
	case "skip":
		message, err := s.manager.Skip()
		ack.Message = message
		if err != nil {
			ack.Error = err.Error()
		}
	case "stop":
		message, err := s.manager.Stop()
		ack.Message = message
		if err != nil {
			ack.Error = err.Error()
		}
	default:
		ack.Error = "unknown control type"
	}

	data, err := sonic.Marshal(ack)
	if err != nil {
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.WarnTag("WebSocket", "ack to %s failed: %v", s.id, err)
	}
}

// Close attempts to gracefully terminate the client session.
func (s *Session) Close(reason error) {
	if reason == nil {
		reason = ErrSessionShutdown
	}
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	if s.cancel != nil {
		s.cancel(reason)
	}
	_ = s.conn.Close()
}

package ws

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"voxterview-server-go/internal/domain/interview"
	"voxterview-server-go/internal/platform/logging"
)

// Router upgrades HTTP connections to websocket client sessions.
type Router struct {
	hub     *Hub
	manager *interview.Manager
	logger  *logging.Logger

	upgrader         *websocket.Upgrader
	handshakeTimeout time.Duration
	parent           context.Context
}

// RouterOptions configures the websocket router.
type RouterOptions struct {
	HandshakeTimeout time.Duration
	CheckOrigin      func(r *http.Request) bool
}

// NewRouter constructs a websocket router.
func NewRouter(parent context.Context, hub *Hub, manager *interview.Manager, logger *logging.Logger, opts RouterOptions) *Router {
	upgrader := &websocket.Upgrader{
		CheckOrigin: opts.CheckOrigin,
	}
	if upgrader.CheckOrigin == nil {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	timeout := opts.HandshakeTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if parent == nil {
		parent = context.Background()
	}

	return &Router{
		hub:              hub,
		manager:          manager,
		logger:           logger,
		upgrader:         upgrader,
		handshakeTimeout: timeout,
		parent:           parent,
	}
}

// Handle upgrades the HTTP connection and launches a new client session.
func (r *Router) Handle(w http.ResponseWriter, req *http.Request) {
	handshakeCtx, cancel := context.WithTimeoutCause(req.Context(), r.handshakeTimeout, ErrHandshakeTimeout)
	defer cancel()
	req = req.WithContext(handshakeCtx)

	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.ErrorTag("WebSocket", "handshake failed: %v", err)
		return
	}

	clientID := req.URL.Query().Get("client-id")
	if clientID == "" {
		clientID = fmt.Sprintf("%p", conn)
	}
	r.logger.InfoTag("WebSocket", "client connected: %s", clientID)

	wsConn := NewConnection(clientID, conn)
	session := NewSession(r.parent, clientID, wsConn, r.manager, r.logger)
	r.hub.Register(session)

	go session.Run(func(runErr error) {
		r.hub.Unregister(session.ID())
		if runErr != nil {
			r.logger.WarnTag("WebSocket", "client %s ended abnormally: %v", session.ID(), runErr)
		} else {
			r.logger.InfoTag("WebSocket", "client disconnected: %s", session.ID())
		}
	})
}

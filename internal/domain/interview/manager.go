package interview

import (
	"context"
	"sync"

	"voxterview-server-go/internal/domain/eventbus"
	platformerrors "voxterview-server-go/internal/platform/errors"
	"voxterview-server-go/internal/platform/logging"
)

// Status is the externally visible snapshot of the active run.
type Status struct {
	SessionID     string `json:"session_id"`
	State         string `json:"state"`
	QuestionIndex int    `json:"question_index"`
	Text          string `json:"text"`
}

// Manager owns at most one active session and exposes the three external
// triggers: start, skip and stop. Each run executes in its own goroutine;
// the manager only touches the run's atomic flags after launch.
type Manager struct {
	runCtx     context.Context
	controller *Controller
	logger     *logging.Logger

	mu     sync.Mutex
	active *Session

	last sync.Map // sessionID -> Status, updated from progress events
}

// NewManager builds a manager and subscribes it to progress snapshots.
// Runs live on runCtx, the server lifetime, not on any client connection.
func NewManager(runCtx context.Context, controller *Controller, logger *logging.Logger) (*Manager, error) {
	m := &Manager{
		runCtx:     runCtx,
		controller: controller,
		logger:     logger,
	}
	if err := eventbus.Subscribe(eventbus.EventInterviewProgress, m.onProgress); err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindDomain, "manager", "subscribe progress", err)
	}
	return m, nil
}

func (m *Manager) onProgress(data eventbus.ProgressEventData) {
	m.last.Store(data.SessionID, Status{
		SessionID:     data.SessionID,
		State:         data.State,
		QuestionIndex: data.QuestionIndex,
		Text:          data.Text,
	})
}

// Start begins a new session, discarding any prior session state. A run
// still in flight is signalled to stop; sessions are single-occupant so the
// new run starts immediately with its own fresh state.
func (m *Manager) Start() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil && !m.active.Terminated() {
		m.logger.InfoTag("Interview", "session %s superseded by new start", m.active.ID)
		m.active.Signals.RequestStop()
	}

	session := NewSession()
	m.active = session

	eventbus.Publish(eventbus.EventInterviewStarted, eventbus.ProgressEventData{
		SessionID: session.ID,
		State:     string(session.State),
	})
	m.logger.InfoTag("Interview", "session %s started", session.ID)

	go m.controller.Run(m.runCtx, session)

	return Status{SessionID: session.ID, State: string(StateIdle)}
}

// Skip marks the current question to be skipped and acknowledges immediately.
func (m *Manager) Skip() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil || m.active.Terminated() {
		return "", platformerrors.New(platformerrors.KindDomain, "skip", "no active interview")
	}
	m.active.Signals.RequestSkip()
	return "Question skipped. Moving to the next question...", nil
}

// Stop requests the active run to end and acknowledges immediately. The
// summary arrives on the progress channel once the controller reaches its
// next checkpoint.
func (m *Manager) Stop() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil || m.active.Terminated() {
		return "", platformerrors.New(platformerrors.KindDomain, "stop", "no active interview")
	}
	m.active.Signals.RequestStop()
	return "Interview end requested. Generating summary...", nil
}

// Status reports the latest snapshot of the active session.
func (m *Manager) Status() (Status, bool) {
	m.mu.Lock()
	session := m.active
	m.mu.Unlock()

	if session == nil {
		return Status{}, false
	}
	if value, ok := m.last.Load(session.ID); ok {
		return value.(Status), true
	}
	// No snapshot emitted yet; the run is still spinning up.
	return Status{SessionID: session.ID, State: string(StateIdle)}, true
}

package interview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxterview-server-go/internal/platform/logging"
)

// blockingSpeech parks every Listen call until release is closed. It holds no
// mutable state so concurrent runs can share it.
type blockingSpeech struct {
	release chan struct{}
}

func (b *blockingSpeech) Listen(ctx context.Context, timeout time.Duration) (string, error) {
	select {
	case <-b.release:
		return "", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (b *blockingSpeech) Speak(sessionID, text string) {}

func waitForState(t *testing.T, m *Manager, sessionID string, state State) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		status, ok := m.Status()
		if ok && status.SessionID == sessionID && status.State == string(state) {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("session %s never reached %s (last: %+v)", sessionID, state, status)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestManager_SkipAndStopRequireActiveRun(t *testing.T) {
	speech := &fakeSpeech{}
	c := newTestController(&fakeSource{records: threeQuestions()}, speech, &fixedScorer{})
	m, err := NewManager(context.Background(), c, logging.NewTestLogger())
	require.NoError(t, err)

	_, err = m.Skip()
	assert.Error(t, err)
	_, err = m.Stop()
	assert.Error(t, err)

	status, ok := m.Status()
	assert.False(t, ok)
	assert.Empty(t, status.SessionID)
}

func TestManager_StartRunsToCompletion(t *testing.T) {
	speech := &blockingSpeech{release: make(chan struct{})}
	close(speech.release) // all captures return immediately

	c := newTestController(&fakeSource{records: threeQuestions()}, speech, &fixedScorer{score: 4.0})
	m, err := NewManager(context.Background(), c, logging.NewTestLogger())
	require.NoError(t, err)

	status := m.Start()
	require.NotEmpty(t, status.SessionID)

	waitForState(t, m, status.SessionID, StateTerminated)

	// A terminated run no longer accepts triggers.
	_, err = m.Skip()
	assert.Error(t, err)
	_, err = m.Stop()
	assert.Error(t, err)
}

func TestManager_StartSupersedesActiveRun(t *testing.T) {
	speech := &blockingSpeech{release: make(chan struct{})}
	c := newTestController(&fakeSource{records: threeQuestions()}, speech, &fixedScorer{})
	m, err := NewManager(context.Background(), c, logging.NewTestLogger())
	require.NoError(t, err)

	first := m.Start()
	waitForState(t, m, first.SessionID, StateAskingRole)

	second := m.Start()
	require.NotEqual(t, first.SessionID, second.SessionID)

	// The manager now tracks the new session exclusively.
	status, ok := m.Status()
	require.True(t, ok)
	assert.Equal(t, second.SessionID, status.SessionID)

	close(speech.release)
	waitForState(t, m, second.SessionID, StateTerminated)
}

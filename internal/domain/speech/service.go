package speech

import (
	"context"
	"sync"
	"time"

	"voxterview-server-go/internal/domain/eventbus"
	"voxterview-server-go/internal/domain/speech/inter"
	"voxterview-server-go/internal/platform/logging"
)

const speakQueueSize = 32

type speakRequest struct {
	sessionID string
	text      string
}

// Service is the speech capability handed to the session controller. Listen
// blocks for at most the given bound; Speak enqueues and returns immediately,
// with playback serialized on a single queue for audio-device exclusivity.
// Speaker failures are logged and swallowed, never surfaced to the caller.
type Service struct {
	listener inter.Listener
	speaker  inter.Speaker
	logger   *logging.Logger

	queue    chan speakRequest
	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewService wires a listener and a speaker into a speech service and starts
// the playback worker.
func NewService(listener inter.Listener, speaker inter.Speaker, logger *logging.Logger) *Service {
	s := &Service{
		listener: listener,
		speaker:  speaker,
		logger:   logger,
		queue:    make(chan speakRequest, speakQueueSize),
		stopCh:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.playbackWorker()
	return s
}

// Listen blocks for at most timeout and returns the transcript, possibly
// empty. An empty transcript is a normal outcome, not an error.
func (s *Service) Listen(ctx context.Context, timeout time.Duration) (string, error) {
	if s.listener == nil {
		return "", nil
	}
	return s.listener.Listen(ctx, timeout)
}

// Speak enqueues text for synthesis and playback and returns immediately.
func (s *Service) Speak(sessionID, text string) {
	if s.speaker == nil || text == "" {
		return
	}
	select {
	case s.queue <- speakRequest{sessionID: sessionID, text: text}:
	default:
		s.logger.WarnTag("TTS", "speak queue full, dropping: %.60s", text)
	}
}

func (s *Service) playbackWorker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.stopCh:
			return
		case req := <-s.queue:
			filePath, err := s.speaker.Speak(context.Background(), req.text)
			if err != nil {
				s.logger.WarnTag("TTS", "speak failed: %v", err)
				eventbus.Publish(eventbus.EventSpeechError, eventbus.SpeechEventData{
					SessionID: req.sessionID,
					Text:      req.text,
				})
				continue
			}
			eventbus.Publish(eventbus.EventSpeechSpoken, eventbus.SpeechEventData{
				SessionID: req.sessionID,
				Text:      req.text,
				FilePath:  filePath,
			})
		}
	}
}

// Close stops the playback worker and releases provider resources.
func (s *Service) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()

	var firstErr error
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			firstErr = err
		}
	}
	if s.speaker != nil {
		if err := s.speaker.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

package whisper

import (
	"bytes"
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"voxterview-server-go/internal/domain/speech/inter"
	"voxterview-server-go/internal/platform/logging"
)

// Listener transcribes captured audio with the Whisper transcription API.
type Listener struct {
	client   *openai.Client
	capture  inter.CaptureSource
	logger   *logging.Logger
	model    string
	language string
}

// Listen records one utterance from the capture source and transcribes it.
// Exceeding the bound, silence and transcription faults all yield an empty
// transcript: misrecognition must never abort a session.
func (l *Listener) Listen(ctx context.Context, timeout time.Duration) (string, error) {
	listenCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	audio, err := l.capture.Capture(listenCtx, timeout)
	if err != nil {
		l.logger.WarnTag("ASR", "capture failed: %v", err)
		return "", nil
	}
	if len(audio) == 0 {
		return "", nil
	}

	resp, err := l.client.CreateTranscription(listenCtx, openai.AudioRequest{
		Model:       l.model,
		FilePath:    "capture.wav",
		Reader:      bytes.NewReader(audio),
		Language:    l.language,
		Temperature: 0.0,
	})
	if err != nil {
		l.logger.WarnTag("ASR", "transcription failed: %v", err)
		return "", nil
	}

	text := strings.ToLower(strings.TrimSpace(resp.Text))
	l.logger.DebugTag("ASR", "transcript: %q", text)
	return text, nil
}

// Close releases listener resources.
func (l *Listener) Close() error {
	return nil
}

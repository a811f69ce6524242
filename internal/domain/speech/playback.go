package speech

import (
	"context"
	"time"

	"voxterview-server-go/internal/platform/logging"
)

// LogPlaybackSink stands in for the audio output device: it logs the file
// and sleeps for the decoded duration so playback stays serialized the way a
// real device would force it to be.
type LogPlaybackSink struct {
	Logger *logging.Logger
}

func (s LogPlaybackSink) Play(ctx context.Context, filePath string, duration time.Duration) error {
	s.Logger.InfoTag("TTS", "playing %s (%.1fs)", filePath, duration.Seconds())
	if duration <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(duration):
		return nil
	}
}

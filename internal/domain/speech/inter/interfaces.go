package inter

import (
	"context"
	"time"

	"voxterview-server-go/internal/platform/config"
	"voxterview-server-go/internal/platform/logging"
)

// Listener converts spoken audio to text within a bounded window.
// A timeout or silence yields an empty transcript, never an error.
type Listener interface {
	Listen(ctx context.Context, timeout time.Duration) (string, error)
	Close() error
}

// Speaker converts text to spoken audio.
type Speaker interface {
	Speak(ctx context.Context, text string) (string, error)
	Close() error
}

// CaptureSource supplies raw audio bytes for one listen window. The audio
// capture pipeline lives outside this process; implementations wrap whatever
// device or stream feeds it.
type CaptureSource interface {
	Capture(ctx context.Context, maxDuration time.Duration) ([]byte, error)
}

// PlaybackSink receives synthesized audio files for playback.
type PlaybackSink interface {
	Play(ctx context.Context, filePath string, duration time.Duration) error
}

// ListenerFactory builds a Listener from configuration.
type ListenerFactory interface {
	ProviderName() string
	CreateListener(cfg config.ASRConfig, capture CaptureSource, logger *logging.Logger) (Listener, error)
}

// SpeakerFactory builds a Speaker from configuration.
type SpeakerFactory interface {
	ProviderName() string
	CreateSpeaker(cfg config.TTSConfig, sink PlaybackSink, logger *logging.Logger) (Speaker, error)
}

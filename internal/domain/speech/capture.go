package speech

import (
	"context"
	"os"
	"time"
)

// NullCaptureSource is the placeholder capture pipeline: it produces no
// audio, so every listen yields an empty transcript. Deployments wire a real
// device-backed source instead.
type NullCaptureSource struct{}

func (NullCaptureSource) Capture(ctx context.Context, maxDuration time.Duration) ([]byte, error) {
	select {
	case <-ctx.Done():
	case <-time.After(maxDuration):
	}
	return nil, nil
}

// FileCaptureSource replays a recorded audio file, useful for scripted runs
// and integration tests.
type FileCaptureSource struct {
	Path string
}

func (f FileCaptureSource) Capture(ctx context.Context, maxDuration time.Duration) ([]byte, error) {
	return os.ReadFile(f.Path)
}

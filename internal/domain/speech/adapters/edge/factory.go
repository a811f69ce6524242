package edge

import (
	"fmt"
	"os"

	"voxterview-server-go/internal/domain/speech/inter"
	"voxterview-server-go/internal/platform/config"
	"voxterview-server-go/internal/platform/logging"
)

// Factory builds Edge TTS speakers. Registered under "edge".
type Factory struct {
	providerName string
}

// NewFactory creates the Edge TTS speaker factory.
func NewFactory() *Factory {
	return &Factory{providerName: "edge"}
}

// ProviderName returns the registry key for this factory.
func (f *Factory) ProviderName() string {
	return f.providerName
}

// CreateSpeaker validates the configuration and builds a speaker.
func (f *Factory) CreateSpeaker(cfg config.TTSConfig, sink inter.PlaybackSink, logger *logging.Logger) (inter.Speaker, error) {
	if cfg.Voice == "" {
		return nil, fmt.Errorf("edge speaker requires a voice")
	}
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = os.TempDir()
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tts output dir: %w", err)
	}

	return &Speaker{
		voice:     cfg.Voice,
		outputDir: outputDir,
		sink:      sink,
		logger:    logger,
	}, nil
}

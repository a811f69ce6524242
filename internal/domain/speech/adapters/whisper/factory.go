package whisper

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"voxterview-server-go/internal/domain/speech/inter"
	"voxterview-server-go/internal/platform/config"
	"voxterview-server-go/internal/platform/logging"
)

// Factory builds Whisper-backed listeners. Registered under "openai".
type Factory struct {
	providerName string
}

// NewFactory creates the Whisper listener factory.
func NewFactory() *Factory {
	return &Factory{providerName: "openai"}
}

// ProviderName returns the registry key for this factory.
func (f *Factory) ProviderName() string {
	return f.providerName
}

// CreateListener validates the configuration and builds a listener.
func (f *Factory) CreateListener(cfg config.ASRConfig, capture inter.CaptureSource, logger *logging.Logger) (inter.Listener, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("whisper listener requires an api key")
	}
	if capture == nil {
		return nil, fmt.Errorf("whisper listener requires a capture source")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &Listener{
		client:   openai.NewClientWithConfig(clientConfig),
		capture:  capture,
		logger:   logger,
		model:    model,
		language: cfg.Language,
	}, nil
}

package speech

import (
	"fmt"

	"voxterview-server-go/internal/domain/speech/adapters/edge"
	"voxterview-server-go/internal/domain/speech/adapters/whisper"
	"voxterview-server-go/internal/domain/speech/inter"
	"voxterview-server-go/internal/platform/config"
	"voxterview-server-go/internal/platform/logging"
)

// Registry holds the registered listener and speaker provider factories.
type Registry struct {
	listeners map[string]inter.ListenerFactory
	speakers  map[string]inter.SpeakerFactory
}

// NewRegistry creates a registry pre-populated with the built-in providers.
func NewRegistry() *Registry {
	r := &Registry{
		listeners: make(map[string]inter.ListenerFactory),
		speakers:  make(map[string]inter.SpeakerFactory),
	}
	r.registerBuiltinProviders()
	return r
}

func (r *Registry) registerBuiltinProviders() {
	whisperFactory := whisper.NewFactory()
	r.listeners[whisperFactory.ProviderName()] = whisperFactory

	edgeFactory := edge.NewFactory()
	r.speakers[edgeFactory.ProviderName()] = edgeFactory
}

// RegisterListenerFactory adds a listener provider factory.
func (r *Registry) RegisterListenerFactory(factory inter.ListenerFactory) error {
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	name := factory.ProviderName()
	if _, exists := r.listeners[name]; exists {
		return fmt.Errorf("listener factory %q already registered", name)
	}
	r.listeners[name] = factory
	return nil
}

// RegisterSpeakerFactory adds a speaker provider factory.
func (r *Registry) RegisterSpeakerFactory(factory inter.SpeakerFactory) error {
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	name := factory.ProviderName()
	if _, exists := r.speakers[name]; exists {
		return fmt.Errorf("speaker factory %q already registered", name)
	}
	r.speakers[name] = factory
	return nil
}

// CreateListener builds a listener via the named factory.
func (r *Registry) CreateListener(name string, cfg config.ASRConfig, capture inter.CaptureSource, logger *logging.Logger) (inter.Listener, error) {
	factory, exists := r.listeners[name]
	if !exists {
		return nil, fmt.Errorf("listener factory %q not found", name)
	}
	return factory.CreateListener(cfg, capture, logger)
}

// CreateSpeaker builds a speaker via the named factory.
func (r *Registry) CreateSpeaker(name string, cfg config.TTSConfig, sink inter.PlaybackSink, logger *logging.Logger) (inter.Speaker, error) {
	factory, exists := r.speakers[name]
	if !exists {
		return nil, fmt.Errorf("speaker factory %q not found", name)
	}
	return factory.CreateSpeaker(cfg, sink, logger)
}

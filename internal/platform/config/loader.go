package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	platformerrors "voxterview-server-go/internal/platform/errors"
)

// DefaultConfigPaths lists the file locations probed by the loader, in order.
var DefaultConfigPaths = []string{".config.yaml", "config.yaml", "data/config.yaml"}

// Loader reads configuration from a yaml file layered over the defaults.
type Loader struct {
	useDotEnv bool
	paths     []string
}

// NewLoader creates a loader using the default search paths.
func NewLoader() *Loader {
	return &Loader{
		useDotEnv: true,
		paths:     DefaultConfigPaths,
	}
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// WithPaths overrides the config file search paths (useful for tests).
func (l *Loader) WithPaths(paths ...string) *Loader {
	if len(paths) > 0 {
		l.paths = paths
	}
	return l
}

// Result captures the loaded configuration and its origin path.
type Result struct {
	Config *Config
	Path   string
}

// Load builds the effective configuration: defaults, then yaml file, then env.
func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		if err := godotenv.Load(); err != nil {
			fmt.Println("no .env file found, using system environment")
		}
	}

	cfg := DefaultConfig()

	var path string
	for _, candidate := range l.paths {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, platformerrors.Wrap(platformerrors.KindConfig, "load",
				fmt.Sprintf("parse %s", candidate), err)
		}
		path = candidate
		break
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Path: path}, nil
}

// applyEnv fills credentials from the environment when not set in the file.
func applyEnv(cfg *Config) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if cfg.Speech.ASR.APIKey == "" {
			cfg.Speech.ASR.APIKey = key
		}
		if cfg.Scoring.EmbeddingAPIKey == "" {
			cfg.Scoring.EmbeddingAPIKey = key
		}
	}
	if url := os.Getenv("OPENAI_BASE_URL"); url != "" {
		if cfg.Speech.ASR.BaseURL == "" {
			cfg.Speech.ASR.BaseURL = url
		}
		if cfg.Scoring.EmbeddingBaseURL == "" {
			cfg.Scoring.EmbeddingBaseURL = url
		}
	}
}

// Validate rejects configurations the server cannot run with.
func Validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			fmt.Sprintf("invalid server port: %d", cfg.Server.Port))
	}
	if cfg.Store.QuestionsPerSession <= 0 {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			fmt.Sprintf("questions_per_session must be positive, got %d", cfg.Store.QuestionsPerSession))
	}
	if cfg.Speech.RoleTimeout <= 0 || cfg.Speech.DifficultyTimeout <= 0 || cfg.Speech.AnswerTimeout <= 0 {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			"speech listen timeouts must be positive")
	}
	if cfg.Scoring.StrictFloor < 0 || cfg.Scoring.StrictFloor > 10 {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			fmt.Sprintf("strict_floor must be within [0,10], got %f", cfg.Scoring.StrictFloor))
	}
	if cfg.Scoring.SemanticExponent <= 0 {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			fmt.Sprintf("semantic_exponent must be positive, got %f", cfg.Scoring.SemanticExponent))
	}
	return nil
}

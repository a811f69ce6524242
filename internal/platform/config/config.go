package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes from yaml strings accepted by time.ParseDuration ("12s")
// as well as plain integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err == nil {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var nanos int64
	if err := node.Decode(&nanos); err != nil {
		return err
	}
	*d = Duration(nanos)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
	Speech    SpeechConfig    `yaml:"speech"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Transport TransportConfig `yaml:"transport"`
}

type ServerConfig struct {
	IP   string `yaml:"ip"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"log_level"`
	Dir   string `yaml:"log_dir"`
	File  string `yaml:"log_file"`
}

type StoreConfig struct {
	Path                string `yaml:"path"`
	QuestionsPerSession int    `yaml:"questions_per_session"`
}

type SpeechConfig struct {
	RoleTimeout       Duration  `yaml:"role_timeout"`
	DifficultyTimeout Duration  `yaml:"difficulty_timeout"`
	AnswerTimeout     Duration  `yaml:"answer_timeout"`
	ASR               ASRConfig `yaml:"asr"`
	TTS               TTSConfig `yaml:"tts"`
}

type ASRConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"url"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

type TTSConfig struct {
	Provider  string  `yaml:"provider"`
	Voice     string  `yaml:"voice"`
	Rate      string  `yaml:"rate"`
	Volume    string  `yaml:"volume"`
	OutputDir string  `yaml:"output_dir"`
	Speed     float32 `yaml:"speed"`
}

type ScoringConfig struct {
	EmbeddingModel   string  `yaml:"embedding_model"`
	EmbeddingAPIKey  string  `yaml:"embedding_api_key"`
	EmbeddingBaseURL string  `yaml:"embedding_url"`
	SemanticExponent float64 `yaml:"semantic_exponent"`
	SemanticScale    float64 `yaml:"semantic_scale"`
	StrictFloor      float64 `yaml:"strict_floor"`
	FuzzyEnabled     bool    `yaml:"fuzzy_enabled"`
	DelegatedEnabled bool    `yaml:"delegated_enabled"`
}

type TransportConfig struct {
	WebsocketPath    string   `yaml:"websocket_path"`
	HandshakeTimeout Duration `yaml:"handshake_timeout"`
}

package config

import "time"

// DefaultConfig returns the built-in configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			IP:   "0.0.0.0",
			Port: 8000,
		},
		Log: LogConfig{
			Level: "INFO",
			Dir:   "data/logs",
			File:  "server.log",
		},
		Store: StoreConfig{
			Path:                "data/questions.jsonl",
			QuestionsPerSession: 5,
		},
		Speech: SpeechConfig{
			// Per-step listen bounds. Answers get the longest window.
			RoleTimeout:       Duration(12 * time.Second),
			DifficultyTimeout: Duration(8 * time.Second),
			AnswerTimeout:     Duration(20 * time.Second),
			ASR: ASRConfig{
				Provider: "openai",
				Model:    "whisper-1",
				Language: "en",
			},
			TTS: TTSConfig{
				Provider:  "edge",
				Voice:     "en-US-AriaNeural",
				Rate:      "+0%",
				Volume:    "+0%",
				OutputDir: "data/tts",
				Speed:     1.0,
			},
		},
		Scoring: ScoringConfig{
			EmbeddingModel:   "text-embedding-3-small",
			SemanticExponent: 1.1,
			SemanticScale:    11.0,
			StrictFloor:      6.0,
			FuzzyEnabled:     true,
		},
		Transport: TransportConfig{
			WebsocketPath:    "/ws",
			HandshakeTimeout: Duration(10 * time.Second),
		},
	}
}

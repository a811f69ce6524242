package eventbus

// Event topics.
const (
	// Interview lifecycle events
	EventInterviewProgress = "interview:progress"
	EventInterviewStarted  = "interview:started"
	EventInterviewFinished = "interview:finished"

	// Speech events
	EventSpeechSpoken = "speech:spoken"
	EventSpeechError  = "speech:error"

	// System events
	EventSystemError = "system:error"
	EventSystemInfo  = "system:info"
)

// ProgressEventData is the snapshot payload published on every controller step.
type ProgressEventData struct {
	SessionID     string `json:"session_id"`
	State         string `json:"state"`
	QuestionIndex int    `json:"question_index"`
	Text          string `json:"text"`
	Final         bool   `json:"final"`
}

// SpeechEventData reports a completed or failed synthesis.
type SpeechEventData struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	FilePath  string `json:"file_path,omitempty"`
}

// SystemEventData carries system-level notifications.
type SystemEventData struct {
	Level   string      `json:"level"` // error, warn, info
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

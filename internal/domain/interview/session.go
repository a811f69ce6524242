package interview

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"voxterview-server-go/internal/domain/question"
)

// State names the controller's position in the step sequence.
type State string

const (
	StateIdle             State = "idle"
	StateAskingRole       State = "asking_role"
	StateAskingDifficulty State = "asking_difficulty"
	StateRunning          State = "running"
	StateSummarizing      State = "summarizing"
	StateTerminated       State = "terminated"
)

// Answer placeholders recorded instead of a transcript.
const (
	AnswerUnknown = "unknown"
	AnswerSkipped = "skipped"
)

// SessionQuestion is the working copy of one question bound to a session.
// The store record it derives from is never mutated.
type SessionQuestion struct {
	Question        string  `json:"question"`
	ReferenceAnswer string  `json:"reference_answer"`
	UserAnswer      string  `json:"user_answer"`
	Score           float64 `json:"score"`
}

// Session is one full run from role elicitation through summary. It owns its
// question list and control flags exclusively; nothing is shared between
// sessions and nothing survives a restart.
type Session struct {
	ID           string
	Role         string
	Difficulty   string
	Questions    []SessionQuestion
	CurrentIndex int
	State        State
	Signals      Signals

	done atomic.Bool
}

// MarkTerminated flips the session into its absorbing terminal state. Safe
// to read from other goroutines via Terminated.
func (s *Session) MarkTerminated() {
	s.done.Store(true)
}

// Terminated reports whether the run has reached its terminal state.
func (s *Session) Terminated() bool {
	return s.done.Load()
}

// NewSession creates a fresh idle session.
func NewSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		State: StateIdle,
	}
}

// BindQuestions copies the drawn records into session-owned working copies.
func (s *Session) BindQuestions(records []question.Record) {
	s.Questions = make([]SessionQuestion, 0, len(records))
	for _, record := range records {
		s.Questions = append(s.Questions, SessionQuestion{
			Question:        record.Question,
			ReferenceAnswer: record.Answer,
		})
	}
}

// AverageScore is the arithmetic mean over exactly the questions present in
// the (possibly truncated) list. An empty list yields 0.
func (s *Session) AverageScore() float64 {
	if len(s.Questions) == 0 {
		return 0.0
	}
	total := 0.0
	for _, q := range s.Questions {
		total += q.Score
	}
	return total / float64(len(s.Questions))
}

// Summary renders the end-of-run report: header, then one block per question.
func (s *Session) Summary() string {
	var b strings.Builder
	b.WriteString("## Interview Summary\n\n")
	fmt.Fprintf(&b, "- Role: **%s**\n", s.Role)
	fmt.Fprintf(&b, "- Difficulty: **%s**\n", s.Difficulty)
	fmt.Fprintf(&b, "- Questions: **%d**\n", len(s.Questions))
	fmt.Fprintf(&b, "- Average Score: **%.1f/10**\n\n---\n\n", s.AverageScore())

	for i, q := range s.Questions {
		answer := q.UserAnswer
		if answer == "" {
			answer = AnswerUnknown
		}
		fmt.Fprintf(&b, "### Q%d: %s\n\n", i+1, q.Question)
		fmt.Fprintf(&b, "**Your Answer:**  \n%s\n\n", answer)
		fmt.Fprintf(&b, "**Correct Answer:**  \n%s\n\n", q.ReferenceAnswer)
		fmt.Fprintf(&b, "**Score:** %.1f/10\n\n---\n\n", q.Score)
	}
	return b.String()
}

package interview

import (
	"context"
	"fmt"
	"time"

	"voxterview-server-go/internal/domain/eventbus"
	"voxterview-server-go/internal/domain/question"
	"voxterview-server-go/internal/platform/logging"
)

// SpeechIO is the speech capability the controller blocks on. Listen is
// bounded and returns an empty transcript on timeout; Speak is fire-and-forget
// and never fails the caller.
type SpeechIO interface {
	Listen(ctx context.Context, timeout time.Duration) (string, error)
	Speak(sessionID, text string)
}

// QuestionSource supplies the per-session question draw.
type QuestionSource interface {
	Sample(role, difficulty string, limit int) ([]question.Record, error)
	SampleAll(role, difficulty string) ([]question.Record, error)
}

// AnswerScorer grades a candidate against a reference on [0,10]. It is a
// total function; scoring backends degrade internally.
type AnswerScorer interface {
	Evaluate(ctx context.Context, reference, candidate string) float64
}

// Timeouts are the per-step listen bounds.
type Timeouts struct {
	Role       time.Duration
	Difficulty time.Duration
	Answer     time.Duration
}

// Controller drives one session at a time through the interview state
// machine. It owns no session state itself and can be reused across runs.
type Controller struct {
	store       QuestionSource
	speech      SpeechIO
	scorer      AnswerScorer
	logger      *logging.Logger
	timeouts    Timeouts
	sessionSize int
}

// NewController wires the controller's collaborators.
func NewController(store QuestionSource, speech SpeechIO, scorer AnswerScorer, timeouts Timeouts, sessionSize int, logger *logging.Logger) *Controller {
	return &Controller{
		store:       store,
		speech:      speech,
		scorer:      scorer,
		logger:      logger,
		timeouts:    timeouts,
		sessionSize: sessionSize,
	}
}

// emit publishes a progress snapshot. Emission always happens before the
// matching synthesis call so the external display updates immediately.
func (c *Controller) emit(s *Session, text string, final bool) {
	eventbus.Publish(eventbus.EventInterviewProgress, eventbus.ProgressEventData{
		SessionID:     s.ID,
		State:         string(s.State),
		QuestionIndex: s.CurrentIndex,
		Text:          text,
		Final:         final,
	})
}

// Run executes the whole state machine for one session. It is the only
// goroutine that mutates the session; the skip/stop flags are consulted at
// the checkpoints and nowhere else.
func (c *Controller) Run(ctx context.Context, s *Session) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.ErrorTag("Interview", "session %s run failed: %v", s.ID, r)
			s.State = StateTerminated
			s.MarkTerminated()
			c.emit(s, "An unexpected error occurred. The interview has ended.", true)
			c.speech.Speak(s.ID, "An error occurred during the interview. Please check the application logs.")
		}
	}()

	c.elicitRole(ctx, s)
	c.elicitDifficulty(ctx, s)

	if !c.drawQuestions(s) {
		return
	}

	s.State = StateRunning
	for idx := range s.Questions {
		s.CurrentIndex = idx

		// Entry checkpoint: stop wins before any work on question idx.
		if s.Signals.Stopped() {
			c.finish(s, idx)
			return
		}
		if s.Signals.TakeSkip() {
			c.markSkipped(s, idx)
			continue
		}

		qtext := s.Questions[idx].Question
		c.emit(s, fmt.Sprintf("Q%d: %s\n\nListening for your answer…", idx+1, qtext), false)
		c.speech.Speak(s.ID, fmt.Sprintf("Question %d. %s", idx+1, qtext))

		answer, err := c.speech.Listen(ctx, c.timeouts.Answer)
		if err != nil {
			c.logger.WarnTag("Interview", "listen failed on question %d: %v", idx+1, err)
			answer = ""
		}

		// Post-listen checkpoint: flags may have been set while blocked.
		// Stop is consulted first; a question interrupted by stop was not
		// successfully answered and stays out of the summary.
		if s.Signals.Stopped() {
			c.finish(s, idx)
			return
		}
		if s.Signals.TakeSkip() {
			c.markSkipped(s, idx)
			continue
		}

		if answer == "" {
			answer = AnswerUnknown
		}
		s.Questions[idx].UserAnswer = answer
		s.Questions[idx].Score = c.scorer.Evaluate(ctx, s.Questions[idx].ReferenceAnswer, answer)

		c.logger.InfoTag("Interview", "Q%d scored %.1f", idx+1, s.Questions[idx].Score)
		c.emit(s, fmt.Sprintf("Q%d: %s\n\nYour Answer: %s\n\nScore: %.1f/10",
			idx+1, qtext, answer, s.Questions[idx].Score), false)
		c.speech.Speak(s.ID, fmt.Sprintf("Saved answer. Score: %.1f out of 10", s.Questions[idx].Score))
	}

	c.finish(s, len(s.Questions))
}

// elicitRole runs the AskingRole step.
func (c *Controller) elicitRole(ctx context.Context, s *Session) {
	s.State = StateAskingRole
	c.emit(s, "Listening for role…", false)
	c.speech.Speak(s.ID, "Which role would you like? For example: Python developer or Data Scientist.")

	spoken, err := c.speech.Listen(ctx, c.timeouts.Role)
	if err != nil {
		c.logger.WarnTag("Interview", "role listen failed: %v", err)
		spoken = ""
	}
	c.logger.DebugTag("Interview", "raw role transcript: %q", spoken)

	if spoken == "" {
		c.speech.Speak(s.ID, fmt.Sprintf("I couldn't hear a role. Defaulting to %s.", DefaultRole))
	}
	s.Role = NormalizeRole(spoken)
	c.logger.InfoTag("Interview", "role normalized to %s", s.Role)

	c.emit(s, fmt.Sprintf("Role selected: **%s**", s.Role), false)
	c.speech.Speak(s.ID, fmt.Sprintf("You selected %s. Now say easy, medium or hard for difficulty.", s.Role))
}

// elicitDifficulty runs the AskingDifficulty step.
func (c *Controller) elicitDifficulty(ctx context.Context, s *Session) {
	s.State = StateAskingDifficulty
	c.emit(s, "Listening for difficulty…", false)

	spoken, err := c.speech.Listen(ctx, c.timeouts.Difficulty)
	if err != nil {
		c.logger.WarnTag("Interview", "difficulty listen failed: %v", err)
		spoken = ""
	}
	c.logger.DebugTag("Interview", "raw difficulty transcript: %q", spoken)

	if spoken == "" {
		c.speech.Speak(s.ID, fmt.Sprintf("I couldn't hear a difficulty. Defaulting to %s.", DefaultDifficulty))
	}
	s.Difficulty = NormalizeDifficulty(spoken)
	c.logger.InfoTag("Interview", "difficulty normalized to %s", s.Difficulty)

	c.emit(s, fmt.Sprintf("Difficulty: **%s** — Starting interview…", s.Difficulty), false)
	c.speech.Speak(s.ID, fmt.Sprintf("Difficulty set to %s. I will now ask %d questions.", s.Difficulty, c.sessionSize))
}

// drawQuestions fills the session question list. Zero matches is a normal
// terminal outcome, not an error. A failing full retrieval falls back once to
// the reduced-argument retrieval.
func (c *Controller) drawQuestions(s *Session) bool {
	records, err := c.store.Sample(s.Role, s.Difficulty, c.sessionSize)
	if err != nil {
		c.logger.WarnTag("Interview", "question retrieval failed: %v", err)
		records, err = c.store.SampleAll(s.Role, s.Difficulty)
		if err != nil {
			c.logger.ErrorTag("Interview", "fallback retrieval failed: %v", err)
			records = nil
		}
	}

	if len(records) == 0 {
		s.State = StateTerminated
		s.MarkTerminated()
		c.speech.Speak(s.ID, "I couldn't find questions for that role and difficulty. Please try another role or difficulty.")
		c.emit(s, "No questions found for your selection. Please restart and try a different role or difficulty.", true)
		return false
	}

	s.BindQuestions(records)
	return true
}

// markSkipped applies the skip path to question idx: no speech interaction,
// score zero, skipped marker.
func (c *Controller) markSkipped(s *Session, idx int) {
	s.Questions[idx].UserAnswer = AnswerSkipped
	s.Questions[idx].Score = 0.0
	c.speech.Speak(s.ID, fmt.Sprintf("Question %d skipped.", idx+1))
	c.emit(s, fmt.Sprintf("Q%d: %s\n\nStatus: Skipped. Score: 0/10", idx+1, s.Questions[idx].Question), false)
}

// finish truncates the question list to the delivered prefix, emits the
// summary as the final snapshot and terminates the session.
func (c *Controller) finish(s *Session, delivered int) {
	if delivered < len(s.Questions) {
		s.Questions = s.Questions[:delivered]
	}

	s.State = StateSummarizing
	summary := s.Summary()

	s.State = StateTerminated
	s.MarkTerminated()
	c.emit(s, summary, true)
	c.speech.Speak(s.ID, "The interview is complete. I will read out your average score.")
	c.speech.Speak(s.ID, fmt.Sprintf("Your average score is %.1f out of 10.", s.AverageScore()))

	eventbus.Publish(eventbus.EventInterviewFinished, eventbus.ProgressEventData{
		SessionID: s.ID,
		State:     string(s.State),
		Text:      summary,
		Final:     true,
	})
}

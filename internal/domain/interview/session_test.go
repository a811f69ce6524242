package interview

import (
	"strings"
	"testing"

	"voxterview-server-go/internal/domain/question"
)

func TestSession_BindQuestions(t *testing.T) {
	s := NewSession()
	records := []question.Record{
		{Role: "backend developer", Difficulty: "easy", Question: "q1", Answer: "a1"},
		{Role: "backend developer", Difficulty: "easy", Question: "q2", Answer: "a2"},
	}
	s.BindQuestions(records)

	if len(s.Questions) != 2 {
		t.Fatalf("expected 2 bound questions, got %d", len(s.Questions))
	}
	if s.Questions[0].Question != "q1" || s.Questions[0].ReferenceAnswer != "a1" {
		t.Errorf("first question not bound correctly: %+v", s.Questions[0])
	}
	if s.Questions[0].UserAnswer != "" || s.Questions[0].Score != 0.0 {
		t.Errorf("bound question should start unanswered: %+v", s.Questions[0])
	}

	// Mutating the working copy must not touch the source record.
	s.Questions[0].UserAnswer = "something"
	if records[0].Answer != "a1" {
		t.Error("store record mutated through the session copy")
	}
}

func TestSession_AverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{name: "empty list", scores: nil, want: 0.0},
		{name: "single question", scores: []float64{7.5}, want: 7.5},
		{name: "mean over all present", scores: []float64{10.0, 0.0, 5.0}, want: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			for _, score := range tt.scores {
				s.Questions = append(s.Questions, SessionQuestion{Score: score})
			}
			if got := s.AverageScore(); got != tt.want {
				t.Errorf("AverageScore() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSession_Summary(t *testing.T) {
	s := NewSession()
	s.Role = "backend developer"
	s.Difficulty = "easy"
	s.Questions = []SessionQuestion{
		{Question: "What is a REST API?", ReferenceAnswer: "An interface over HTTP", UserAnswer: "an http interface", Score: 8.0},
		{Question: "Explain caching", ReferenceAnswer: "Storing results for reuse", UserAnswer: "", Score: 0.0},
	}

	summary := s.Summary()

	for _, fragment := range []string{
		"## Interview Summary",
		"- Role: **backend developer**",
		"- Difficulty: **easy**",
		"- Questions: **2**",
		"- Average Score: **4.0/10**",
		"### Q1: What is a REST API?",
		"### Q2: Explain caching",
		"**Score:** 8.0/10",
	} {
		if !strings.Contains(summary, fragment) {
			t.Errorf("summary missing %q\n%s", fragment, summary)
		}
	}

	// An unanswered question renders the unknown placeholder.
	if !strings.Contains(summary, AnswerUnknown) {
		t.Errorf("summary should show %q for an empty answer", AnswerUnknown)
	}
}

func TestSession_TerminatedFlag(t *testing.T) {
	s := NewSession()
	if s.Terminated() {
		t.Error("fresh session should not be terminated")
	}
	s.MarkTerminated()
	if !s.Terminated() {
		t.Error("MarkTerminated must be observable")
	}
}

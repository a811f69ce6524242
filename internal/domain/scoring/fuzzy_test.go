package scoring

import (
	"context"
	"testing"
)

func TestFuzzyScorer_DisabledNotApplicable(t *testing.T) {
	scorer := NewFuzzyScorer(false)
	_, err := scorer.Score(context.Background(), "ref", "cand")
	if err != ErrNotApplicable {
		t.Errorf("expected ErrNotApplicable, got %v", err)
	}
}

func TestFuzzyScorer_Score(t *testing.T) {
	scorer := NewFuzzyScorer(true)

	t.Run("identical text scores ten", func(t *testing.T) {
		got, err := scorer.Score(context.Background(), "load balancer", "load balancer")
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if got != 10.0 {
			t.Errorf("Score() = %.1f, want 10.0", got)
		}
	})

	t.Run("token order does not matter", func(t *testing.T) {
		got, err := scorer.Score(context.Background(),
			"servers balance the load", "the load balance servers")
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if got != 10.0 {
			t.Errorf("Score() = %.1f, want 10.0", got)
		}
	})

	t.Run("unrelated text scores low", func(t *testing.T) {
		got, err := scorer.Score(context.Background(),
			"garbage collection reclaims unreachable memory", "the weather is sunny today")
		if err != nil {
			t.Fatalf("Score() error = %v", err)
		}
		if got > 5.0 {
			t.Errorf("Score() = %.1f, want a low score", got)
		}
	})
}

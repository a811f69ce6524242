package scoring

import (
	"context"
	"testing"
)

func TestStrictScorer_Score(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		candidate string
		want      float64
	}{
		{
			name:      "empty candidate",
			reference: "a structured reference answer",
			candidate: "",
			want:      0.0,
		},
		{
			name:      "empty reference",
			reference: "",
			candidate: "anything at all",
			want:      0.0,
		},
		{
			name:      "exact match after normalization",
			reference: "  A Load Balancer distributes traffic  ",
			candidate: "a load balancer distributes traffic",
			want:      10.0,
		},
		{
			name:      "high overlap above the floor",
			reference: "a load balancer distributes incoming requests across multiple servers",
			candidate: "a load balancer distributes requests across many servers",
			want:      7.5,
		},
		{
			name:      "partial overlap below the floor zeroes out",
			reference: "indexes speed lookups while slowing writes because every insert updates them",
			candidate: "indexes make reads faster",
			want:      0.0,
		},
		{
			name:      "no overlap",
			reference: "garbage collection reclaims unreachable memory automatically",
			candidate: "the sky is blue",
			want:      0.0,
		},
		{
			name:      "short words are ignored",
			reference: "it is an odd fit",
			candidate: "it is",
			want:      0.0,
		},
	}

	scorer := NewStrictScorer(6.0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scorer.Score(context.Background(), tt.reference, tt.candidate)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Score() = %.1f, want %.1f", got, tt.want)
			}
		})
	}
}

func TestStrictScorer_ZeroFloorKeepsPartialCredit(t *testing.T) {
	scorer := NewStrictScorer(0.0)
	got, err := scorer.Score(context.Background(),
		"indexes speed lookups while slowing writes because every insert updates them",
		"indexes make lookups faster")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got <= 0.0 || got >= 6.0 {
		t.Errorf("expected low partial credit, got %.1f", got)
	}
}

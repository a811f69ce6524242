package question

import (
	"context"
	"testing"
)

func TestKeywordEvaluator_Score(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		candidate string
		want      float64
	}{
		{
			name:      "empty candidate",
			reference: "indexes improve lookup performance",
			candidate: "",
			want:      0.0,
		},
		{
			name:      "two points per contained keyword",
			reference: "a loadbalancer distributes traffic across machines evenly",
			candidate: "it distributes traffic across machines",
			want:      8.0,
		},
		{
			name:      "case-insensitive containment",
			reference: "Indexes improve Lookup performance",
			candidate: "INDEXES help with LOOKUP speed",
			want:      4.0,
		},
		{
			name:      "only the first five keywords count",
			reference: "firstword secondword thirdword fourthword fifthword sixthword",
			candidate: "sixthword only",
			want:      0.0,
		},
		{
			name:      "full containment caps at ten",
			reference: "caching layers reduce database pressure dramatically",
			candidate: "caching layers reduce database pressure dramatically and more",
			want:      10.0,
		},
		{
			name:      "short reference words are not keywords",
			reference: "it is a big can of words",
			candidate: "big can of words",
			want:      0.0,
		},
	}

	evaluator := NewKeywordEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.Score(context.Background(), tt.reference, tt.candidate)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Score() = %.1f, want %.1f", got, tt.want)
			}
		})
	}
}

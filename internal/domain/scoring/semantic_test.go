package scoring

import (
	"context"
	"errors"
	"math"
	"testing"
)

// fakeEmbedder returns canned vectors keyed by input text.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[text], nil
}

func TestSemanticScorer_NilEmbedderNotApplicable(t *testing.T) {
	scorer := NewSemanticScorer(nil, 1.1, 11.0)
	_, err := scorer.Score(context.Background(), "ref", "cand")
	if err != ErrNotApplicable {
		t.Errorf("expected ErrNotApplicable, got %v", err)
	}
}

func TestSemanticScorer_Score(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"identical":  {1, 0, 0},
		"same":       {1, 0, 0},
		"orthogonal": {0, 1, 0},
		"opposite":   {-1, 0, 0},
	}}
	scorer := NewSemanticScorer(embedder, 1.1, 11.0)

	tests := []struct {
		name      string
		reference string
		candidate string
		want      float64
	}{
		{
			name:      "identical vectors cap at ten",
			reference: "identical",
			candidate: "same",
			want:      10.0,
		},
		{
			name:      "orthogonal vectors score zero",
			reference: "identical",
			candidate: "orthogonal",
			want:      0.0,
		},
		{
			name:      "negative similarity clamps to zero",
			reference: "identical",
			candidate: "opposite",
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scorer.Score(context.Background(), tt.reference, tt.candidate)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Score() = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestSemanticScorer_SuperlinearCurve(t *testing.T) {
	// cos = 0.8 between these two vectors.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"ref":  {1, 0},
		"cand": {0.8, 0.6},
	}}
	scorer := NewSemanticScorer(embedder, 1.1, 11.0)

	got, err := scorer.Score(context.Background(), "ref", "cand")
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	want := math.Min(10.0, math.Pow(0.8, 1.1)*11.0)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Score() = %f, want %f", got, want)
	}
	if got <= 8.0 || got >= 9.0 {
		t.Errorf("curve should land between 8 and 9 for cos 0.8, got %f", got)
	}
}

func TestSemanticScorer_EmbedderErrorPropagates(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("api unreachable")}
	scorer := NewSemanticScorer(embedder, 1.1, 11.0)

	_, err := scorer.Score(context.Background(), "ref", "cand")
	if err == nil {
		t.Fatal("expected an error from a failing embedder")
	}
	if errors.Is(err, ErrNotApplicable) {
		t.Error("a backend failure is not the same as not applicable")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1.0},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0.0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1.0},
		{name: "mismatched lengths", a: []float32{1, 0}, b: []float32{1}, want: 0.0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0.0},
		{name: "empty", a: nil, b: nil, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}

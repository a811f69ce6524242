package scoring

import (
	"context"
	"math"
	"strings"
)

// StrictScorer is the always-available final tier: overlap of reference words
// longer than three characters, with partial credit below the floor zeroed
// out. It trades recall for precision since it has no semantic awareness.
type StrictScorer struct {
	floor float64
}

// NewStrictScorer builds the strict tier with the given zeroing floor.
func NewStrictScorer(floor float64) *StrictScorer {
	return &StrictScorer{floor: floor}
}

func (s *StrictScorer) Name() string { return "strict" }

func (s *StrictScorer) Score(ctx context.Context, reference, candidate string) (float64, error) {
	ref := strings.ToLower(strings.TrimSpace(reference))
	cand := strings.ToLower(strings.TrimSpace(candidate))
	if ref == "" || cand == "" {
		return 0.0, nil
	}
	if ref == cand {
		return 10.0, nil
	}

	refWords := significantWords(ref)
	if len(refWords) == 0 {
		return 0.0, nil
	}
	candWords := significantWords(cand)

	overlap := 0
	for word := range refWords {
		if _, ok := candWords[word]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return 0.0, nil
	}

	score := Round1(math.Min(10.0, 10.0*float64(overlap)/float64(len(refWords))))
	if score < s.floor {
		return 0.0, nil
	}
	return score, nil
}

// significantWords collects the set of words longer than three characters.
func significantWords(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		if len(word) > 3 {
			words[word] = struct{}{}
		}
	}
	return words
}

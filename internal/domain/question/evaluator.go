package question

import (
	"context"
	"strings"
)

// KeywordEvaluator is the evaluator bound to the question source itself: a
// cheap keyword-containment scorer over the reference answer. It is tried
// before the generic scoring strategies when enabled.
type KeywordEvaluator struct{}

// NewKeywordEvaluator builds the store-delegated evaluator.
func NewKeywordEvaluator() *KeywordEvaluator {
	return &KeywordEvaluator{}
}

func (e *KeywordEvaluator) Name() string { return "record-keywords" }

// Score awards two points per reference keyword (words longer than five
// characters, first five of them) contained in the candidate, clamped to [0,10].
func (e *KeywordEvaluator) Score(ctx context.Context, reference, candidate string) (float64, error) {
	ref := strings.ToLower(reference)
	cand := strings.ToLower(candidate)
	if ref == "" || cand == "" {
		return 0.0, nil
	}

	var keywords []string
	for _, word := range strings.Fields(ref) {
		if len(word) > 5 {
			keywords = append(keywords, word)
		}
		if len(keywords) == 5 {
			break
		}
	}

	score := 0.0
	for _, keyword := range keywords {
		if strings.Contains(cand, keyword) {
			score += 2.0
		}
	}
	if score > 10.0 {
		score = 10.0
	}
	return score, nil
}

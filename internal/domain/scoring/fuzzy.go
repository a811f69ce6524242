package scoring

import (
	"context"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// FuzzyScorer rescales a token-set overlap ratio from [0,100] onto [0,10].
type FuzzyScorer struct {
	enabled bool
}

// NewFuzzyScorer builds the fuzzy tier; disabled makes it not applicable.
func NewFuzzyScorer(enabled bool) *FuzzyScorer {
	return &FuzzyScorer{enabled: enabled}
}

func (s *FuzzyScorer) Name() string { return "fuzzy" }

func (s *FuzzyScorer) Score(ctx context.Context, reference, candidate string) (float64, error) {
	if !s.enabled {
		return 0, ErrNotApplicable
	}
	ratio := fuzzy.TokenSetRatio(reference, candidate)
	return float64(ratio) / 100.0 * 10.0, nil
}

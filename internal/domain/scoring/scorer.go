package scoring

import (
	"context"
	"errors"
	"math"
)

// ErrNotApplicable signals that a scorer cannot produce a result for this
// pair and the cascade should fall through to the next strategy.
var ErrNotApplicable = errors.New("scorer not applicable")

// Scorer grades a candidate answer against a reference answer on [0,10].
type Scorer interface {
	Name() string
	Score(ctx context.Context, reference, candidate string) (float64, error)
}

// Round1 rounds to one decimal place; all published scores go through it.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// wellFormed rejects NaN, infinities and out-of-range results.
func wellFormed(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= 10
}

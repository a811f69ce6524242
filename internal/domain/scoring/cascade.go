package scoring

import (
	"context"
	"strings"

	"voxterview-server-go/internal/platform/logging"
)

// Cascade tries an ordered list of scorers and returns the first usable
// result. Evaluate is a total function: backend failures fall through and the
// final strict tier always answers.
type Cascade struct {
	scorers []Scorer
	logger  *logging.Logger
}

// NewCascade builds a cascade over the given scorers, tried in order.
func NewCascade(logger *logging.Logger, scorers ...Scorer) *Cascade {
	return &Cascade{scorers: scorers, logger: logger}
}

// Evaluate grades candidate against reference, returning a score in [0,10]
// rounded to one decimal place.
func (c *Cascade) Evaluate(ctx context.Context, reference, candidate string) float64 {
	// Empty operands short-circuit every strategy.
	ref := strings.TrimSpace(reference)
	cand := strings.TrimSpace(candidate)
	if ref == "" || cand == "" {
		return 0.0
	}

	// An exact case-insensitive match is full marks under every strategy.
	if strings.EqualFold(ref, cand) {
		return 10.0
	}

	for _, scorer := range c.scorers {
		score, err := scorer.Score(ctx, ref, cand)
		if err != nil {
			if err != ErrNotApplicable && c.logger != nil {
				c.logger.WarnTag("Scoring", "%s scorer failed: %v", scorer.Name(), err)
			}
			continue
		}
		if !wellFormed(score) {
			if c.logger != nil {
				c.logger.WarnTag("Scoring", "%s scorer returned malformed score %f", scorer.Name(), score)
			}
			continue
		}
		if c.logger != nil {
			c.logger.DebugTag("Scoring", "%s scored %.1f", scorer.Name(), score)
		}
		return Round1(score)
	}

	// Unreachable when the strict tier is configured last; kept as a guard.
	return 0.0
}

package scorers

import (
	"fmt"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

var _ ports.ScorerRegistry = Registry{}

// Registry implements ports.ScorerRegistry over the fixed variant set.
type Registry struct{}

// Create constructs the scorer selected by the scoring configuration.
func (Registry) Create(scoring domain.Scoring) (ports.Scorer, error) {
	return FromScoring(scoring)
}

// FromScoring constructs the scorer selected by a measure's scoring
// configuration. Exactly one variant must be set; zero or several is a
// configuration error. The variant set is fixed and small, so dispatch
// is a closed switch rather than an open registry.
func FromScoring(scoring domain.Scoring) (ports.Scorer, error) {
	variant, err := scoring.Variant()
	if err != nil {
		return nil, err
	}

	switch variant {
	case "star":
		return NewStarScorer(*scoring.Star)
	case "bucket":
		return NewBucketScorer(*scoring.Bucket)
	case "relative":
		return NewRelativeScorer(*scoring.Relative)
	case "interpolate":
		return NewInterpolateScorer(*scoring.Interpolate)
	case "range":
		return NewRangeScorer(*scoring.Range)
	case "bool":
		return NewBoolScorer(*scoring.Bool)
	default:
		return nil, fmt.Errorf("%w: unknown scoring variant %q",
			domain.ErrInvalidConfiguration, variant)
	}
}

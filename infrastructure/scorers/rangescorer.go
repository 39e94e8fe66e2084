package scorers

import (
	"fmt"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

var _ ports.Scorer = (*RangeScorer)(nil)

// RangeScorer is linear normalization between two anchor values: best
// maps to 1.0 and worst maps to 0.0, regardless of which is numerically
// larger. Raw values beyond either anchor clamp to that anchor's score.
// It is a two-knot specialization of InterpolateScorer.
type RangeScorer struct {
	config domain.RangeConfig
	interp *InterpolateScorer
}

// NewRangeScorer creates a RangeScorer from validated configuration.
// best and worst must differ; equality is an error wrapping
// domain.ErrInvalidConfiguration.
func NewRangeScorer(config domain.RangeConfig) (*RangeScorer, error) {
	var knots []domain.Knot
	switch {
	case config.Worst < config.Best:
		knots = []domain.Knot{{In: config.Worst, Out: 0}, {In: config.Best, Out: 1}}
	case config.Worst > config.Best:
		knots = []domain.Knot{{In: config.Best, Out: 1}, {In: config.Worst, Out: 0}}
	default:
		return nil, fmt.Errorf("%w: range best and worst must differ, both are %g",
			domain.ErrInvalidConfiguration, config.Best)
	}

	interp, err := NewInterpolateScorer(domain.InterpolateConfig{Knots: knots})
	if err != nil {
		return nil, err
	}
	return &RangeScorer{config: config, interp: interp}, nil
}

// Name returns the scorer variant name.
func (s *RangeScorer) Name() string { return "range" }

// Score delegates to the underlying two-knot interpolation.
func (s *RangeScorer) Score(column []domain.Value) ([]float64, error) {
	return s.interp.Score(column)
}

// Doc describes the scoring rule for reports.
func (s *RangeScorer) Doc() string {
	return fmt.Sprintf("Linearly interpolated with %g mapped to 100%% and %g mapped to 0%%.",
		s.config.Best, s.config.Worst)
}

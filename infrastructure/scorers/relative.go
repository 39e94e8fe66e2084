package scorers

import (
	"fmt"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

var _ ports.Scorer = (*RelativeScorer)(nil)

// RelativeScorer scores each choice by its position among all choices'
// raw values for the measure: the lowest value maps to 0.0, the highest
// to 1.0, and everything else linearly in between. With Invert set the
// polarity flips, so lower raw values score higher.
//
// Unlike the other scorers, relative scores depend on the whole column:
// the same raw value can score differently in different runs.
type RelativeScorer struct {
	config domain.RelativeConfig
}

// NewRelativeScorer creates a RelativeScorer.
func NewRelativeScorer(config domain.RelativeConfig) (*RelativeScorer, error) {
	return &RelativeScorer{config: config}, nil
}

// Name returns the scorer variant name.
func (s *RelativeScorer) Name() string { return "relative" }

// Score min-max normalizes the column. A column where every value is
// identical has no defined normalization and yields an error wrapping
// domain.ErrConstantColumn rather than a silently coerced score.
func (s *RelativeScorer) Score(column []domain.Value) ([]float64, error) {
	if len(column) == 0 {
		return nil, ErrEmptyColumn
	}

	raw, err := floats(column)
	if err != nil {
		return nil, err
	}

	lo, hi := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return nil, fmt.Errorf("%w: all %d values equal %g",
			domain.ErrConstantColumn, len(raw), lo)
	}

	span := hi - lo
	scores := make([]float64, len(raw))
	for i, v := range raw {
		score := (v - lo) / span
		if s.config.Invert {
			score = 1.0 - score
		}
		scores[i] = score
	}
	return scores, nil
}

// Doc describes the scoring rule for reports.
func (s *RelativeScorer) Doc() string {
	if s.config.Invert {
		return "Relative to other choices, lower is better: the highest value gets 0% and the lowest gets 100%."
	}
	return "Relative to other choices, higher is better: the lowest value gets 0% and the highest gets 100%."
}

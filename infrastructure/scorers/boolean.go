package scorers

import (
	"fmt"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

var _ ports.Scorer = (*BoolScorer)(nil)

// BoolScorer scores boolean raw values: a value equal to the configured
// good value scores 1.0, anything else scores 0.0.
type BoolScorer struct {
	config domain.BoolConfig
}

// NewBoolScorer creates a BoolScorer.
func NewBoolScorer(config domain.BoolConfig) (*BoolScorer, error) {
	return &BoolScorer{config: config}, nil
}

// Name returns the scorer variant name.
func (s *BoolScorer) Name() string { return "bool" }

// Score requires every raw value to be boolean; a numeric value is a
// type error naming the offending index.
func (s *BoolScorer) Score(column []domain.Value) ([]float64, error) {
	if len(column) == 0 {
		return nil, ErrEmptyColumn
	}

	scores := make([]float64, len(column))
	for i, v := range column {
		b, err := v.Boolean()
		if err != nil {
			return nil, &domain.ValueError{Index: i, Value: v, Err: err}
		}
		if b == s.config.Good {
			scores[i] = 1.0
		}
	}
	return scores, nil
}

// Doc describes the scoring rule for reports.
func (s *BoolScorer) Doc() string {
	return fmt.Sprintf("%t = 100%%, %t = 0%%.", s.config.Good, !s.config.Good)
}

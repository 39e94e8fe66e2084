package scorers

import (
	"fmt"
	"math"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

var _ ports.Scorer = (*StarScorer)(nil)

// StarScorer scores integer ratings on a fixed scale, such as the five
// star scale where 1 is the lowest and 5 is the highest. The minimum
// rating maps to 0.0 and the maximum to 1.0, linearly in between.
type StarScorer struct {
	config domain.StarConfig
	span   float64
}

// NewStarScorer creates a StarScorer from validated configuration.
// It returns an error wrapping domain.ErrInvalidConfiguration when
// min >= max.
func NewStarScorer(config domain.StarConfig) (*StarScorer, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("star configuration: %w", err)
	}
	if config.Min >= config.Max {
		return nil, fmt.Errorf("%w: star min %d must be < max %d",
			domain.ErrInvalidConfiguration, config.Min, config.Max)
	}
	return &StarScorer{
		config: config,
		span:   float64(config.Max - config.Min),
	}, nil
}

// Name returns the scorer variant name.
func (s *StarScorer) Name() string { return "star" }

// Score maps each rating to (raw - min) / (max - min), clamped to [0, 1].
// Raw values must be whole numbers within [min, max]; anything else is
// an error rather than a silently coerced score.
func (s *StarScorer) Score(column []domain.Value) ([]float64, error) {
	if len(column) == 0 {
		return nil, ErrEmptyColumn
	}

	raw, err := floats(column)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(raw))
	for i, v := range raw {
		if v != math.Trunc(v) {
			return nil, &domain.ValueError{Index: i, Value: column[i], Err: ErrNotInteger}
		}
		if v < float64(s.config.Min) || v > float64(s.config.Max) {
			return nil, &domain.ValueError{
				Index: i,
				Value: column[i],
				Err: fmt.Errorf("%w: rating must be within [%d, %d]",
					domain.ErrOutOfRange, s.config.Min, s.config.Max),
			}
		}
		scores[i] = clamp01((v - float64(s.config.Min)) / s.span)
	}
	return scores, nil
}

// Doc describes the scoring rule for reports.
func (s *StarScorer) Doc() string {
	return fmt.Sprintf("%d to %d stars, where %d = 0%% and %d = 100%%.",
		s.config.Min, s.config.Max, s.config.Min, s.config.Max)
}

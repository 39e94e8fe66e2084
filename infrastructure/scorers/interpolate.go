package scorers

import (
	"fmt"
	"strings"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

var _ ports.Scorer = (*InterpolateScorer)(nil)

// InterpolateScorer linearly interpolates scores between user-specified
// knots. Raw values below the first knot or above the last clamp to
// that knot's output instead of extrapolating.
type InterpolateScorer struct {
	knots []domain.Knot
}

// NewInterpolateScorer creates an InterpolateScorer from validated
// configuration. Knots must be given in strictly increasing input order
// (duplicates included) with outputs in [0, 1]; violations are errors
// wrapping domain.ErrInvalidConfiguration.
func NewInterpolateScorer(config domain.InterpolateConfig) (*InterpolateScorer, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("interpolate configuration: %w", err)
	}

	for i := 1; i < len(config.Knots); i++ {
		if config.Knots[i].In <= config.Knots[i-1].In {
			return nil, fmt.Errorf("%w: knots must be strictly increasing in input, but knot %d (in=%g) follows in=%g",
				domain.ErrInvalidConfiguration, i, config.Knots[i].In, config.Knots[i-1].In)
		}
	}

	knots := make([]domain.Knot, len(config.Knots))
	copy(knots, config.Knots)
	return &InterpolateScorer{knots: knots}, nil
}

// Name returns the scorer variant name.
func (s *InterpolateScorer) Name() string { return "interpolate" }

// Score interpolates each raw value between its two bracketing knots,
// clamping at the ends to the first/last knot output.
func (s *InterpolateScorer) Score(column []domain.Value) ([]float64, error) {
	if len(column) == 0 {
		return nil, ErrEmptyColumn
	}

	raw, err := floats(column)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(raw))
	for i, v := range raw {
		scores[i] = clamp01(s.interp(v))
	}
	return scores, nil
}

// interp evaluates the piecewise-linear spline at x.
func (s *InterpolateScorer) interp(x float64) float64 {
	first, last := s.knots[0], s.knots[len(s.knots)-1]
	if x <= first.In {
		return first.Out
	}
	if x >= last.In {
		return last.Out
	}
	for i := 1; i < len(s.knots); i++ {
		lo, hi := s.knots[i-1], s.knots[i]
		if x <= hi.In {
			t := (x - lo.In) / (hi.In - lo.In)
			return lo.Out + t*(hi.Out-lo.Out)
		}
	}
	return last.Out
}

// Doc describes the scoring rule for reports.
func (s *InterpolateScorer) Doc() string {
	parts := make([]string, len(s.knots))
	for i, k := range s.knots {
		parts[i] = fmt.Sprintf("%g -> %.0f%%", k.In, k.Out*100)
	}
	return "Linearly interpolated between knots: " + strings.Join(parts, ", ") + "."
}

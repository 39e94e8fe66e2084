// Package scorers provides the scoring algorithms that implement the
// ports.Scorer interface for the kriter decision-ranking engine.
// Each scorer is a pure function from a column of raw values to
// normalized scores in [0, 1], configured once at load time.
package scorers

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/kriterhq/kriter/internal/domain"
)

// Common errors returned by scorers.
var (
	// ErrEmptyColumn is returned when a scorer receives no values.
	ErrEmptyColumn = errors.New("no values to score")

	// ErrNotInteger is returned by the star scorer for a numeric raw
	// value that is not a whole number.
	ErrNotInteger = errors.New("value is not an integer")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// floats extracts the numeric payload of every value in a column,
// wrapping the first non-numeric value in a ValueError.
func floats(column []domain.Value) ([]float64, error) {
	out := make([]float64, len(column))
	for i, v := range column {
		f, err := v.Float()
		if err != nil {
			return nil, &domain.ValueError{Index: i, Value: v, Err: err}
		}
		out[i] = f
	}
	return out, nil
}

package scorers

import (
	"github.com/kriterhq/kriter/internal/domain"
)

// nums wraps float64s as a raw value column.
func nums(vs ...float64) []domain.Value {
	out := make([]domain.Value, len(vs))
	for i, v := range vs {
		out[i] = domain.NumberValue(v)
	}
	return out
}

// bools wraps bools as a raw value column.
func bools(vs ...bool) []domain.Value {
	out := make([]domain.Value, len(vs))
	for i, v := range vs {
		out[i] = domain.BoolValue(v)
	}
	return out
}

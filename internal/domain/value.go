package domain

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the type of a raw value.
type ValueKind int

const (
	// KindNumber marks a numeric raw value.
	KindNumber ValueKind = iota

	// KindBool marks a boolean raw value.
	KindBool
)

// String returns a human-readable name for the kind.
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a raw data point for one (source, choice) pair, as handed to
// the engine by a value provider. It is a small tagged union over
// numeric and boolean values so that scorers can enforce their input
// type with actionable errors.
type Value struct {
	// Kind discriminates which of the payload fields is meaningful.
	Kind ValueKind

	// Number holds the payload when Kind is KindNumber.
	Number float64

	// Bool holds the payload when Kind is KindBool.
	Bool bool
}

// NumberValue wraps a float64 as a raw value.
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// BoolValue wraps a bool as a raw value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Float returns the numeric payload. It returns an error wrapping
// ErrTypeMismatch when the value is not numeric.
func (v Value) Float() (float64, error) {
	if v.Kind != KindNumber {
		return 0, fmt.Errorf("%w: expected number, got %s", ErrTypeMismatch, v.Kind)
	}
	return v.Number, nil
}

// Boolean returns the boolean payload. It returns an error wrapping
// ErrTypeMismatch when the value is not boolean.
func (v Value) Boolean() (bool, error) {
	if v.Kind != KindBool {
		return false, fmt.Errorf("%w: expected bool, got %s", ErrTypeMismatch, v.Kind)
	}
	return v.Bool, nil
}

// String renders the payload for error messages and reports.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	}
}

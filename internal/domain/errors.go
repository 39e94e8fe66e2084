package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors raised during configuration loading, graph
// validation, and evaluation.
var (
	// ErrInvalidConfiguration indicates that configuration is invalid or
	// incomplete, including malformed scorer parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDuplicateName indicates that a measure or metric name is used
	// more than once across the shared namespace.
	ErrDuplicateName = errors.New("duplicate node name")

	// ErrUnknownFactor indicates that a metric references a factor name
	// that resolves to no measure or metric.
	ErrUnknownFactor = errors.New("unknown factor reference")

	// ErrEmptyMetric indicates a metric with no factors.
	ErrEmptyMetric = errors.New("metric has no factors")

	// ErrCycle indicates that the factor graph contains a cycle.
	ErrCycle = errors.New("cycle in factor graph")

	// ErrUnresolvedFinal indicates that the final reference does not
	// name an existing metric.
	ErrUnresolvedFinal = errors.New("final does not resolve to a metric")

	// ErrUnreachableNode indicates a node that cannot be reached from
	// the final metric.
	ErrUnreachableNode = errors.New("node unreachable from final")

	// ErrMissingValue indicates that the value provider has no raw value
	// for a (source, choice) pair.
	ErrMissingValue = errors.New("missing raw value")

	// ErrNoBucket indicates a raw value that falls outside every
	// configured bucket.
	ErrNoBucket = errors.New("no bucket matches value")

	// ErrZeroWeightSum indicates a metric whose factor weights sum to
	// zero, making normalization undefined.
	ErrZeroWeightSum = errors.New("factor weights sum to zero")

	// ErrTypeMismatch indicates a raw value whose type does not match
	// what the scorer requires.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange indicates a raw value outside the scorer's declared
	// input range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrConstantColumn indicates a relative scorer column where every
	// raw value is identical, making min-max normalization undefined.
	ErrConstantColumn = errors.New("constant column")

	// ErrNoChoices indicates an evaluation run invoked with an empty
	// choice set.
	ErrNoChoices = errors.New("no choices to evaluate")

	// ErrDuplicateChoice indicates a choice identifier that appears more
	// than once in one run's choice set.
	ErrDuplicateChoice = errors.New("duplicate choice")
)

// ValidationError reports one or more configuration validation failures
// for a named entity. It is raised at load/validate time, before any
// scoring runs.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}

// CycleError reports a cycle found in the factor graph, carrying the
// full path for diagnostics.
type CycleError struct {
	// Path lists the node names along the cycle, ending where it began.
	Path []string
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle in factor graph: %s", strings.Join(e.Path, " -> "))
}

// Is reports ErrCycle as the sentinel for this error.
func (e *CycleError) Is(target error) bool { return target == ErrCycle }

// ValueError reports a raw value that a scorer could not handle,
// carrying the column index so callers can attribute it to a choice.
type ValueError struct {
	// Index is the position of the offending value in the column.
	Index int

	// Value is the offending raw value.
	Value Value

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for ValueError.
func (e *ValueError) Error() string {
	return fmt.Sprintf("value %s at index %d: %v", e.Value, e.Index, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is and errors.As.
func (e *ValueError) Unwrap() error { return e.Err }

// EvalError is an evaluation-time failure scoped to a node and,
// when applicable, a choice. It carries enough context to be actionable
// without re-running with added instrumentation.
type EvalError struct {
	// Node is the measure or metric where evaluation failed.
	Node string

	// Choice identifies the choice being evaluated, or is empty when the
	// failure applies to the whole column.
	Choice string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for EvalError.
func (e *EvalError) Error() string {
	if e.Choice == "" {
		return fmt.Sprintf("evaluating %s: %v", e.Node, e.Err)
	}
	return fmt.Sprintf("evaluating %s for choice %s: %v", e.Node, e.Choice, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is and errors.As.
func (e *EvalError) Unwrap() error { return e.Err }

// NewEvalError creates a new EvalError with the given context.
func NewEvalError(node, choice string, err error) *EvalError {
	return &EvalError{Node: node, Choice: choice, Err: err}
}

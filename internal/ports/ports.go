// Package ports defines the core interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"github.com/kriterhq/kriter/internal/domain"
)

// Scorer converts one measure's column of raw values into normalized
// scores in [0, 1]. A Scorer receives the whole column because some
// algorithms (relative) need every choice's value to score any of them.
//
// Scorers are constructed once from validated configuration and must be
// stateless and safe for concurrent use. Malformed parameters are
// rejected at construction time, never deferred to scoring time.
type Scorer interface {
	// Name returns the scorer variant name, used in error messages and
	// report documentation.
	Name() string

	// Score maps each raw value in the column to a score in [0, 1].
	// The returned slice has one score per input value, in order.
	// A raw value no rule can match is an error, not a silent zero;
	// the error identifies the offending index and value.
	Score(column []domain.Value) ([]float64, error)

	// Doc returns a short human-readable description of the scoring
	// rule for inclusion in reports.
	Doc() string
}

// ScorerRegistry creates scorers from their declarative configuration.
// The graph builder depends on this port so that the application layer
// never imports scorer implementations directly.
type ScorerRegistry interface {
	// Create constructs the scorer selected by the scoring
	// configuration, rejecting malformed parameters immediately.
	Create(scoring domain.Scoring) (Scorer, error)
}

// ValueProvider supplies raw data points for (source, choice) pairs.
// Implementations may read CSV files, query a database, or serve an
// in-memory table; the engine only ever sees resolved values.
type ValueProvider interface {
	// Lookup returns the raw value for a (source, choice) pair, or
	// false when the provider has no value for it.
	Lookup(source, choice string) (domain.Value, bool)

	// Column returns the raw values for one source across an ordered
	// choice set. It returns an error wrapping domain.ErrMissingValue
	// naming the first (source, choice) pair with no value.
	Column(source string, choices []string) ([]domain.Value, error)
}

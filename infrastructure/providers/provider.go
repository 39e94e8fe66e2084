// Package providers implements the ports.ValueProvider interface over
// the data sources the engine consumes raw values from: in-memory
// tables, CSV files, and SQLite databases. All providers resolve their
// data fully before evaluation starts; the engine never performs I/O
// mid-run.
package providers

import (
	"fmt"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

// table is the shared in-memory representation behind every provider:
// source -> choice -> value.
type table map[string]map[string]domain.Value

// lookup implements ports.ValueProvider Lookup semantics over a table.
func (t table) lookup(source, choice string) (domain.Value, bool) {
	byChoice, ok := t[source]
	if !ok {
		return domain.Value{}, false
	}
	v, ok := byChoice[choice]
	return v, ok
}

// column gathers one source across an ordered choice set, failing on
// the first missing (source, choice) pair.
func (t table) column(source string, choices []string) ([]domain.Value, error) {
	out := make([]domain.Value, len(choices))
	for i, choice := range choices {
		v, ok := t.lookup(source, choice)
		if !ok {
			return nil, fmt.Errorf("%w: source %q, choice %q",
				domain.ErrMissingValue, source, choice)
		}
		out[i] = v
	}
	return out, nil
}

var _ ports.ValueProvider = (*StaticProvider)(nil)

// StaticProvider serves raw values from an in-memory map. It is the
// provider of choice for tests and for callers embedding the engine
// with already-resolved data.
type StaticProvider struct {
	values table
}

// NewStaticProvider copies the given source -> choice -> value map into
// a provider.
func NewStaticProvider(values map[string]map[string]domain.Value) *StaticProvider {
	t := make(table, len(values))
	for source, byChoice := range values {
		row := make(map[string]domain.Value, len(byChoice))
		for choice, v := range byChoice {
			row[choice] = v
		}
		t[source] = row
	}
	return &StaticProvider{values: t}
}

// Lookup returns the raw value for a (source, choice) pair.
func (p *StaticProvider) Lookup(source, choice string) (domain.Value, bool) {
	return p.values.lookup(source, choice)
}

// Column returns the raw values for one source across a choice set.
func (p *StaticProvider) Column(source string, choices []string) ([]domain.Value, error) {
	return p.values.column(source, choices)
}

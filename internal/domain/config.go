// Package domain contains pure, dependency-free domain models and types
// for the decision-ranking engine.
package domain

import (
	"fmt"
	"strings"
)

// Config is the root aggregate describing a decision model: the atomic
// measures, the metrics that combine them, and the final metric whose
// propagated score ranks the choices.
// A Config is constructed once from configuration and treated as
// immutable thereafter.
type Config struct {
	// Measures are the leaf nodes of the scoring graph. Each one binds a
	// raw data source to a scoring algorithm.
	Measures []Measure `yaml:"measures" validate:"required,min=1,dive"`

	// Metrics are the internal nodes of the scoring graph. Each one is a
	// weighted combination of measures and/or other metrics.
	Metrics []Metric `yaml:"metrics" validate:"required,min=1,dive"`

	// Final names the metric whose propagated score is the headline
	// result of an evaluation run.
	Final string `yaml:"final" validate:"required,min=1"`
}

// Measure is a leaf node in the scoring graph. It consumes one raw value
// per choice from the named source and converts it to a normalized score
// using its scoring configuration.
type Measure struct {
	// Name uniquely identifies this measure. The namespace is shared
	// with metric names.
	Name string `yaml:"name" validate:"required,nodename,max=100"`

	// Source is the key used to look up this measure's raw value for
	// each choice in the value provider.
	Source string `yaml:"source" validate:"required,min=1"`

	// Scoring selects exactly one scoring algorithm and its parameters.
	Scoring Scoring `yaml:"scoring"`

	// Doc is optional free-form documentation, passed through verbatim
	// to reports.
	Doc string `yaml:"doc,omitempty"`
}

// Metric is an internal node in the scoring graph. Its score is the
// normalized-weighted sum of its factors' scores.
type Metric struct {
	// Name uniquely identifies this metric. The namespace is shared
	// with measure names.
	Name string `yaml:"name" validate:"required,nodename,max=100"`

	// Factors reference the measures and/or metrics this metric
	// aggregates, each with a weight. Weights are normalized by their
	// signed sum at evaluation time; the stored values are never mutated.
	Factors []Factor `yaml:"factors" validate:"required,min=1,dive"`
}

// Factor is a weighted reference from a metric to another node in the
// scoring graph.
type Factor struct {
	// Name must resolve to an existing measure or metric.
	Name string `yaml:"name" validate:"required,min=1"`

	// Weight is the factor's relative weight. Negative weights are
	// permitted and express penalization.
	Weight float64 `yaml:"weight"`
}

// Scoring is the tagged union of scorer configurations. Exactly one
// variant must be set; an unset scoring block is a configuration error,
// never a silent no-op.
type Scoring struct {
	Star        *StarConfig        `yaml:"star,omitempty"`
	Bucket      *BucketConfig      `yaml:"bucket,omitempty"`
	Relative    *RelativeConfig    `yaml:"relative,omitempty"`
	Interpolate *InterpolateConfig `yaml:"interpolate,omitempty"`
	Range       *RangeConfig       `yaml:"range,omitempty"`
	Bool        *BoolConfig        `yaml:"bool,omitempty"`
}

// Variant returns the name of the single scoring variant that is set.
// It returns an error wrapping ErrInvalidConfiguration if zero or more
// than one variant is set.
func (s Scoring) Variant() (string, error) {
	var set []string
	if s.Star != nil {
		set = append(set, "star")
	}
	if s.Bucket != nil {
		set = append(set, "bucket")
	}
	if s.Relative != nil {
		set = append(set, "relative")
	}
	if s.Interpolate != nil {
		set = append(set, "interpolate")
	}
	if s.Range != nil {
		set = append(set, "range")
	}
	if s.Bool != nil {
		set = append(set, "bool")
	}

	switch len(set) {
	case 0:
		return "", fmt.Errorf("%w: no scoring variant set", ErrInvalidConfiguration)
	case 1:
		return set[0], nil
	default:
		return "", fmt.Errorf("%w: multiple scoring variants set: %s",
			ErrInvalidConfiguration, strings.Join(set, ", "))
	}
}

// StarConfig scores integer ratings on a fixed scale, such as the
// classic five-star scale. Min maps to 0.0 and Max maps to 1.0.
type StarConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// BucketConfig scores values piecewise-constant: the first bucket whose
// half-open range [Min, Max) contains the raw value supplies its Val as
// the score. A value outside every bucket is an evaluation error.
type BucketConfig struct {
	Buckets []BucketRange `yaml:"buckets" validate:"required,min=1,dive"`
}

// BucketRange is one bucket of a BucketConfig. Values in [Min, Max)
// score Val.
type BucketRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	Val float64 `yaml:"val" validate:"min=0,max=1"`
}

// RelativeConfig scores each choice by its min-max normalized position
// among all choices' raw values for the measure. Invert flips polarity
// so that lower raw values score higher.
type RelativeConfig struct {
	Invert bool `yaml:"invert"`
}

// InterpolateConfig scores by linear interpolation between knots sorted
// by their In value. Raw values outside the knot span clamp to the
// first/last Out.
type InterpolateConfig struct {
	Knots []Knot `yaml:"knots" validate:"required,min=2,dive"`
}

// Knot is one interpolation point: a raw input In mapped to a score Out.
type Knot struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out" validate:"min=0,max=1"`
}

// RangeConfig is linear normalization where Best maps to 1.0 and Worst
// maps to 0.0, regardless of which is numerically larger.
type RangeConfig struct {
	Best  float64 `yaml:"best"`
	Worst float64 `yaml:"worst"`
}

// BoolConfig scores boolean raw values: 1.0 if the value equals Good,
// 0.0 otherwise.
type BoolConfig struct {
	Good bool `yaml:"good"`
}

// MeasureByName returns the measure with the given name, if any.
func (c *Config) MeasureByName(name string) (Measure, bool) {
	for _, m := range c.Measures {
		if m.Name == name {
			return m, true
		}
	}
	return Measure{}, false
}

// MetricByName returns the metric with the given name, if any.
func (c *Config) MetricByName(name string) (Metric, bool) {
	for _, m := range c.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

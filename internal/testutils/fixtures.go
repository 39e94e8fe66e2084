// Package testutils provides shared fixtures and synthetic dataset
// generation for tests and benchmarks: small hand-written decision
// configurations with known expected scores, and seeded random
// configurations with matching raw data.
package testutils

import (
	"github.com/kriterhq/kriter/internal/domain"
)

// SampleConfig returns a small laptop-comparison configuration covering
// every scoring variant: three measures feeding one intermediate metric
// plus a boolean measure, combined into the final metric.
func SampleConfig() *domain.Config {
	return &domain.Config{
		Measures: []domain.Measure{
			{
				Name:   "battery",
				Source: "battery_hours",
				Scoring: domain.Scoring{
					Range: &domain.RangeConfig{Worst: 2, Best: 12},
				},
			},
			{
				Name:   "rating",
				Source: "user_rating",
				Scoring: domain.Scoring{
					Star: &domain.StarConfig{Min: 1, Max: 5},
				},
			},
			{
				Name:   "price",
				Source: "price_usd",
				Scoring: domain.Scoring{
					Interpolate: &domain.InterpolateConfig{
						Knots: []domain.Knot{
							{In: 500, Out: 1.0},
							{In: 1500, Out: 0.5},
							{In: 3000, Out: 0.0},
						},
					},
				},
			},
			{
				Name:   "has_warranty",
				Source: "warranty",
				Scoring: domain.Scoring{
					Bool: &domain.BoolConfig{Good: true},
				},
			},
		},
		Metrics: []domain.Metric{
			{
				Name: "hardware",
				Factors: []domain.Factor{
					{Name: "battery", Weight: 2},
					{Name: "rating", Weight: 1},
				},
			},
			{
				Name: "overall",
				Factors: []domain.Factor{
					{Name: "hardware", Weight: 3},
					{Name: "price", Weight: 2},
					{Name: "has_warranty", Weight: 1},
				},
			},
		},
		Final: "overall",
	}
}

// SampleValues returns raw data matching SampleConfig for three
// choices, keyed by source then choice.
func SampleValues() map[string]map[string]domain.Value {
	return map[string]map[string]domain.Value{
		"battery_hours": {
			"alpha": domain.NumberValue(12),
			"beta":  domain.NumberValue(7),
			"gamma": domain.NumberValue(2),
		},
		"user_rating": {
			"alpha": domain.NumberValue(4),
			"beta":  domain.NumberValue(5),
			"gamma": domain.NumberValue(2),
		},
		"price_usd": {
			"alpha": domain.NumberValue(1500),
			"beta":  domain.NumberValue(500),
			"gamma": domain.NumberValue(3000),
		},
		"warranty": {
			"alpha": domain.BoolValue(true),
			"beta":  domain.BoolValue(false),
			"gamma": domain.BoolValue(true),
		},
	}
}

// SampleChoices returns the choice identifiers of SampleValues in
// canonical order.
func SampleChoices() []string {
	return []string{"alpha", "beta", "gamma"}
}

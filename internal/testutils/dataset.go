package testutils

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kriterhq/kriter/internal/domain"
)

// Dataset is a synthetic decision configuration together with raw data
// that evaluates cleanly against it. Generation is fully determined by
// the seed, so a dataset can be regenerated from its parameters alone.
type Dataset struct {
	Config  *domain.Config
	Choices []string
	// Values holds the raw data keyed by source then choice.
	Values map[string]map[string]domain.Value
}

// GenerateDataset produces a random dataset with the given number of
// measures and choices. Measures cycle through the scoring variants;
// every measure feeds a single final metric with a random positive
// weight, so the configuration always compiles and every raw value is
// in range for its scorer.
func GenerateDataset(measures, choices int, seed int64) *Dataset {
	if measures < 1 {
		measures = 1
	}
	if choices < 1 {
		choices = 1
	}
	rng := rand.New(rand.NewSource(seed))

	d := &Dataset{
		Config: &domain.Config{Final: "overall"},
		Values: make(map[string]map[string]domain.Value, measures),
	}
	for c := 0; c < choices; c++ {
		d.Choices = append(d.Choices, fmt.Sprintf("choice_%03d", c))
	}

	metric := domain.Metric{Name: "overall"}
	for m := 0; m < measures; m++ {
		name := fmt.Sprintf("measure_%03d", m)
		source := fmt.Sprintf("source_%03d", m)
		scoring, values := randomMeasure(rng, m, d.Choices)

		d.Config.Measures = append(d.Config.Measures, domain.Measure{
			Name:    name,
			Source:  source,
			Scoring: scoring,
		})
		metric.Factors = append(metric.Factors, domain.Factor{
			Name:   name,
			Weight: 1 + rng.Float64()*9,
		})
		d.Values[source] = values
	}
	d.Config.Metrics = []domain.Metric{metric}

	return d
}

// randomMeasure picks a scoring variant by index and generates one
// in-range raw value per choice.
func randomMeasure(rng *rand.Rand, idx int, choices []string) (domain.Scoring, map[string]domain.Value) {
	values := make(map[string]domain.Value, len(choices))

	switch idx % 4 {
	case 0:
		for _, c := range choices {
			values[c] = domain.NumberValue(float64(1 + rng.Intn(5)))
		}
		return domain.Scoring{Star: &domain.StarConfig{Min: 1, Max: 5}}, values
	case 1:
		for _, c := range choices {
			values[c] = domain.NumberValue(rng.Float64() * 100)
		}
		return domain.Scoring{Range: &domain.RangeConfig{Worst: 0, Best: 100}}, values
	case 2:
		for _, c := range choices {
			values[c] = domain.BoolValue(rng.Intn(2) == 0)
		}
		return domain.Scoring{Bool: &domain.BoolConfig{Good: true}}, values
	default:
		for _, c := range choices {
			values[c] = domain.NumberValue(rng.Float64() * 10)
		}
		return domain.Scoring{Interpolate: &domain.InterpolateConfig{
			Knots: []domain.Knot{
				{In: 0, Out: 0},
				{In: 5, Out: 0.8},
				{In: 10, Out: 1},
			},
		}}, values
	}
}

// WriteConfigYAML encodes the dataset's configuration as YAML.
func (d *Dataset) WriteConfigYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(d.Config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return encoder.Close()
}

// WriteCSV writes the dataset's raw values as a wide CSV table: a
// choice column followed by one column per source, in measure order.
func (d *Dataset) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"choice"}
	for _, m := range d.Config.Measures {
		header = append(header, m.Source)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, choice := range d.Choices {
		row := []string{choice}
		for _, m := range d.Config.Measures {
			row = append(row, renderValue(d.Values[m.Source][choice]))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", choice, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// renderValue formats a raw value so the CSV provider parses it back to
// the same kind.
func renderValue(v domain.Value) string {
	if v.Kind == domain.KindBool {
		return strconv.FormatBool(v.Bool)
	}
	return strconv.FormatFloat(v.Number, 'g', -1, 64)
}

// Package report renders evaluation results for people: an HTML page
// with the full score breakdown, a colorized terminal table, and a
// machine-readable JSON document. Rendering is strictly read-only over
// an already-computed score matrix.
package report

import (
	"fmt"
	"time"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

// MeasureInfo describes one measure column for display purposes.
type MeasureInfo struct {
	Name   string
	Source string
	Doc    string
}

// Report is the display-ready view of a single evaluation run. It pairs
// the score matrix with the raw values that produced it and a node order
// suitable for rendering, and is consumed by the HTML, table, and JSON
// writers in this package.
type Report struct {
	GeneratedAt time.Time
	Final       string
	Choices     []string
	Measures    []MeasureInfo
	// Nodes lists all scored nodes in display order: measures first,
	// then metrics, each in configuration order.
	Nodes   []string
	Ranking []domain.RankEntry

	matrix *domain.ScoreMatrix
	// raw holds rendered raw values keyed by choice then measure name.
	raw map[string]map[string]string
}

// Build assembles a Report from an evaluation's inputs and outputs.
// measures and metrics carry the configuration's display order; docs
// maps measure names to their descriptions. The provider supplies the
// raw values shown alongside the scores.
func Build(
	matrix *domain.ScoreMatrix,
	measures []domain.Measure,
	metrics []string,
	docs map[string]string,
	provider ports.ValueProvider,
) (*Report, error) {
	if matrix == nil {
		return nil, fmt.Errorf("score matrix must not be nil")
	}

	r := &Report{
		GeneratedAt: time.Now(),
		Final:       matrix.Final(),
		Choices:     matrix.Choices(),
		Ranking:     matrix.Ranking(),
		matrix:      matrix,
		raw:         make(map[string]map[string]string),
	}

	for _, m := range measures {
		r.Measures = append(r.Measures, MeasureInfo{
			Name:   m.Name,
			Source: m.Source,
			Doc:    docs[m.Name],
		})
		r.Nodes = append(r.Nodes, m.Name)
	}
	r.Nodes = append(r.Nodes, metrics...)

	for _, node := range r.Nodes {
		if _, ok := matrix.Column(node); !ok {
			return nil, fmt.Errorf("node %s has no score column", node)
		}
	}

	if provider != nil {
		for _, choice := range r.Choices {
			row := make(map[string]string, len(measures))
			for _, m := range measures {
				if v, ok := provider.Lookup(m.Source, choice); ok {
					row[m.Name] = v.String()
				}
			}
			r.raw[choice] = row
		}
	}

	return r, nil
}

// Score returns the score for a (choice, node) pair. Build has verified
// every displayed node has a column, so a miss only happens for names
// outside the report and renders as zero.
func (r *Report) Score(choice, node string) float64 {
	s, _ := r.matrix.Score(choice, node)
	return s
}

// Raw returns the rendered raw value for a (choice, measure) pair, or
// an empty string when no raw data was attached.
func (r *Report) Raw(choice, measure string) string {
	return r.raw[choice][measure]
}

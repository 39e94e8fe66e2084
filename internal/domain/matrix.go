package domain

import (
	"fmt"
	"sort"
)

// ScoreMatrix holds the per-(choice, node) scores produced by one
// evaluation run, together with the designated final node. It is created
// once per run, never mutated afterwards, and owned by the caller that
// requested the evaluation.
type ScoreMatrix struct {
	choices []string
	final   string
	// scores maps node name to its per-choice column, indexed in
	// choice order.
	scores map[string][]float64
}

// RankEntry is one row of a ranking: a choice and its final score.
type RankEntry struct {
	Choice string  `json:"choice"`
	Score  float64 `json:"score"`
}

// NewScoreMatrix builds a ScoreMatrix from per-node score columns.
// Columns are copied, so later mutation of the inputs does not leak into
// the matrix. Every column must have one entry per choice.
func NewScoreMatrix(choices []string, final string, scores map[string][]float64) (*ScoreMatrix, error) {
	cs := make([]string, len(choices))
	copy(cs, choices)

	cols := make(map[string][]float64, len(scores))
	for node, col := range scores {
		if len(col) != len(choices) {
			return nil, fmt.Errorf("node %s: column has %d scores for %d choices",
				node, len(col), len(choices))
		}
		c := make([]float64, len(col))
		copy(c, col)
		cols[node] = c
	}

	if _, ok := cols[final]; !ok {
		return nil, fmt.Errorf("final node %s has no score column", final)
	}

	return &ScoreMatrix{choices: cs, final: final, scores: cols}, nil
}

// Choices returns the choice identifiers in their original input order.
func (m *ScoreMatrix) Choices() []string {
	cs := make([]string, len(m.choices))
	copy(cs, m.choices)
	return cs
}

// Nodes returns the names of all scored nodes in sorted order.
func (m *ScoreMatrix) Nodes() []string {
	nodes := make([]string, 0, len(m.scores))
	for name := range m.scores {
		nodes = append(nodes, name)
	}
	sort.Strings(nodes)
	return nodes
}

// Final returns the name of the final node.
func (m *ScoreMatrix) Final() string { return m.final }

// Score returns the score for a (choice, node) pair.
func (m *ScoreMatrix) Score(choice, node string) (float64, bool) {
	col, ok := m.scores[node]
	if !ok {
		return 0, false
	}
	for i, c := range m.choices {
		if c == choice {
			return col[i], true
		}
	}
	return 0, false
}

// Column returns a copy of a node's per-choice score column in choice
// order.
func (m *ScoreMatrix) Column(node string) ([]float64, bool) {
	col, ok := m.scores[node]
	if !ok {
		return nil, false
	}
	c := make([]float64, len(col))
	copy(c, col)
	return c, true
}

// Ranking returns the choices ordered by final score, descending.
// Ties preserve original input order (stable sort) so that identical
// inputs always produce identical output.
func (m *ScoreMatrix) Ranking() []RankEntry {
	final := m.scores[m.final]
	entries := make([]RankEntry, len(m.choices))
	for i, choice := range m.choices {
		entries[i] = RankEntry{Choice: choice, Score: final[i]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// Package application wires the domain model to its collaborators:
// it loads and validates decision configurations, compiles them into
// scoring graphs, and evaluates graphs over choice sets.
package application

import (
	"fmt"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

// NodeKind discriminates measure and metric nodes in a compiled graph.
type NodeKind int

const (
	// NodeMeasure marks a leaf node backed by a scorer and a data source.
	NodeMeasure NodeKind = iota

	// NodeMetric marks an internal node aggregating weighted factors.
	NodeMetric
)

// String returns a human-readable name for the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeMeasure:
		return "measure"
	case NodeMetric:
		return "metric"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// edge is a resolved, index-based factor reference.
type edge struct {
	target int
	weight float64
}

// node is one entry in the graph's node arena.
type node struct {
	name    string
	kind    NodeKind
	measure domain.Measure
	metric  domain.Metric
	scorer  ports.Scorer
	// factors holds the metric's resolved edges. Empty for measures.
	factors []edge
}

// Graph is the compiled, immutable form of a decision configuration:
// an arena of named nodes with index-based factor edges, validated to be
// a DAG in which every node is reachable from the final metric.
// Name lookups are resolved once here, never re-resolved per evaluation.
type Graph struct {
	nodes []node
	index map[string]int
	final int
}

// BuildGraph compiles a configuration into a Graph, validating in order:
// duplicate names across the shared namespace, factor reference
// resolution, metric non-emptiness, acyclicity (reported with the full
// cycle path), and final resolution plus reachability. Scorers are
// constructed here so malformed parameters fail before any evaluation.
// A partial graph is never returned.
func BuildGraph(config *domain.Config, registry ports.ScorerRegistry) (*Graph, error) {
	g := &Graph{
		nodes: make([]node, 0, len(config.Measures)+len(config.Metrics)),
		index: make(map[string]int, len(config.Measures)+len(config.Metrics)),
	}

	for _, m := range config.Measures {
		if prev, exists := g.index[m.Name]; exists {
			return nil, fmt.Errorf("%w: %q is both a %s and a measure",
				domain.ErrDuplicateName, m.Name, g.nodes[prev].kind)
		}
		scorer, err := registry.Create(m.Scoring)
		if err != nil {
			return nil, fmt.Errorf("measure %s: %w", m.Name, err)
		}
		g.index[m.Name] = len(g.nodes)
		g.nodes = append(g.nodes, node{name: m.Name, kind: NodeMeasure, measure: m, scorer: scorer})
	}

	// Index all metric names before resolving any factor references so
	// metrics may reference metrics defined later in the file.
	for _, m := range config.Metrics {
		if prev, exists := g.index[m.Name]; exists {
			return nil, fmt.Errorf("%w: %q is both a %s and a metric",
				domain.ErrDuplicateName, m.Name, g.nodes[prev].kind)
		}
		g.index[m.Name] = len(g.nodes)
		g.nodes = append(g.nodes, node{name: m.Name, kind: NodeMetric, metric: m})
	}

	for _, m := range config.Metrics {
		idx := g.index[m.Name]
		if len(m.Factors) == 0 {
			return nil, fmt.Errorf("metric %s: %w", m.Name, domain.ErrEmptyMetric)
		}
		seen := make(map[string]struct{}, len(m.Factors))
		edges := make([]edge, 0, len(m.Factors))
		for _, f := range m.Factors {
			if _, dup := seen[f.Name]; dup {
				return nil, fmt.Errorf("metric %s: %w: factor %q listed twice",
					m.Name, domain.ErrDuplicateName, f.Name)
			}
			seen[f.Name] = struct{}{}
			target, ok := g.index[f.Name]
			if !ok {
				return nil, fmt.Errorf("metric %s: %w: %q",
					m.Name, domain.ErrUnknownFactor, f.Name)
			}
			edges = append(edges, edge{target: target, weight: f.Weight})
		}
		g.nodes[idx].factors = edges
	}

	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}

	final, ok := g.index[config.Final]
	if !ok || g.nodes[final].kind != NodeMetric {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnresolvedFinal, config.Final)
	}
	g.final = final

	if err := g.checkReachable(); err != nil {
		return nil, err
	}

	return g, nil
}

// checkAcyclic runs a depth-first traversal with a recursion-stack set,
// reporting the first back-edge found with the full cycle path.
func (g *Graph) checkAcyclic() error {
	// White (0): unvisited, Gray (1): on the recursion stack, Black (2): done.
	colors := make([]int, len(g.nodes))
	stack := make([]int, 0, len(g.nodes))

	var dfs func(i int) *domain.CycleError
	dfs = func(i int) *domain.CycleError {
		colors[i] = 1
		stack = append(stack, i)

		for _, e := range g.nodes[i].factors {
			switch colors[e.target] {
			case 1:
				// Back edge: slice the recursion stack from the repeated
				// node to form the cycle path.
				path := []string{g.nodes[e.target].name}
				start := 0
				for j, s := range stack {
					if s == e.target {
						start = j
						break
					}
				}
				for _, s := range stack[start+1:] {
					path = append(path, g.nodes[s].name)
				}
				path = append(path, g.nodes[e.target].name)
				return &domain.CycleError{Path: path}
			case 0:
				if err := dfs(e.target); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		colors[i] = 2
		return nil
	}

	for i := range g.nodes {
		if colors[i] == 0 {
			if err := dfs(i); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkReachable verifies every node is reachable from the final metric
// by walking factor edges, so no configured node is silently ignored.
func (g *Graph) checkReachable() error {
	reached := make([]bool, len(g.nodes))
	queue := []int{g.final}
	reached[g.final] = true
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, e := range g.nodes[i].factors {
			if !reached[e.target] {
				reached[e.target] = true
				queue = append(queue, e.target)
			}
		}
	}

	for i, r := range reached {
		if !r {
			return fmt.Errorf("%w: %s %q", domain.ErrUnreachableNode,
				g.nodes[i].kind, g.nodes[i].name)
		}
	}
	return nil
}

// topoOrder computes an evaluation order in which every factor precedes
// the metrics that reference it, using Kahn's algorithm. The validator
// has already excluded cycles, but a short count here still fails loudly
// instead of looping forever.
func (g *Graph) topoOrder() ([]int, error) {
	// outstanding counts unevaluated factors per node; a node is ready
	// once all its factors are ordered.
	outstanding := make([]int, len(g.nodes))
	dependents := make([][]int, len(g.nodes))
	for i, n := range g.nodes {
		outstanding[i] = len(n.factors)
		for _, e := range n.factors {
			dependents[e.target] = append(dependents[e.target], i)
		}
	}

	queue := make([]int, 0, len(g.nodes))
	for i, c := range outstanding {
		if c == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(g.nodes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, d := range dependents[i] {
			outstanding[d]--
			if outstanding[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, domain.ErrCycle
	}
	return order, nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Final returns the name of the final metric.
func (g *Graph) Final() string { return g.nodes[g.final].name }

// NodeNames returns all node names in arena order: measures first, then
// metrics, each in configuration order.
func (g *Graph) NodeNames() []string {
	names := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		names[i] = n.name
	}
	return names
}

// Measures returns the graph's measures in configuration order.
func (g *Graph) Measures() []domain.Measure {
	var out []domain.Measure
	for _, n := range g.nodes {
		if n.kind == NodeMeasure {
			out = append(out, n.measure)
		}
	}
	return out
}

// MetricNames returns the graph's metric names in configuration order.
func (g *Graph) MetricNames() []string {
	var out []string
	for _, n := range g.nodes {
		if n.kind == NodeMetric {
			out = append(out, n.name)
		}
	}
	return out
}

// MeasureDocs returns each measure's name paired with its scorer's
// description, for report rendering. Measures with explicit doc text
// keep it; the rest fall back to the scorer's own description.
func (g *Graph) MeasureDocs() map[string]string {
	docs := make(map[string]string)
	for _, n := range g.nodes {
		if n.kind != NodeMeasure {
			continue
		}
		if n.measure.Doc != "" {
			docs[n.name] = n.measure.Doc
			continue
		}
		docs[n.name] = n.scorer.Doc()
	}
	return docs
}

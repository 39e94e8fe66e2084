package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

// Evaluator performs one bottom-up pass over a compiled graph per run,
// scoring every measure column and propagating normalized-weighted sums
// through the metrics to the final node.
//
// The graph and scorers are immutable, so an Evaluator is safe for
// concurrent use; each run writes only to its own score columns.
type Evaluator struct {
	graph    *Graph
	provider ports.ValueProvider
	observer ports.RunObserver
	logger   *slog.Logger
	limit    int
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithObserver attaches a run observer for tracing or metrics.
func WithObserver(obs ports.RunObserver) EvaluatorOption {
	return func(e *Evaluator) { e.observer = obs }
}

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) { e.logger = logger }
}

// WithConcurrencyLimit caps how many measure columns and choices are
// processed concurrently. Values below 1 restore the default.
func WithConcurrencyLimit(limit int) EvaluatorOption {
	return func(e *Evaluator) { e.limit = limit }
}

// NewEvaluator creates an Evaluator over a compiled graph and a resolved
// value provider.
func NewEvaluator(graph *Graph, provider ports.ValueProvider, opts ...EvaluatorOption) (*Evaluator, error) {
	if graph == nil {
		return nil, fmt.Errorf("graph must not be nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("value provider must not be nil")
	}

	e := &Evaluator{
		graph:    graph,
		provider: provider,
		logger:   slog.Default(),
		limit:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.limit < 1 {
		e.limit = runtime.NumCPU()
	}
	return e, nil
}

// Evaluate scores every node for every choice and returns the resulting
// score matrix. The run is all-or-nothing: any missing raw value,
// unmatched scoring rule, or zero-sum weight normalization aborts the
// whole run, since a partial ranking would be misleading.
// Two runs over the same graph and data yield identical matrices.
func (e *Evaluator) Evaluate(ctx context.Context, choices []string) (matrix *domain.ScoreMatrix, err error) {
	if len(choices) == 0 {
		return nil, domain.ErrNoChoices
	}
	seen := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateChoice, c)
		}
		seen[c] = struct{}{}
	}

	info := ports.RunInfo{
		Final:   e.graph.Final(),
		Choices: len(choices),
		Nodes:   e.graph.Len(),
	}
	if e.observer != nil {
		ctx = e.observer.RunStarted(ctx, info)
		start := time.Now()
		defer func() {
			e.observer.RunFinished(ctx, info, time.Since(start), err)
		}()
	}

	order, err := e.graph.topoOrder()
	if err != nil {
		return nil, err
	}

	// Weights are normalized fresh every run and never written back to
	// the configuration.
	weights, err := e.normalizedWeights()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	columns := make([][]float64, e.graph.Len())

	// Measure columns are independent: each goroutine reads the shared
	// immutable graph and writes exactly one column slot.
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(e.limit)
	for i := range e.graph.nodes {
		if e.graph.nodes[i].kind != NodeMeasure {
			continue
		}
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			col, err := e.scoreMeasure(e.graph.nodes[i], choices)
			if err != nil {
				return err
			}
			columns[i] = col
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	// Metric propagation parallelizes across choices: every (node,
	// choice) slot is written by exactly one goroutine and read only
	// after all complete.
	for _, i := range order {
		if e.graph.nodes[i].kind == NodeMetric {
			columns[i] = make([]float64, len(choices))
		}
	}
	grp, grpCtx = errgroup.WithContext(ctx)
	grp.SetLimit(e.limit)
	for ci := range choices {
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			for _, i := range order {
				n := e.graph.nodes[i]
				if n.kind != NodeMetric {
					continue
				}
				var sum float64
				for fi, f := range n.factors {
					sum += weights[i][fi] * columns[f.target][ci]
				}
				columns[i][ci] = sum
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	cols := make(map[string][]float64, e.graph.Len())
	for i, n := range e.graph.nodes {
		cols[n.name] = columns[i]
	}
	matrix, err = domain.NewScoreMatrix(choices, e.graph.Final(), cols)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("evaluation complete",
		"final", e.graph.Final(),
		"choices", len(choices),
		"nodes", e.graph.Len(),
		"elapsed", time.Since(start))
	return matrix, nil
}

// scoreMeasure resolves one measure's raw column from the provider and
// runs its scorer. Errors are scoped to the (measure, choice) pair that
// caused them.
func (e *Evaluator) scoreMeasure(n node, choices []string) ([]float64, error) {
	column := make([]domain.Value, len(choices))
	for i, choice := range choices {
		v, ok := e.provider.Lookup(n.measure.Source, choice)
		if !ok {
			return nil, domain.NewEvalError(n.name, choice,
				fmt.Errorf("%w: source %q", domain.ErrMissingValue, n.measure.Source))
		}
		column[i] = v
	}

	scores, err := n.scorer.Score(column)
	if err != nil {
		var ve *domain.ValueError
		if errors.As(err, &ve) && ve.Index >= 0 && ve.Index < len(choices) {
			return nil, domain.NewEvalError(n.name, choices[ve.Index], err)
		}
		return nil, domain.NewEvalError(n.name, "", err)
	}
	return scores, nil
}

// normalizedWeights rescales each metric's factor weights to sum to 1,
// dividing by the signed sum so that negative weights keep their chosen
// direction. A zero signed sum has no defined normalization and aborts
// the run.
func (e *Evaluator) normalizedWeights() ([][]float64, error) {
	weights := make([][]float64, len(e.graph.nodes))
	for i, n := range e.graph.nodes {
		if n.kind != NodeMetric {
			continue
		}
		var sum float64
		for _, f := range n.factors {
			sum += f.weight
		}
		if sum == 0 {
			return nil, domain.NewEvalError(n.name, "", domain.ErrZeroWeightSum)
		}
		norm := make([]float64, len(n.factors))
		for fi, f := range n.factors {
			norm[fi] = f.weight / sum
		}
		weights[i] = norm
	}
	return weights, nil
}

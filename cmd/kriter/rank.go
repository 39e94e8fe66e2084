package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kriterhq/kriter/infrastructure/providers"
	"github.com/kriterhq/kriter/infrastructure/report"
	"github.com/kriterhq/kriter/infrastructure/scorers"
	"github.com/kriterhq/kriter/infrastructure/telemetry"
	"github.com/kriterhq/kriter/internal/application"
	"github.com/kriterhq/kriter/internal/ports"
)

var (
	rankConfig    string
	rankData      string
	rankSQLite    string
	rankTable     string
	rankOutput    string
	rankFormat    string
	rankBreakdown bool
	rankWorkers   int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Evaluate choices and print their ranking.",
	Long: `Evaluate every choice in the data source against the configuration's
scoring graph and print the choices ranked by their final metric.

Exactly one data source must be given: --data for a wide CSV file (one
row per choice, one column per source) or --sqlite for a SQLite
database in long format (one row per choice and source).`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankConfig, "config", "c", "", "decision configuration file (YAML)")
	rankCmd.Flags().StringVarP(&rankData, "data", "d", "", "raw values file (CSV, wide format)")
	rankCmd.Flags().StringVar(&rankSQLite, "sqlite", "", "raw values database (SQLite, long format)")
	rankCmd.Flags().StringVar(&rankTable, "sqlite-table", providers.DefaultSQLiteTable, "table holding raw values")
	rankCmd.Flags().StringVarP(&rankOutput, "output", "o", "", "write the report to this file instead of stdout")
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "table", "output format: table, json, or html")
	rankCmd.Flags().BoolVar(&rankBreakdown, "breakdown", false, "also print the per-node score table (table format only)")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "max concurrent scoring goroutines (0 = number of CPUs)")
	_ = rankCmd.MarkFlagRequired("config")
}

// choiceProvider is a value provider that also knows the full choice
// set of its data source, in source order.
type choiceProvider interface {
	ports.ValueProvider
	Choices() []string
}

func runRank(cmd *cobra.Command, _ []string) error {
	provider, err := openProvider(cmd.Context())
	if err != nil {
		return err
	}

	loader, err := application.NewConfigLoader(scorers.Registry{})
	if err != nil {
		return err
	}
	graph, err := loader.LoadFromFile(rankConfig)
	if err != nil {
		return fmt.Errorf("%s: %w", rankConfig, err)
	}

	opts := []application.EvaluatorOption{
		application.WithObserver(telemetry.NewOTelRunObserver(nil)),
	}
	if rankWorkers > 0 {
		opts = append(opts, application.WithConcurrencyLimit(rankWorkers))
	}
	evaluator, err := application.NewEvaluator(graph, provider, opts...)
	if err != nil {
		return err
	}

	matrix, err := evaluator.Evaluate(cmd.Context(), provider.Choices())
	if err != nil {
		return err
	}

	rep, err := report.Build(matrix, graph.Measures(), graph.MetricNames(), graph.MeasureDocs(), provider)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	switch rankFormat {
	case "table":
		if err := report.WriteTable(out, rep); err != nil {
			return err
		}
		if rankBreakdown {
			return report.WriteBreakdown(out, rep)
		}
		return nil
	case "json":
		return report.WriteJSON(out, rep)
	case "html":
		return report.WriteHTML(out, rep)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or html)", rankFormat)
	}
}

// openProvider builds the value provider from the data-source flags,
// requiring exactly one source.
func openProvider(ctx context.Context) (choiceProvider, error) {
	switch {
	case rankData != "" && rankSQLite != "":
		return nil, fmt.Errorf("--data and --sqlite are mutually exclusive")
	case rankData != "":
		return providers.NewCSVProviderFromFile(rankData)
	case rankSQLite != "":
		return providers.NewSQLiteProvider(ctx, rankSQLite, rankTable)
	default:
		return nil, fmt.Errorf("a data source is required: --data or --sqlite")
	}
}

// openOutput resolves the report destination: a file when --output is
// set, stdout otherwise.
func openOutput() (io.Writer, func(), error) {
	if rankOutput == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(filepath.Clean(rankOutput))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

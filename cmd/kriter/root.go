package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// debug toggles verbose logging for all subcommands.
var debug bool

var rootCmd = &cobra.Command{
	Use:   "kriter",
	Short: "Rank decision choices with a declarative scoring configuration.",
	Long: `kriter evaluates a weighted graph of measures and metrics over a set
of choices and ranks the choices by their final metric score.

The configuration is a YAML file declaring measures (scored raw data
columns) and metrics (weighted combinations of other nodes); the raw
data comes from a CSV file or a SQLite database.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

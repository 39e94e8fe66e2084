// Command generate_dataset produces a synthetic decision configuration
// and a matching CSV data file, for benchmarks and demos.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kriterhq/kriter/internal/testutils"
)

func main() {
	var (
		measures = flag.Int("measures", 8, "Number of measures to generate")
		choices  = flag.Int("choices", 50, "Number of choices to generate")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		outDir   = flag.String("output", "testdata/generated", "Output directory")
	)
	flag.Parse()

	if err := run(*measures, *choices, *seed, *outDir); err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}

	fmt.Printf("Generated dataset:\n")
	fmt.Printf("- Config:   %s\n", filepath.Join(*outDir, "config.yaml"))
	fmt.Printf("- Data:     %s\n", filepath.Join(*outDir, "data.csv"))
	fmt.Printf("- Measures: %d\n", *measures)
	fmt.Printf("- Choices:  %d\n", *choices)
	fmt.Printf("- Seed:     %d\n", *seed)
}

func run(measures, choices int, seed int64, outDir string) error {
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	dataset := testutils.GenerateDataset(measures, choices, seed)

	configFile, err := os.Create(filepath.Join(outDir, "config.yaml"))
	if err != nil {
		return err
	}
	defer configFile.Close()
	if err := dataset.WriteConfigYAML(configFile); err != nil {
		return err
	}

	dataFile, err := os.Create(filepath.Join(outDir, "data.csv"))
	if err != nil {
		return err
	}
	defer dataFile.Close()
	return dataset.WriteCSV(dataFile)
}

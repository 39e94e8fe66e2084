package providers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

// choiceColumn is the required header of the CSV column holding choice
// identifiers. Every other column is a raw-value source.
const choiceColumn = "choice"

var _ ports.ValueProvider = (*CSVProvider)(nil)

// CSVProvider reads raw values from a wide CSV table: one row per
// choice, one column per source. Cells parse as numbers first, then as
// booleans; an empty cell means the value is unavailable for that
// (source, choice) pair.
type CSVProvider struct {
	values  table
	choices []string
}

// NewCSVProviderFromFile reads and parses a CSV file into a provider.
func NewCSVProviderFromFile(path string) (*CSVProvider, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	p, err := NewCSVProvider(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// NewCSVProvider parses CSV data into a provider. The header row must
// contain a "choice" column; choice identifiers must be unique.
func NewCSVProvider(r io.Reader) (*CSVProvider, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	choiceIdx := -1
	for i, name := range header {
		if name == choiceColumn {
			choiceIdx = i
			break
		}
	}
	if choiceIdx < 0 {
		return nil, fmt.Errorf("%w: CSV header has no %q column",
			domain.ErrInvalidConfiguration, choiceColumn)
	}

	values := make(table)
	for _, name := range header {
		if name != choiceColumn {
			values[name] = make(map[string]domain.Value)
		}
	}

	var choices []string
	seen := make(map[string]struct{})
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		choice := strings.TrimSpace(record[choiceIdx])
		if choice == "" {
			return nil, fmt.Errorf("CSV line %d: empty choice identifier", line)
		}
		if _, dup := seen[choice]; dup {
			return nil, fmt.Errorf("CSV line %d: %w: %q", line, domain.ErrDuplicateChoice, choice)
		}
		seen[choice] = struct{}{}
		choices = append(choices, choice)

		for i, cell := range record {
			if i == choiceIdx {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				// Absent value: lookups for this pair report unavailable.
				continue
			}
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("CSV line %d, column %q: %w", line, header[i], err)
			}
			values[header[i]][choice] = v
		}
	}

	return &CSVProvider{values: values, choices: choices}, nil
}

// parseCell converts a CSV cell to a raw value, preferring numeric
// interpretation so "1" stays a number rather than a boolean.
func parseCell(cell string) (domain.Value, error) {
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return domain.NumberValue(f), nil
	}
	if b, err := strconv.ParseBool(cell); err == nil {
		return domain.BoolValue(b), nil
	}
	return domain.Value{}, fmt.Errorf("cannot parse %q as number or bool", cell)
}

// Choices returns the choice identifiers in file order, ready to hand
// to the evaluator as the run's choice set.
func (p *CSVProvider) Choices() []string {
	out := make([]string, len(p.choices))
	copy(out, p.choices)
	return out
}

// Lookup returns the raw value for a (source, choice) pair.
func (p *CSVProvider) Lookup(source, choice string) (domain.Value, bool) {
	return p.values.lookup(source, choice)
}

// Column returns the raw values for one source across a choice set.
func (p *CSVProvider) Column(source string, choices []string) ([]domain.Value, error) {
	return p.values.column(source, choices)
}

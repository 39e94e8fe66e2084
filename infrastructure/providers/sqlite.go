package providers

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

// DefaultSQLiteTable is the table queried when no table name is given.
const DefaultSQLiteTable = "raw_values"

// identRegex restricts table names to plain identifiers, since table
// names cannot be bound as query parameters.
var identRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

var _ ports.ValueProvider = (*SQLiteProvider)(nil)

// SQLiteProvider reads raw values from a SQLite table in long format:
// one row per (choice, source) pair with columns
//
//	choice TEXT, source TEXT, kind TEXT, value REAL
//
// where kind is "number" or "bool" (booleans stored as 0/1). The whole
// table is loaded at construction time; evaluation never touches the
// database.
type SQLiteProvider struct {
	values  table
	choices []string
}

// NewSQLiteProvider opens the database at path, loads every row of the
// named table (DefaultSQLiteTable when table is empty), and closes the
// connection again.
func NewSQLiteProvider(ctx context.Context, path, tableName string) (*SQLiteProvider, error) {
	if tableName == "" {
		tableName = DefaultSQLiteTable
	}
	if !identRegex.MatchString(tableName) {
		return nil, fmt.Errorf("%w: invalid table name %q",
			domain.ErrInvalidConfiguration, tableName)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer db.Close()

	return loadSQLite(ctx, db, tableName)
}

// loadSQLite reads all rows of the value table into memory.
func loadSQLite(ctx context.Context, db *sql.DB, tableName string) (*SQLiteProvider, error) {
	query := fmt.Sprintf("SELECT choice, source, kind, value FROM %s ORDER BY rowid", tableName)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", tableName, err)
	}
	defer rows.Close()

	values := make(table)
	var choices []string
	seen := make(map[string]struct{})

	for rows.Next() {
		var choice, source, kind string
		var raw float64
		if err := rows.Scan(&choice, &source, &kind, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		var v domain.Value
		switch kind {
		case "number":
			v = domain.NumberValue(raw)
		case "bool":
			v = domain.BoolValue(raw != 0)
		default:
			return nil, fmt.Errorf("row (%s, %s): unknown kind %q", choice, source, kind)
		}

		byChoice, ok := values[source]
		if !ok {
			byChoice = make(map[string]domain.Value)
			values[source] = byChoice
		}
		if _, dup := byChoice[choice]; dup {
			return nil, fmt.Errorf("%w: (%s, %s) appears twice in %s",
				domain.ErrDuplicateChoice, choice, source, tableName)
		}
		byChoice[choice] = v

		if _, ok := seen[choice]; !ok {
			seen[choice] = struct{}{}
			choices = append(choices, choice)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", tableName, err)
	}

	return &SQLiteProvider{values: values, choices: choices}, nil
}

// Choices returns the choice identifiers in first-seen row order.
func (p *SQLiteProvider) Choices() []string {
	out := make([]string, len(p.choices))
	copy(out, p.choices)
	return out
}

// Lookup returns the raw value for a (source, choice) pair.
func (p *SQLiteProvider) Lookup(source, choice string) (domain.Value, bool) {
	return p.values.lookup(source, choice)
}

// Column returns the raw values for one source across a choice set.
func (p *SQLiteProvider) Column(source string, choices []string) ([]domain.Value, error) {
	return p.values.column(source, choices)
}

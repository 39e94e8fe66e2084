package providers

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kriterhq/kriter/internal/domain"
)

// createTestDB writes a SQLite database with the long-format value
// table and returns its path.
func createTestDB(t *testing.T, table string, rows [][]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "values.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE " + table + " (choice TEXT, source TEXT, kind TEXT, value REAL)")
	require.NoError(t, err)

	for _, row := range rows {
		_, err = db.Exec("INSERT INTO "+table+" (choice, source, kind, value) VALUES (?, ?, ?, ?)",
			row...)
		require.NoError(t, err)
	}
	return path
}

// TestNewSQLiteProvider verifies loading the long-format table,
// including boolean decoding and first-seen choice order.
func TestNewSQLiteProvider(t *testing.T) {
	path := createTestDB(t, DefaultSQLiteTable, [][]any{
		{"beta", "battery_hours", "number", 6.0},
		{"alpha", "battery_hours", "number", 11.5},
		{"alpha", "warranty", "bool", 1.0},
		{"beta", "warranty", "bool", 0.0},
	})

	provider, err := NewSQLiteProvider(context.Background(), path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"beta", "alpha"}, provider.Choices())

	v, ok := provider.Lookup("battery_hours", "alpha")
	require.True(t, ok)
	assert.Equal(t, domain.NumberValue(11.5), v)

	v, ok = provider.Lookup("warranty", "beta")
	require.True(t, ok)
	assert.Equal(t, domain.BoolValue(false), v)

	column, err := provider.Column("battery_hours", []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Value{domain.NumberValue(11.5), domain.NumberValue(6)}, column)

	_, err = provider.Column("battery_hours", []string{"ghost"})
	assert.ErrorIs(t, err, domain.ErrMissingValue)
}

// TestNewSQLiteProvider_customTable verifies the table name override.
func TestNewSQLiteProvider_customTable(t *testing.T) {
	path := createTestDB(t, "my_values", [][]any{
		{"a", "x", "number", 1.0},
	})

	provider, err := NewSQLiteProvider(context.Background(), path, "my_values")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, provider.Choices())
}

// TestNewSQLiteProvider_errors covers invalid table names, unknown
// kinds, and duplicate rows.
func TestNewSQLiteProvider_errors(t *testing.T) {
	t.Run("invalid table name", func(t *testing.T) {
		_, err := NewSQLiteProvider(context.Background(), "ignored.db", "bad name; drop")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	})

	t.Run("unknown kind", func(t *testing.T) {
		path := createTestDB(t, DefaultSQLiteTable, [][]any{
			{"a", "x", "string", 1.0},
		})
		_, err := NewSQLiteProvider(context.Background(), path, "")
		assert.Error(t, err)
	})

	t.Run("duplicate row", func(t *testing.T) {
		path := createTestDB(t, DefaultSQLiteTable, [][]any{
			{"a", "x", "number", 1.0},
			{"a", "x", "number", 2.0},
		})
		_, err := NewSQLiteProvider(context.Background(), path, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateChoice)
	})
}

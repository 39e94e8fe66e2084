package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewScoreMatrix verifies construction checks and copy semantics.
func TestNewScoreMatrix(t *testing.T) {
	choices := []string{"a", "b"}
	scores := map[string][]float64{
		"m":     {0.1, 0.2},
		"final": {0.9, 0.8},
	}

	matrix, err := NewScoreMatrix(choices, "final", scores)
	require.NoError(t, err)

	// Mutating the inputs must not leak into the matrix.
	scores["final"][0] = 0
	choices[0] = "mutated"

	got, ok := matrix.Score("a", "final")
	require.True(t, ok)
	assert.Equal(t, 0.9, got)
	assert.Equal(t, []string{"a", "b"}, matrix.Choices())
	assert.Equal(t, "final", matrix.Final())
	assert.Equal(t, []string{"final", "m"}, matrix.Nodes())
}

// TestNewScoreMatrix_invalid covers ragged columns and a missing final
// column.
func TestNewScoreMatrix_invalid(t *testing.T) {
	_, err := NewScoreMatrix([]string{"a", "b"}, "final", map[string][]float64{
		"final": {0.9},
	})
	assert.Error(t, err, "column length must match choice count")

	_, err = NewScoreMatrix([]string{"a"}, "final", map[string][]float64{
		"other": {0.9},
	})
	assert.Error(t, err, "final must have a column")
}

// TestScoreMatrix_Score verifies lookups for unknown names report a
// miss instead of a zero score.
func TestScoreMatrix_Score(t *testing.T) {
	matrix, err := NewScoreMatrix([]string{"a"}, "final", map[string][]float64{
		"final": {0.5},
	})
	require.NoError(t, err)

	_, ok := matrix.Score("a", "ghost")
	assert.False(t, ok)
	_, ok = matrix.Score("ghost", "final")
	assert.False(t, ok)
	_, ok = matrix.Column("ghost")
	assert.False(t, ok)
}

// TestScoreMatrix_Ranking verifies descending order with ties keeping
// their original input order.
func TestScoreMatrix_Ranking(t *testing.T) {
	matrix, err := NewScoreMatrix(
		[]string{"low", "tied1", "high", "tied2"},
		"final",
		map[string][]float64{
			"final": {0.1, 0.5, 0.9, 0.5},
		},
	)
	require.NoError(t, err)

	ranking := matrix.Ranking()
	require.Len(t, ranking, 4)
	assert.Equal(t, "high", ranking[0].Choice)
	assert.Equal(t, "tied1", ranking[1].Choice, "ties keep input order")
	assert.Equal(t, "tied2", ranking[2].Choice)
	assert.Equal(t, "low", ranking[3].Choice)
}

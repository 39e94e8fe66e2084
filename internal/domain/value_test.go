package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_accessors verifies typed access and the type mismatch
// errors for wrong-kind access.
func TestValue_accessors(t *testing.T) {
	n := NumberValue(3.5)
	f, err := n.Float()
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)
	_, err = n.Boolean()
	assert.ErrorIs(t, err, ErrTypeMismatch)

	b := BoolValue(true)
	got, err := b.Boolean()
	require.NoError(t, err)
	assert.True(t, got)
	_, err = b.Float()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

// TestValue_String verifies rendering for reports and error messages.
func TestValue_String(t *testing.T) {
	assert.Equal(t, "3.5", NumberValue(3.5).String())
	assert.Equal(t, "42", NumberValue(42).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "false", BoolValue(false).String())
}

package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kriterhq/kriter/infrastructure/scorers"
)

const validYAML = `
measures:
  - name: battery
    source: battery_hours
    scoring:
      range: {worst: 2, best: 12}
  - name: rating
    source: user_rating
    scoring:
      star: {min: 1, max: 5}
metrics:
  - name: overall
    factors:
      - {name: battery, weight: 2}
      - {name: rating, weight: 1}
final: overall
`

// newLoader builds a ConfigLoader over the real scorer registry.
func newLoader(t *testing.T) *ConfigLoader {
	t.Helper()

	loader, err := NewConfigLoader(scorers.Registry{})
	require.NoError(t, err)
	return loader
}

// TestConfigLoader_LoadFromReader verifies the happy path from YAML to
// compiled graph.
func TestConfigLoader_LoadFromReader(t *testing.T) {
	loader := newLoader(t)

	graph, err := loader.LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, graph.Len())
	assert.Equal(t, "overall", graph.Final())
}

// TestConfigLoader_LoadFromFile verifies loading from disk.
func TestConfigLoader_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0600))

	loader := newLoader(t)
	graph, err := loader.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "overall", graph.Final())

	_, err = loader.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestConfigLoader_parseErrors verifies strict decoding: malformed YAML
// and unknown fields are both rejected.
func TestConfigLoader_parseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed YAML",
			yaml: "measures: [",
		},
		{
			name: "unknown top-level field",
			yaml: validYAML + "\nextra_field: true\n",
		},
		{
			name: "misspelled measure field",
			yaml: `
measures:
  - name: battery
    sourze: battery_hours
    scoring:
      range: {worst: 2, best: 12}
metrics:
  - name: overall
    factors:
      - {name: battery, weight: 1}
final: overall
`,
		},
		{
			name: "unknown scoring variant",
			yaml: `
measures:
  - name: battery
    source: battery_hours
    scoring:
      quadratic: {a: 1}
metrics:
  - name: overall
    factors:
      - {name: battery, weight: 1}
final: overall
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t)
			_, err := loader.LoadFromReader(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

// TestConfigLoader_validationErrors verifies struct-level validation
// failures surface before graph construction.
func TestConfigLoader_validationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing final",
			yaml: `
measures:
  - name: battery
    source: battery_hours
    scoring:
      range: {worst: 2, best: 12}
metrics:
  - name: overall
    factors:
      - {name: battery, weight: 1}
`,
		},
		{
			name: "no measures",
			yaml: `
measures: []
metrics:
  - name: overall
    factors:
      - {name: battery, weight: 1}
final: overall
`,
		},
		{
			name: "measure name with newline",
			yaml: `
measures:
  - name: "bad\nname"
    source: battery_hours
    scoring:
      range: {worst: 2, best: 12}
metrics:
  - name: overall
    factors:
      - {name: "bad\nname", weight: 1}
final: overall
`,
		},
		{
			name: "measure name with surrounding whitespace",
			yaml: `
measures:
  - name: " battery "
    source: battery_hours
    scoring:
      range: {worst: 2, best: 12}
metrics:
  - name: overall
    factors:
      - {name: " battery ", weight: 1}
final: overall
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t)
			_, err := loader.LoadFromReader(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

// TestConfigLoader_cache verifies that semantically identical configs
// share one compiled graph until the cache is cleared, regardless of
// formatting differences.
func TestConfigLoader_cache(t *testing.T) {
	loader := newLoader(t)

	first, err := loader.LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)

	// Same content, different formatting.
	reformatted := strings.ReplaceAll(validYAML, "{worst: 2, best: 12}", "{ worst: 2, best: 12 }")
	second, err := loader.LoadFromReader(strings.NewReader(reformatted))
	require.NoError(t, err)
	assert.Same(t, first, second, "identical configs should share a cached graph")

	loader.ClearCache()
	third, err := loader.LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)
	assert.NotSame(t, first, third, "clearing the cache forces recompilation")
}

// TestNewConfigLoader_nilRegistry verifies the constructor guard.
func TestNewConfigLoader_nilRegistry(t *testing.T) {
	_, err := NewConfigLoader(nil)
	assert.Error(t, err)
}

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kriterhq/kriter/infrastructure/providers"
	"github.com/kriterhq/kriter/internal/domain"
)

// sampleReport builds a small two-choice report for writer tests.
func sampleReport(t *testing.T) *Report {
	t.Helper()

	matrix, err := domain.NewScoreMatrix(
		[]string{"alpha", "beta"},
		"overall",
		map[string][]float64{
			"battery": {1, 0.5},
			"overall": {0.9, 0.45},
		},
	)
	require.NoError(t, err)

	provider := providers.NewStaticProvider(map[string]map[string]domain.Value{
		"battery_hours": {
			"alpha": domain.NumberValue(12),
			"beta":  domain.NumberValue(7),
		},
	})

	measures := []domain.Measure{{Name: "battery", Source: "battery_hours"}}
	docs := map[string]string{"battery": "Battery life in hours."}

	rep, err := Build(matrix, measures, []string{"overall"}, docs, provider)
	require.NoError(t, err)
	return rep
}

// TestBuild verifies report assembly: node order, ranking, raw values,
// and score lookups.
func TestBuild(t *testing.T) {
	rep := sampleReport(t)

	assert.Equal(t, "overall", rep.Final)
	assert.Equal(t, []string{"alpha", "beta"}, rep.Choices)
	assert.Equal(t, []string{"battery", "overall"}, rep.Nodes)
	assert.False(t, rep.GeneratedAt.IsZero())

	require.Len(t, rep.Ranking, 2)
	assert.Equal(t, "alpha", rep.Ranking[0].Choice)

	assert.Equal(t, "12", rep.Raw("alpha", "battery"))
	assert.Equal(t, "7", rep.Raw("beta", "battery"))
	assert.InDelta(t, 0.45, rep.Score("beta", "overall"), 1e-9)

	require.Len(t, rep.Measures, 1)
	assert.Equal(t, "Battery life in hours.", rep.Measures[0].Doc)
}

// TestBuild_errors verifies nil and mismatched inputs are rejected.
func TestBuild_errors(t *testing.T) {
	_, err := Build(nil, nil, nil, nil, nil)
	assert.Error(t, err)

	matrix, err := domain.NewScoreMatrix([]string{"a"}, "overall", map[string][]float64{
		"overall": {1},
	})
	require.NoError(t, err)

	// A displayed node with no score column is a wiring bug.
	_, err = Build(matrix, []domain.Measure{{Name: "ghost", Source: "s"}}, []string{"overall"}, nil, nil)
	assert.Error(t, err)
}

// TestWriteJSON verifies the JSON document structure round-trips.
func TestWriteJSON(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))

	var decoded struct {
		Final   string `json:"final"`
		Ranking []struct {
			Choice string  `json:"choice"`
			Score  float64 `json:"score"`
		} `json:"ranking"`
		Scores map[string]map[string]float64 `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "overall", decoded.Final)
	require.Len(t, decoded.Ranking, 2)
	assert.Equal(t, "alpha", decoded.Ranking[0].Choice)
	assert.InDelta(t, 0.9, decoded.Scores["alpha"]["overall"], 1e-9)
	assert.InDelta(t, 0.5, decoded.Scores["beta"]["battery"], 1e-9)
}

// TestWriteHTML verifies the page renders and contains the ranking and
// raw data.
func TestWriteHTML(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, rep))

	html := buf.String()
	assert.Contains(t, html, "<title>Ranking: overall</title>")
	assert.Contains(t, html, "alpha")
	assert.Contains(t, html, "90.0%")
	assert.Contains(t, html, "Battery life in hours.")
	assert.Contains(t, html, "background-color: hsl(")
}

// TestWriteTable verifies the terminal ranking table.
func TestWriteTable(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rep))

	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "90.0%")
}

// TestWriteBreakdown verifies the per-node score table.
func TestWriteBreakdown(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteBreakdown(&buf, rep))

	out := buf.String()
	assert.Contains(t, out, "battery")
	assert.Contains(t, out, "overall")
	assert.Contains(t, out, "50.0%")
}

// TestScoreCell verifies gradient clamping for out-of-range scores.
func TestScoreCell(t *testing.T) {
	assert.Equal(t, scoreCell(0), scoreCell(-5), "scores below zero clamp to red")
	assert.Equal(t, scoreCell(1), scoreCell(2), "scores above one clamp to green")
	assert.NotEqual(t, scoreCell(0), scoreCell(1))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScoring_Variant verifies the exactly-one rule of the scoring
// union.
func TestScoring_Variant(t *testing.T) {
	tests := []struct {
		name    string
		scoring Scoring
		want    string
		wantErr bool
	}{
		{
			name:    "single variant",
			scoring: Scoring{Star: &StarConfig{Min: 1, Max: 5}},
			want:    "star",
		},
		{
			name:    "bool variant",
			scoring: Scoring{Bool: &BoolConfig{Good: true}},
			want:    "bool",
		},
		{
			name:    "no variant",
			scoring: Scoring{},
			wantErr: true,
		},
		{
			name: "two variants",
			scoring: Scoring{
				Star:     &StarConfig{Min: 1, Max: 5},
				Relative: &RelativeConfig{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.scoring.Variant()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestConfig_byName verifies the name lookup helpers.
func TestConfig_byName(t *testing.T) {
	config := &Config{
		Measures: []Measure{{Name: "m1", Source: "s1"}},
		Metrics:  []Metric{{Name: "overall", Factors: []Factor{{Name: "m1", Weight: 1}}}},
		Final:    "overall",
	}

	m, ok := config.MeasureByName("m1")
	require.True(t, ok)
	assert.Equal(t, "s1", m.Source)
	_, ok = config.MeasureByName("ghost")
	assert.False(t, ok)

	metric, ok := config.MetricByName("overall")
	require.True(t, ok)
	assert.Len(t, metric.Factors, 1)
	_, ok = config.MetricByName("ghost")
	assert.False(t, ok)
}

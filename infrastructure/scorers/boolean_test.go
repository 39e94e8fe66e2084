package scorers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kriterhq/kriter/internal/domain"
)

// TestBoolScorer_Score verifies the match-the-good-value rule and the
// boolean type requirement.
func TestBoolScorer_Score(t *testing.T) {
	tests := []struct {
		name    string
		config  domain.BoolConfig
		column  []domain.Value
		want    []float64
		wantErr error
	}{
		{
			name:   "true is good",
			config: domain.BoolConfig{Good: true},
			column: bools(true, false, true),
			want:   []float64{1, 0, 1},
		},
		{
			name:   "false is good",
			config: domain.BoolConfig{Good: false},
			column: bools(true, false),
			want:   []float64{0, 1},
		},
		{
			name:    "numeric value rejected",
			config:  domain.BoolConfig{Good: true},
			column:  nums(1),
			wantErr: domain.ErrTypeMismatch,
		},
		{
			name:    "empty column rejected",
			config:  domain.BoolConfig{Good: true},
			column:  nil,
			wantErr: ErrEmptyColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer, err := NewBoolScorer(tt.config)
			require.NoError(t, err)

			got, err := scorer.Score(tt.column)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

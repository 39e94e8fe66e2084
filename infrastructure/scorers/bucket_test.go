package scorers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kriterhq/kriter/internal/domain"
)

// TestNewBucketScorer verifies bucket validation: ordering, contiguity,
// and score bounds.
func TestNewBucketScorer(t *testing.T) {
	tests := []struct {
		name    string
		config  domain.BucketConfig
		wantErr bool
	}{
		{
			name: "valid contiguous buckets",
			config: domain.BucketConfig{Buckets: []domain.BucketRange{
				{Min: 0, Max: 10, Val: 0},
				{Min: 10, Max: 20, Val: 0.5},
				{Min: 20, Max: 30, Val: 1},
			}},
		},
		{
			name: "unsorted input is accepted and sorted",
			config: domain.BucketConfig{Buckets: []domain.BucketRange{
				{Min: 10, Max: 20, Val: 0.5},
				{Min: 0, Max: 10, Val: 0},
			}},
		},
		{
			name: "gap between buckets",
			config: domain.BucketConfig{Buckets: []domain.BucketRange{
				{Min: 0, Max: 10, Val: 0},
				{Min: 15, Max: 20, Val: 1},
			}},
			wantErr: true,
		},
		{
			name: "overlapping buckets",
			config: domain.BucketConfig{Buckets: []domain.BucketRange{
				{Min: 0, Max: 10, Val: 0},
				{Min: 5, Max: 20, Val: 1},
			}},
			wantErr: true,
		},
		{
			name: "inverted bucket",
			config: domain.BucketConfig{Buckets: []domain.BucketRange{
				{Min: 10, Max: 0, Val: 0.5},
			}},
			wantErr: true,
		},
		{
			name: "score above one",
			config: domain.BucketConfig{Buckets: []domain.BucketRange{
				{Min: 0, Max: 10, Val: 1.5},
			}},
			wantErr: true,
		},
		{
			name:    "no buckets",
			config:  domain.BucketConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer, err := NewBucketScorer(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bucket", scorer.Name())
		})
	}
}

// TestBucketScorer_Score verifies half-open matching: a bucket covers
// [min, max), so a value on the upper bound belongs to the next bucket
// and the overall maximum is outside every bucket.
func TestBucketScorer_Score(t *testing.T) {
	scorer, err := NewBucketScorer(domain.BucketConfig{Buckets: []domain.BucketRange{
		{Min: 0, Max: 10, Val: 0.25},
		{Min: 10, Max: 20, Val: 1.0},
	}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		column  []domain.Value
		want    []float64
		wantErr error
	}{
		{
			name:   "values inside buckets",
			column: nums(0, 5, 15),
			want:   []float64{0.25, 0.25, 1.0},
		},
		{
			name:   "boundary belongs to upper bucket",
			column: nums(10),
			want:   []float64{1.0},
		},
		{
			name:    "upper bound outside every bucket",
			column:  nums(20),
			wantErr: domain.ErrNoBucket,
		},
		{
			name:    "value below all buckets",
			column:  nums(-1),
			wantErr: domain.ErrNoBucket,
		},
		{
			name:    "boolean value rejected",
			column:  bools(false),
			wantErr: domain.ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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

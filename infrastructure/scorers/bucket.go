package scorers

import (
	"fmt"
	"sort"

	"github.com/kriterhq/kriter/internal/domain"
	"github.com/kriterhq/kriter/internal/ports"
)

var _ ports.Scorer = (*BucketScorer)(nil)

// BucketScorer lumps raw values into user-defined ranges that all
// receive the same score. Matching is half-open: a bucket covers
// [min, max). A raw value outside every bucket is an error, never a
// default score.
type BucketScorer struct {
	// buckets are stored sorted by ascending min and validated to be
	// contiguous.
	buckets []domain.BucketRange
}

// NewBucketScorer creates a BucketScorer from validated configuration.
// Buckets are sorted by min; each bucket must have min < max and a score
// in [0, 1], and adjacent buckets must be contiguous (no gaps, no
// overlap). Any violation is an error wrapping
// domain.ErrInvalidConfiguration.
func NewBucketScorer(config domain.BucketConfig) (*BucketScorer, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("bucket configuration: %w", err)
	}

	buckets := make([]domain.BucketRange, len(config.Buckets))
	copy(buckets, config.Buckets)
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Min < buckets[j].Min })

	for i, b := range buckets {
		if b.Min >= b.Max {
			return nil, fmt.Errorf("%w: bucket min %g must be < max %g",
				domain.ErrInvalidConfiguration, b.Min, b.Max)
		}
		if i > 0 && buckets[i-1].Max != b.Min {
			return nil, fmt.Errorf("%w: buckets must be contiguous, but [%g, %g) is followed by [%g, %g)",
				domain.ErrInvalidConfiguration,
				buckets[i-1].Min, buckets[i-1].Max, b.Min, b.Max)
		}
	}

	return &BucketScorer{buckets: buckets}, nil
}

// Name returns the scorer variant name.
func (s *BucketScorer) Name() string { return "bucket" }

// Score assigns each raw value the score of the first bucket whose
// [min, max) range contains it. A value no bucket matches yields an
// error wrapping domain.ErrNoBucket that names the value.
func (s *BucketScorer) Score(column []domain.Value) ([]float64, error) {
	if len(column) == 0 {
		return nil, ErrEmptyColumn
	}

	raw, err := floats(column)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(raw))
	for i, v := range raw {
		matched := false
		for _, b := range s.buckets {
			if v >= b.Min && v < b.Max {
				scores[i] = b.Val
				matched = true
				break
			}
		}
		if !matched {
			return nil, &domain.ValueError{
				Index: i,
				Value: column[i],
				Err: fmt.Errorf("%w: covered range is [%g, %g)",
					domain.ErrNoBucket, s.buckets[0].Min, s.buckets[len(s.buckets)-1].Max),
			}
		}
	}
	return scores, nil
}

// Doc describes the scoring rule for reports.
func (s *BucketScorer) Doc() string {
	return fmt.Sprintf("Bucketed into %d ranges between %g and %g.",
		len(s.buckets), s.buckets[0].Min, s.buckets[len(s.buckets)-1].Max)
}

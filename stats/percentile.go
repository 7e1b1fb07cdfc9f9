// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// Percentile returns the rank'th percentile of s, where rank is a
// percent in the open interval (0, 100), using the NIST "type 6" rank
// interpolation (R's type=6). This interpolation family is a
// deliberate choice distinct from the more common type 7; callers
// needing a different convention must convert externally.
//
// A previously computed value for rank supplied in partial is returned
// as-is. An empty sample fails with ErrEmptySample; a rank outside
// (0, 100) fails with ErrPercentileRange.
func Percentile(s Sample, rank float64, partial *Partial) (float64, error) {
	if len(s.Xs) == 0 {
		return 0, ErrEmptySample
	}
	if err := checkRank(rank); err != nil {
		return 0, err
	}
	if v, ok := partial.percentile(rank); ok {
		return v, nil
	}
	return interpolate(s.sortedXs(), rank), nil
}

// Percentiles returns the percentile for each requested rank, keyed by
// rank. Ranks are processed in the order given; the first invalid rank
// fails the whole call and no further ranks are computed.
func Percentiles(s Sample, ranks []float64, partial *Partial) (map[float64]float64, error) {
	if len(s.Xs) == 0 {
		return nil, ErrEmptySample
	}
	var sorted []float64
	out := make(map[float64]float64, len(ranks))
	for _, rank := range ranks {
		if err := checkRank(rank); err != nil {
			return nil, err
		}
		if v, ok := partial.percentile(rank); ok {
			out[rank] = v
			continue
		}
		if sorted == nil {
			// One sort pass covers every remaining rank.
			sorted = s.sortedXs()
		}
		out[rank] = interpolate(sorted, rank)
	}
	return out, nil
}

func checkRank(rank float64) error {
	if rank <= 0 || rank >= 100 {
		return fmt.Errorf("%w: %v", ErrPercentileRange, rank)
	}
	return nil
}

// interpolate computes the rank'th percentile of the ascending,
// non-empty slice xs. rank must already be validated.
//
// The real-valued position is k = (rank/100)*(n+1). Positions below
// the first sample return the minimum; positions at or beyond the last
// sample return the maximum; everything in between interpolates
// linearly between the two samples straddling k.
func interpolate(xs []float64, rank float64) float64 {
	k := rank / 100 * float64(len(xs)+1)
	if k < 1 {
		return xs[0]
	}
	// k >= 1, so floor(k)-1 is a valid index.
	idx := int(math.Floor(k)) - 1
	if idx >= len(xs)-1 {
		return xs[len(xs)-1]
	}
	lower, upper := xs[idx], xs[idx+1]
	return lower + (k-math.Floor(k))*(upper-lower)
}

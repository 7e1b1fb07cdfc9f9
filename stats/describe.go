// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// ExclusionPolicy controls whether Describe removes Tukey-fence
// outliers before computing statistics.
type ExclusionPolicy int

const (
	// KeepOutliers computes every statistic from the full sample.
	KeepOutliers ExclusionPolicy = iota

	// ExcludeOnce removes the outliers of the original sample and
	// computes the statistics from the remaining values.
	ExcludeOnce

	// ExcludeRepeatedly re-derives fences on the shrinking inlier
	// set and keeps excluding until no value falls outside them. An
	// iteration that would remove every remaining value is skipped,
	// so the described set is never empty.
	ExcludeRepeatedly
)

// DescribeOpts configures Describe. The zero value computes the
// standard record from the full sample.
type DescribeOpts struct {
	// Percentiles lists ranks in (0, 100) to report in addition to
	// the quartiles 25, 50 and 75.
	Percentiles []float64

	// Exclude selects the outlier-exclusion policy.
	Exclude ExclusionPolicy
}

// A Summary is the aggregate descriptive-statistics record of a
// sample.
//
// When outliers were excluded, every field except Bounds and Outliers
// describes the post-exclusion values; Bounds and Outliers always
// describe the original sample, so a reader can audit what was
// excluded from what population.
type Summary struct {
	// N is the number of values the statistics describe,
	// post-exclusion if outliers were excluded.
	N int

	// Total is the arithmetic sum.
	Total float64

	// Mean is the arithmetic mean.
	Mean float64

	// Variance is the Bessel-corrected sample variance.
	Variance float64

	// StdDev is the sample standard deviation.
	StdDev float64

	// StdDevRatio is the coefficient of variation |StdDev/Mean|,
	// 0 when Mean is 0.
	StdDevRatio float64

	// Min and Max are the smallest and largest described values.
	Min, Max float64

	// Median is the 50th percentile. It always equals
	// Percentiles[50].
	Median float64

	// Percentiles maps each computed rank to its value. It always
	// contains ranks 25, 50 and 75, plus any ranks requested in
	// DescribeOpts.Percentiles.
	Percentiles map[float64]float64

	// Freq is the frequency distribution of the described values.
	Freq map[float64]int

	// Mode is the most frequent value or values.
	Mode ModeResult

	// Bounds are the Tukey fences of the original sample. They are
	// never recomputed after exclusion.
	Bounds OutlierBounds

	// Outliers are the original sample's values strictly outside
	// Bounds, in ascending order (their relative order in the
	// sorted sample), whether or not they were excluded.
	Outliers []float64
}

// Describe computes the whole statistics record for s.
//
// The computation follows the statistic dependency graph so that no
// intermediate is derived twice: the sort feeds the percentiles, the
// quartiles feed the Tukey fences, the fences feed the outlier
// partition, and the moments feed each other through a Partial (total
// into mean, mean into variance, variance into standard deviation).
//
// The result is invariant under permutation of s.Xs.
func Describe(s Sample, opts *DescribeOpts) (*Summary, error) {
	if len(s.Xs) == 0 {
		return nil, ErrEmptySample
	}
	if opts == nil {
		opts = &DescribeOpts{}
	}

	sorted := Sample{Xs: s.sortedXs(), Sorted: true}
	ranks := append([]float64{25, 50, 75}, opts.Percentiles...)
	pcts, err := Percentiles(sorted, ranks, nil)
	if err != nil {
		return nil, err
	}
	bounds, err := TukeyBounds(sorted, &Partial{Percentiles: pcts})
	if err != nil {
		return nil, err
	}
	outliers, rest := bounds.Partition(sorted.Xs)

	// desc is the set the statistics will describe.
	desc := sorted
	if opts.Exclude != KeepOutliers && len(outliers) > 0 && len(rest) > 0 {
		desc = Sample{Xs: rest, Sorted: true}
		if opts.Exclude == ExcludeRepeatedly {
			if desc, err = excludeRepeatedly(desc); err != nil {
				return nil, err
			}
		}
		// The percentiles must describe the surviving values;
		// the fences and the outlier list keep describing the
		// original sample.
		if pcts, err = Percentiles(desc, ranks, nil); err != nil {
			return nil, err
		}
	}

	total, err := Total(desc)
	if err != nil {
		return nil, err
	}
	n := desc.Count()
	part := &Partial{N: &n, Total: &total, Percentiles: pcts, Bounds: &bounds}

	mean, err := Mean(desc, part)
	if err != nil {
		return nil, err
	}
	part.Mean = &mean

	variance, err := Variance(desc, part)
	if err != nil {
		return nil, err
	}
	part.Variance = &variance

	stdDev, err := StdDev(desc, part)
	if err != nil {
		return nil, err
	}
	part.StdDev = &stdDev

	ratio, err := StdDevRatio(desc, part)
	if err != nil {
		return nil, err
	}

	freq, err := Frequency(desc)
	if err != nil {
		return nil, err
	}
	part.Freq = freq

	mode, err := Mode(desc, part)
	if err != nil {
		return nil, err
	}

	return &Summary{
		N:           n,
		Total:       total,
		Mean:        mean,
		Variance:    variance,
		StdDev:      stdDev,
		StdDevRatio: ratio,
		Min:         desc.Xs[0],
		Max:         desc.Xs[len(desc.Xs)-1],
		Median:      pcts[50],
		Percentiles: pcts,
		Freq:        freq,
		Mode:        mode,
		Bounds:      bounds,
		Outliers:    outliers,
	}, nil
}

// excludeRepeatedly re-applies fence derivation and exclusion to the
// shrinking inlier set until it is stable. desc must be sorted and
// non-empty; the result is sorted and non-empty.
func excludeRepeatedly(desc Sample) (Sample, error) {
	for {
		b, err := TukeyBounds(desc, nil)
		if err != nil {
			return Sample{}, err
		}
		out, rest := b.Partition(desc.Xs)
		if len(out) == 0 || len(rest) == 0 {
			// Stable, or excluding would empty the set.
			return desc, nil
		}
		desc = Sample{Xs: rest, Sorted: true}
	}
}

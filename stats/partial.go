// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Partial carries statistics the caller has already computed so that
// dependent operations can reuse them instead of rescanning the
// sample. Nil pointer and map fields mean "not known, derive it from
// the samples"; the zero value (and a nil *Partial) supplies nothing.
//
// Supplied values are trusted the same way Sample.Sorted is: nothing
// checks that a supplied mean actually is the mean of the samples.
type Partial struct {
	// N is the sample size.
	N *int

	// Total is the arithmetic sum of the samples.
	Total *float64

	// Mean is the arithmetic mean.
	Mean *float64

	// Variance is the Bessel-corrected sample variance.
	Variance *float64

	// M2 is a running sum of squared deviations from the mean as
	// maintained by a Welford accumulator. Together with N it
	// yields the variance without rescanning the samples.
	M2 *float64

	// StdDev is the sample standard deviation.
	StdDev *float64

	// Percentiles maps already-computed percentile ranks in
	// (0, 100) to their values. The map may be partial; ranks it
	// does not contain are computed from the samples.
	Percentiles map[float64]float64

	// Bounds are the Tukey outlier fences.
	Bounds *OutlierBounds

	// Freq is the frequency distribution of the samples.
	Freq map[float64]int
}

// The accessors below keep the nil-receiver and nil-field checks in
// one place so each operation reads as a plain fast-path test.

func (p *Partial) count() (int, bool) {
	if p == nil || p.N == nil {
		return 0, false
	}
	return *p.N, true
}

func (p *Partial) total() (float64, bool) {
	if p == nil || p.Total == nil {
		return 0, false
	}
	return *p.Total, true
}

func (p *Partial) mean() (float64, bool) {
	if p == nil || p.Mean == nil {
		return 0, false
	}
	return *p.Mean, true
}

func (p *Partial) variance() (float64, bool) {
	if p == nil || p.Variance == nil {
		return 0, false
	}
	return *p.Variance, true
}

func (p *Partial) m2() (float64, bool) {
	if p == nil || p.M2 == nil {
		return 0, false
	}
	return *p.M2, true
}

func (p *Partial) stdDev() (float64, bool) {
	if p == nil || p.StdDev == nil {
		return 0, false
	}
	return *p.StdDev, true
}

func (p *Partial) percentile(rank float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	v, ok := p.Percentiles[rank]
	return v, ok
}

func (p *Partial) bounds() (OutlierBounds, bool) {
	if p == nil || p.Bounds == nil {
		return OutlierBounds{}, false
	}
	return *p.Bounds, true
}

func (p *Partial) freq() (map[float64]int, bool) {
	if p == nil || p.Freq == nil {
		return nil, false
	}
	return p.Freq, true
}

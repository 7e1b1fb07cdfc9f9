// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Total returns the arithmetic sum of the samples.
func Total(s Sample) (float64, error) {
	if len(s.Xs) == 0 {
		return 0, ErrEmptySample
	}
	return floats.Sum(s.Xs), nil
}

// Mean returns the arithmetic mean of the samples. A mean supplied in
// partial is returned as-is; a supplied total and sample size are used
// without a pass over the samples.
func Mean(s Sample, partial *Partial) (float64, error) {
	if len(s.Xs) == 0 {
		return 0, ErrEmptySample
	}
	if m, ok := partial.mean(); ok {
		return m, nil
	}
	total, ok := partial.total()
	if !ok {
		total = floats.Sum(s.Xs)
	}
	n, ok := partial.count()
	if !ok {
		n = len(s.Xs)
	}
	return total / float64(n), nil
}

// Variance returns the sample variance with Bessel's correction,
// sum((x-mean)^2) / (n-1). A single-observation sample has variance 0
// rather than being undefined.
//
// Supplied values short-circuit in dependency order: a supplied
// variance is returned as-is; a supplied Welford M2 (with the sample
// size) yields the variance without rescanning; a supplied mean saves
// the first of the two passes. For the incremental single-pass
// strategy itself, see Welford.
func Variance(s Sample, partial *Partial) (float64, error) {
	if len(s.Xs) == 0 {
		return 0, ErrEmptySample
	}
	if v, ok := partial.variance(); ok {
		return v, nil
	}
	if m2, ok := partial.m2(); ok {
		n, ok := partial.count()
		if !ok {
			n = len(s.Xs)
		}
		if n < 2 {
			return 0, nil
		}
		return m2 / float64(n-1), nil
	}
	if len(s.Xs) == 1 {
		return 0, nil
	}
	mean, err := Mean(s, partial)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, x := range s.Xs {
		d := x - mean
		ss += d * d
	}
	return ss / float64(len(s.Xs)-1), nil
}

// StdDev returns the sample standard deviation, the square root of the
// (supplied or computed) variance.
func StdDev(s Sample, partial *Partial) (float64, error) {
	if len(s.Xs) == 0 {
		return 0, ErrEmptySample
	}
	if sd, ok := partial.stdDev(); ok {
		return sd, nil
	}
	v, err := Variance(s, partial)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// StdDevRatio returns the coefficient of variation
// |StdDev(s) / Mean(s)|, defined as 0 when the mean is 0.
func StdDevRatio(s Sample, partial *Partial) (float64, error) {
	if len(s.Xs) == 0 {
		return 0, ErrEmptySample
	}
	mean, err := Mean(s, partial)
	if err != nil {
		return 0, err
	}
	if mean == 0 {
		return 0, nil
	}
	sd, err := StdDev(s, partial)
	if err != nil {
		return 0, err
	}
	return math.Abs(sd / mean), nil
}

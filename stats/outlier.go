// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// OutlierBounds are Tukey fences: Lo = Q1 - 1.5*IQR and
// Hi = Q3 + 1.5*IQR, where IQR = Q3 - Q1 is the interquartile range.
// Values strictly outside [Lo, Hi] are outliers.
type OutlierBounds struct {
	Lo, Hi float64
}

// In reports whether x lies within the fences. A value exactly equal
// to a fence is an inlier.
func (b OutlierBounds) In(x float64) bool {
	return b.Lo <= x && x <= b.Hi
}

// Partition splits xs into the values strictly outside b and the rest,
// preserving each partition's relative order from xs.
func (b OutlierBounds) Partition(xs []float64) (out, in []float64) {
	in = make([]float64, 0, len(xs))
	for _, x := range xs {
		if b.In(x) {
			in = append(in, x)
		} else {
			out = append(out, x)
		}
	}
	return out, in
}

// TukeyBounds derives outlier fences from the 25th and 75th
// percentiles of s. Fences or quartiles supplied in partial are reused
// instead of recomputed. An empty sample fails with ErrEmptySample.
func TukeyBounds(s Sample, partial *Partial) (OutlierBounds, error) {
	if len(s.Xs) == 0 {
		return OutlierBounds{}, ErrEmptySample
	}
	if b, ok := partial.bounds(); ok {
		return b, nil
	}
	qs, err := Percentiles(s, []float64{25, 75}, partial)
	if err != nil {
		return OutlierBounds{}, err
	}
	q1, q3 := qs[25], qs[75]
	tolerance := (q3 - q1) * 1.5
	return OutlierBounds{q1 - tolerance, q3 + tolerance}, nil
}

// Outliers partitions s into the values strictly outside its Tukey
// fences and the remaining inliers, preserving each partition's
// relative order from s.Xs. Fences supplied in partial are reused.
func Outliers(s Sample, partial *Partial) (outliers, rest []float64, err error) {
	if len(s.Xs) == 0 {
		return nil, nil, ErrEmptySample
	}
	b, err := TukeyBounds(s, partial)
	if err != nil {
		return nil, nil, err
	}
	outliers, rest = b.Partition(s.Xs)
	return outliers, rest, nil
}

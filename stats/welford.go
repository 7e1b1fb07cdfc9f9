// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Welford accumulates a running mean and sum of squared deviations
// (M2) one observation at a time using Welford's algorithm. It is the
// single-pass counterpart of Variance: on the same data the two agree
// to within floating-point error, but a Welford never stores or
// rescans prior observations, so it suits carrying dispersion state
// across successive single-sample updates.
//
// The zero value is an empty accumulator.
type Welford struct {
	n    int
	mean float64
	m2   float64
}

// ResumeWelford reconstructs an accumulator from previously carried
// state, such as the N, Mean and M2 fields of a Partial.
func ResumeWelford(n int, mean, m2 float64) *Welford {
	return &Welford{n: n, mean: mean, m2: m2}
}

// Add incorporates one observation.
func (w *Welford) Add(x float64) {
	w.n++
	d := x - w.mean
	w.mean += d / float64(w.n)
	w.m2 += d * (x - w.mean)
}

// Merge folds the observations accumulated by o into w, as if every
// observation added to o had been added to w.
func (w *Welford) Merge(o Welford) {
	if o.n == 0 {
		return
	}
	if w.n == 0 {
		*w = o
		return
	}
	n := w.n + o.n
	d := o.mean - w.mean
	w.m2 += o.m2 + d*d*float64(w.n)*float64(o.n)/float64(n)
	w.mean += d * float64(o.n) / float64(n)
	w.n = n
}

// Count returns the number of observations accumulated.
func (w Welford) Count() int {
	return w.n
}

// Mean returns the running mean, 0 if nothing has been accumulated.
func (w Welford) Mean() float64 {
	return w.mean
}

// M2 returns the running sum of squared deviations from the mean.
func (w Welford) M2() float64 {
	return w.m2
}

// Variance returns the Bessel-corrected sample variance of the
// accumulated observations, 0 when there are fewer than two.
func (w Welford) Variance() float64 {
	if w.n < 2 {
		return 0
	}
	return w.m2 / float64(w.n-1)
}

// StdDev returns the sample standard deviation of the accumulated
// observations.
func (w Welford) StdDev() float64 {
	return math.Sqrt(w.Variance())
}

// Partial returns the accumulator state as a Partial, ready to thread
// into the two-pass entry points.
func (w Welford) Partial() *Partial {
	n, mean, m2 := w.n, w.mean, w.m2
	return &Partial{N: &n, Mean: &mean, M2: &m2}
}

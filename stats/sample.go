// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Sample is a collection of numeric observations.
type Sample struct {
	// Xs is the slice of observations.
	Xs []float64

	// Sorted indicates that Xs is already in ascending order. This
	// is a caller assertion, not something the package verifies;
	// asserting it for unsorted data silently produces wrong
	// results. When set, operations skip their sort pass.
	Sorted bool
}

// Count returns the number of observations in s. It is the one
// operation defined on an empty sample.
func (s Sample) Count() int {
	return len(s.Xs)
}

// Copy returns a Sample with a copied Xs slice.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts s in place in ascending order and returns s for method
// chaining. It is a no-op if s is already sorted.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Bounds returns the minimum and maximum observations, or (NaN, NaN)
// if the sample is empty.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// sortedXs returns s.Xs in ascending order without modifying s,
// copying only when a sort is actually needed.
func (s Sample) sortedXs() []float64 {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		return s.Xs
	}
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	sort.Float64s(xs)
	return xs
}

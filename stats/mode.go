// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "sort"

// Frequency returns the number of occurrences of every distinct value
// in s. The keys are exactly the distinct sample values and the counts
// sum to Count(s). An empty sample fails with ErrEmptySample.
func Frequency(s Sample) (map[float64]int, error) {
	if len(s.Xs) == 0 {
		return nil, ErrEmptySample
	}
	freq := make(map[float64]int)
	for _, x := range s.Xs {
		freq[x]++
	}
	return freq, nil
}

// A ModeResult reports the most frequently occurring values of a
// sample. It has three shapes: no mode (no value occurs more than
// once), a single mode, or a set of tied modes.
type ModeResult struct {
	// Values holds every value attaining the maximum frequency, in
	// ascending order. It is empty when the sample has no mode.
	Values []float64

	// Count is the frequency the modes attain, 0 when there is no
	// mode.
	Count int
}

// None reports whether the sample had no mode.
func (m ModeResult) None() bool {
	return len(m.Values) == 0
}

// Single returns the mode value if there is exactly one.
func (m ModeResult) Single() (float64, bool) {
	if len(m.Values) == 1 {
		return m.Values[0], true
	}
	return 0, false
}

// Mode finds the most frequent value or values of s. A frequency
// distribution supplied in partial is used instead of recounting. An
// empty sample fails with ErrEmptySample.
func Mode(s Sample, partial *Partial) (ModeResult, error) {
	if len(s.Xs) == 0 {
		return ModeResult{}, ErrEmptySample
	}
	freq, ok := partial.freq()
	if !ok {
		var err error
		if freq, err = Frequency(s); err != nil {
			return ModeResult{}, err
		}
	}
	max := 0
	for _, c := range freq {
		if c > max {
			max = c
		}
	}
	if max < 2 {
		return ModeResult{}, nil
	}
	var values []float64
	for v, c := range freq {
		if c == max {
			values = append(values, v)
		}
	}
	// Ascending order keeps ties reproducible across map iteration.
	sort.Float64s(values)
	return ModeResult{Values: values, Count: max}, nil
}

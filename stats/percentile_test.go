// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"testing"
)

func TestPercentile(t *testing.T) {
	s := Sample{Xs: []float64{5, 3, 4, 5, 1, 3, 1, 3}}
	testFunc(t, "Percentile", func(rank float64) float64 {
		v, err := Percentile(s, rank, nil)
		if err != nil {
			t.Fatalf("Percentile(%v) failed: %v", rank, err)
		}
		return v
	}, map[float64]float64{
		// Ranks whose real-valued position falls below the first
		// sample return the minimum.
		5:  1,
		10: 1,
		25: 1.5,
		50: 3,
		75: 4.75,
		// Positions at or beyond the last sample return the
		// maximum.
		95: 5,
		99: 5,
	})
}

func TestPercentileSingleton(t *testing.T) {
	s := Sample{Xs: []float64{42}}
	for _, rank := range []float64{1, 25, 50, 75, 99} {
		v, err := Percentile(s, rank, nil)
		if err != nil {
			t.Fatalf("Percentile(%v) failed: %v", rank, err)
		}
		if v != 42 {
			t.Errorf("Percentile(%v) of singleton = %v, want 42", rank, v)
		}
	}
}

func TestPercentileRange(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3}}
	for _, rank := range []float64{-5, 0, 100, 150} {
		if _, err := Percentile(s, rank, nil); !errors.Is(err, ErrPercentileRange) {
			t.Errorf("Percentile(%v) error = %v, want ErrPercentileRange", rank, err)
		}
	}

	// One invalid rank fails the whole batch, valid ranks included.
	if _, err := Percentiles(s, []float64{50, 101, 25}, nil); !errors.Is(err, ErrPercentileRange) {
		t.Errorf("Percentiles with invalid rank error = %v, want ErrPercentileRange", err)
	}
}

func TestPercentileEmpty(t *testing.T) {
	if _, err := Percentile(Sample{}, 50, nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("Percentile of empty error = %v, want ErrEmptySample", err)
	}
	if _, err := Percentiles(Sample{}, []float64{50}, nil); !errors.Is(err, ErrEmptySample) {
		t.Errorf("Percentiles of empty error = %v, want ErrEmptySample", err)
	}
}

func TestPercentiles(t *testing.T) {
	s := Sample{Xs: []float64{5, 3, 4, 5, 1, 3, 1, 3}}
	got, err := Percentiles(s, []float64{25, 50, 75}, nil)
	if err != nil {
		t.Fatalf("Percentiles failed: %v", err)
	}
	want := map[float64]float64{25: 1.5, 50: 3, 75: 4.75}
	for rank, w := range want {
		if !aeq(w, got[rank]) {
			t.Errorf("Percentiles[%v] = %v, want %v", rank, got[rank], w)
		}
	}
}

func TestPercentileReusesPartial(t *testing.T) {
	// A supplied value wins over the samples, proving no
	// recomputation happened.
	s := Sample{Xs: []float64{1, 2, 3}}
	part := &Partial{Percentiles: map[float64]float64{50: 1234}}
	v, err := Percentile(s, 50, part)
	if err != nil {
		t.Fatalf("Percentile failed: %v", err)
	}
	if v != 1234 {
		t.Errorf("Percentile with supplied value = %v, want 1234", v)
	}

	// Ranks missing from the supplied map are still computed.
	got, err := Percentiles(s, []float64{25, 50}, part)
	if err != nil {
		t.Fatalf("Percentiles failed: %v", err)
	}
	if got[50] != 1234 {
		t.Errorf("Percentiles[50] = %v, want supplied 1234", got[50])
	}
	if !aeq(1, got[25]) {
		t.Errorf("Percentiles[25] = %v, want 1", got[25])
	}
}

func TestPercentileSortedAssertion(t *testing.T) {
	unsorted := Sample{Xs: []float64{5, 3, 4, 5, 1, 3, 1, 3}}
	presorted := Sample{Xs: []float64{1, 1, 3, 3, 3, 4, 5, 5}, Sorted: true}
	for _, rank := range []float64{10, 25, 50, 75, 90} {
		a, err := Percentile(unsorted, rank, nil)
		if err != nil {
			t.Fatalf("Percentile failed: %v", err)
		}
		b, err := Percentile(presorted, rank, nil)
		if err != nil {
			t.Fatalf("Percentile failed: %v", err)
		}
		if a != b {
			t.Errorf("rank %v: unsorted %v != presorted %v", rank, a, b)
		}
	}
}

func TestPercentileMonotone(t *testing.T) {
	s := Sample{Xs: []float64{9, 1, 4, 4, 7, 2, 8, 3, 3, 6}}
	prev := -inf
	for rank := 1.0; rank < 100; rank++ {
		v, err := Percentile(s, rank, nil)
		if err != nil {
			t.Fatalf("Percentile(%v) failed: %v", rank, err)
		}
		if v < prev {
			t.Fatalf("Percentile(%v) = %v < Percentile(%v) = %v", rank, v, rank-1, prev)
		}
		prev = v
	}
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats computes descriptive statistics of a sample: central tendency,
// dispersion, distribution shape, and Tukey-fence outliers.
//
// Statistics that depend on other statistics (the standard deviation on
// the variance, the variance on the mean, the outlier fences on the
// quartiles) accept a Partial carrying already-computed values, so a
// caller composing several operations never pays for the same pass over
// the sample twice. Describe threads a Partial through the whole
// dependency graph and returns the complete record in one call.
package stats // import "github.com/asheram/go-descstats/stats"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

// ErrEmptySample is returned when a statistic is requested of a sample
// with no values. Every operation except Sample.Count fails this way
// rather than returning NaN or a zero that could be mistaken for a
// real result.
var ErrEmptySample = errors.New("sample contains no values")

// ErrPercentileRange is returned when a requested percentile rank lies
// outside the open interval (0, 100).
var ErrPercentileRange = errors.New("percentile rank outside (0, 100)")

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// describe reads newline-separated numbers from stdin and prints the
// descriptive statistics of their distribution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/asheram/go-descstats/stats"
)

var flagExclude = flag.String("exclude", "none", "outlier exclusion policy: none, once, or repeat")

func main() {
	flag.Parse()
	policy, ok := map[string]stats.ExclusionPolicy{
		"none":   stats.KeepOutliers,
		"once":   stats.ExcludeOnce,
		"repeat": stats.ExcludeRepeatedly,
	}[*flagExclude]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown exclusion policy %q\n", *flagExclude)
		os.Exit(2)
	}

	s := readInput(os.Stdin)
	sum, err := stats.Describe(s, &stats.DescribeOpts{Exclude: policy})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("N %d  sum %.6g  mean %.6g", sum.N, sum.Total, sum.Mean)
	fmt.Printf("  std dev %.6g  variance %.6g  cv %.6g\n", sum.StdDev, sum.Variance, sum.StdDevRatio)
	fmt.Println()

	labels := map[float64]string{50: "median"}
	fmt.Printf("%8s %.6g\n", "min", sum.Min)
	for _, p := range []float64{25, 50, 75} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%g%%ile", p)
		}
		fmt.Printf("%8s %.6g\n", label, sum.Percentiles[p])
	}
	fmt.Printf("%8s %.6g\n", "max", sum.Max)
	fmt.Println()

	fmt.Printf("fences [%.6g, %.6g]\n", sum.Bounds.Lo, sum.Bounds.Hi)
	if len(sum.Outliers) > 0 {
		fmt.Printf("outliers %v\n", sum.Outliers)
	}
	switch {
	case sum.Mode.None():
		fmt.Println("no mode")
	default:
		fmt.Printf("mode %v (x%d)\n", sum.Mode.Values, sum.Mode.Count)
	}
}

func readInput(r io.Reader) (sample stats.Sample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return
}

// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"math"
	"sort"
)

// Scale defines the valid grade values for an exam: Min, Min+Step, ... Max.
type Scale struct {
	Min  float64
	Max  float64
	Step float64
}

// Bin is one histogram entry: a scale value and how often it was recorded.
type Bin struct {
	Value float64
	Count int
}

// Summary holds the aggregates for one exam's grade log. Mean and Median are
// only meaningful when Count > 0; callers must render an empty state instead
// of statistics when Count is zero.
type Summary struct {
	Count     int
	Mean      float64
	Median    float64
	Histogram []Bin
}

// WholeStep reports whether a scale counts in whole numbers. Whole-step
// scales normalize to integers, fractional ones to a single decimal place.
func WholeStep(step float64) bool {
	return step == math.Trunc(step)
}

// Normalize rounds v to the canonical representation for the given step.
// Axis values and recorded grades pass through the same rounding, so
// exact-key lookups succeed despite floating-point storage noise.
func Normalize(step, v float64) float64 {
	if WholeStep(step) {
		return math.Round(v)
	}
	return math.Round(v*10) / 10
}

// Axis enumerates every valid value of the scale in ascending order.
// Values are computed as Min + i*Step rather than by repeated addition,
// so drift cannot accumulate and Max is included exactly once.
func Axis(s Scale) []float64 {
	if s.Step <= 0 || s.Min >= s.Max {
		return nil
	}

	n := int(math.Round((s.Max - s.Min) / s.Step))
	axis := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		axis = append(axis, Normalize(s.Step, s.Min+float64(i)*s.Step))
	}
	return axis
}

// Aggregate computes count, mean, median and a dense histogram over the full
// scale axis. Every axis value appears in the histogram, zero-filled when
// never recorded, so distributions stay visually comparable across exams.
// Recorded values that fall off the axis (stale data from a since-changed
// scale) still count toward count/mean/median but are dropped from the
// histogram.
func Aggregate(s Scale, values []float64) Summary {
	sum := Summary{Count: len(values)}

	counts := make(map[float64]int, len(values))
	total := 0.0
	for _, v := range values {
		counts[Normalize(s.Step, v)]++
		total += v
	}

	axis := Axis(s)
	sum.Histogram = make([]Bin, len(axis))
	for i, v := range axis {
		sum.Histogram[i] = Bin{Value: v, Count: counts[v]}
	}

	if sum.Count == 0 {
		return sum
	}

	sum.Mean = total / float64(sum.Count)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		sum.Median = sorted[mid]
	} else {
		sum.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return sum
}

// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats computes grade aggregates for a single exam.

The package is pure: it takes a Scale and a slice of recorded grade values
and returns count, mean, median and a dense histogram. No database access.

# Histogram Construction

  1. Axis enumerates every valid scale value via integer step-counting
     (min + i*step), avoiding floating-point drift from repeated addition.
  2. Both axis values and recorded grades are normalized to a canonical
     rounding (integers for whole-number steps, one decimal otherwise).
  3. The histogram pairs each axis value with its occurrence count,
     zero-filled for values never recorded.

A 1.0-5.0 scale with step 0.1 yields exactly 41 bins, 1.0 through 5.0.
*/
package stats

// Copyright (c) 2025, The Datavis-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorjnd computes whether two colors are noticeably different
// to a human observer, given the visual size of the colored marks and,
// optionally, the glyph shape used to render them.
//
// It implements the engineering model from Szafir, "Modeling Color
// Difference for Visualization Design", IEEE TVCG 2018: per-channel
// discriminability thresholds in CIELAB as a closed-form function of
// mark size in degrees of visual angle, with separate regression
// coefficients for each scatterplot glyph shape and fill style.
package colorjnd

import "cogentcore.org/core/math32"

// Interval is a vector in CIELAB units with one value per channel:
// L* (lightness), a* (green-red), and b* (blue-yellow). It is used
// both for regression coefficients and for computed discriminability
// thresholds.
type Interval struct {
	L, A, B float32
}

// Generalized model coefficients, fit across sizes with the percentile
// left free: the threshold for a channel is p * (A + B / size).
// These also serve as the fallback for shape values outside the
// recognized set.
var (
	genA = Interval{10.16, 10.68, 10.70}
	genB = Interval{1.50, 3.08, 5.74}
)

// shapeFill is the key into the per-shape regression table.
type shapeFill struct {
	shape Shapes
	fill  Fills
}

// coeffs are the regression coefficients for one shape and fill:
// C is the threshold for an infinitely large mark and K is the size
// sensitivity, giving a threshold of C + K / size per channel.
type coeffs struct {
	C, K Interval
}

// shapeCoeffs are the per-shape, per-fill regression coefficients.
// These were fit only at the 50th percentile, so the shape branch of
// [LabInterval] has no percentile term. Cross and Wye are stroke-only
// glyphs and have a single row each, keyed as Unfilled.
var shapeCoeffs = map[shapeFill]coeffs{
	{Circle, Filled}:     {Interval{5.53, 5.53, 5.07}, Interval{0.99, 1.81, 4.16}},
	{Circle, Unfilled}:   {Interval{4.98, 7.20, 3.18}, Interval{1.62, 3.45, 8.82}},
	{Cross, Unfilled}:    {Interval{6.01, 9.74, 11.02}, Interval{0.79, 1.39, 1.87}},
	{Diamond, Filled}:    {Interval{4.67, 6.54, 5.81}, Interval{1.16, 2.47, 4.22}},
	{Diamond, Unfilled}:  {Interval{5.85, 6.69, 10.45}, Interval{1.23, 3.87, 5.26}},
	{Square, Filled}:     {Interval{5.11, 5.55, 5.03}, Interval{1.02, 2.00, 3.41}},
	{Square, Unfilled}:   {Interval{5.07, 6.26, 6.08}, Interval{2.21, 3.96, 5.63}},
	{Star, Filled}:       {Interval{4.64, 6.59, 7.54}, Interval{2.05, 2.81, 3.38}},
	{Star, Unfilled}:     {Interval{5.02, 7.32, 6.66}, Interval{1.56, 2.69, 6.51}},
	{Triangle, Filled}:   {Interval{5.75, 6.59, 5.70}, Interval{0.90, 1.61, 4.03}},
	{Triangle, Unfilled}: {Interval{6.20, 7.45, 9.66}, Interval{1.94, 3.13, 3.73}},
	{Wye, Unfilled}:      {Interval{7.05, 11.07, 12.15}, Interval{1.91, 1.35, 3.45}},
}

// LabInterval returns the per-channel just-noticeable-difference
// interval in CIELAB units for marks of the given size, shape, and
// fill. p is the fraction of observers that must perceive the
// difference: for None shapes the generalized model scales with p,
// while for concrete glyph shapes the coefficients were only fit at
// the 50th percentile, so p is ignored there. Any fill value other
// than Filled is treated as Unfilled, and shapes outside the
// recognized set fall back to the None model.
func LabInterval(p Percentile, size Size, shape Shapes, fill Fills) Interval {
	sz := float32(size.Norm())
	if fill != Filled {
		fill = Unfilled
	}
	if shape == Cross || shape == Wye { // one coefficient set regardless of fill
		fill = Unfilled
	}
	if co, ok := shapeCoeffs[shapeFill{shape, fill}]; ok {
		return Interval{co.C.L + co.K.L/sz, co.C.A + co.K.A/sz, co.C.B + co.K.B/sz}
	}
	pv := float32(p.Norm())
	return Interval{pv * (genA.L + genB.L/sz), pv * (genA.A + genB.A/sz), pv * (genA.B + genB.B/sz)}
}

// LabIntervalStrings is like [LabInterval], but takes all parameters
// in their lenient string forms: p as a number or "conservative", size
// as degrees or "thin"/"medium"/"wide", and shape and fill by name.
// Unrecognized values fall back to the defaults (0.5, Thin, None,
// Unfilled).
func LabIntervalStrings(p, size, shape, fill string) Interval {
	return LabInterval(PercentileFromString(p), SizeFromString(size), ShapeFromString(shape), FillFromString(fill))
}

// Exceeds returns whether the absolute difference between the two
// given CIELAB vectors meets or exceeds the interval on any single
// channel. Discriminability is a per-channel rule, not a Euclidean
// distance: clearing the threshold on one channel is enough.
func (iv Interval) Exceeds(c1, c2 Interval) bool {
	return math32.Abs(c1.L-c2.L) >= iv.L ||
		math32.Abs(c1.A-c2.A) >= iv.A ||
		math32.Abs(c1.B-c2.B) >= iv.B
}

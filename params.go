// Copyright (c) 2025, The Datavis-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorjnd

import (
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// Size is the visual angle in degrees subtended by the smallest
// dimension of a mark, as seen by the observer. The presets cover the
// common mark classes in charts; any positive value works.
type Size float32

const (
	// Thin is a thin mark such as a line or a narrow bar, 0.1 degrees.
	Thin Size = 0.1

	// Medium is a medium mark such as a typical bar, 0.5 degrees.
	Medium Size = 0.5

	// Wide is a wide mark such as a large area fill, 1 degree.
	Wide Size = 1
)

// Norm returns the size, falling back to Thin for zero or negative
// values, which would otherwise divide by zero in the model.
func (s Size) Norm() Size {
	if s <= 0 {
		return Thin
	}
	return s
}

// SizeFromString returns the size named by the given string: one of
// the preset names "thin", "medium", or "wide" (case-insensitively),
// or a positive number of degrees. Anything unrecognized returns Thin.
func SizeFromString(s string) Size {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "thin":
		return Thin
	case "medium":
		return Medium
	case "wide":
		return Wide
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil && f > 0 {
		return Size(f)
	}
	return Thin
}

// Percentile is the fraction of observers, in [0, 1], that must
// perceive a color difference for it to count as noticeable.
type Percentile float32

// Conservative is a percentile preset demanding that 80% of observers
// perceive the difference.
const Conservative Percentile = 0.8

// Norm returns the percentile clamped to [0, 1].
func (p Percentile) Norm() Percentile {
	return Percentile(math32.Clamp(float32(p), 0, 1))
}

// PercentileFromString returns the percentile named by the given
// string: the preset name "conservative" (case-insensitively) for 0.8,
// or a number in [0, 1]. Anything unrecognized returns 0.5.
func PercentileFromString(s string) Percentile {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "conservative") {
		return Conservative
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return Percentile(f).Norm()
	}
	return 0.5
}

// Params are the viewing parameters under which two colors are
// compared for discriminability.
type Params struct {

	// Size is the visual angle of the smallest dimension of the mark,
	// in degrees.
	Size Size

	// P is the fraction of observers that must perceive the
	// difference. Only used when Shape is None; the per-shape
	// coefficients are fixed at the 50th percentile.
	P Percentile

	// Shape is the glyph shape of the mark, or None for plain area
	// marks such as bars and lines.
	Shape Shapes

	// Fill is whether glyph shapes are drawn filled or in outline.
	Fill Fills
}

// Defaults sets the standard parameter values: a thin mark, the 50th
// percentile, no shape, unfilled.
func (pr *Params) Defaults() {
	pr.Size = Thin
	pr.P = 0.5
	pr.Shape = None
	pr.Fill = Unfilled
}

// Interval returns the per-channel noticeable-difference interval for
// these parameters. See [LabInterval].
func (pr *Params) Interval() Interval {
	return LabInterval(pr.P, pr.Size, pr.Shape, pr.Fill)
}

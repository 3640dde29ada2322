// Copyright (c) 2025, The Datavis-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorjnd

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/cam/cie"
)

// ToLAB returns the CIELAB (L*, a*, b*) coordinates of the given
// color, with L* in [0, 100].
func ToLAB(c color.Color) Interval {
	r, g, b, _ := cie.SRGBUint32ToFloat(c.RGBA())
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	x, y, z := cie.SRGBLinToXYZ(rl, gl, bl)
	l, a, bb := cie.XYZToLAB(x, y, z)
	return Interval{l, a, bb}
}

// NoticeablyDifferent returns whether the two colors are noticeably
// different when rendered under these viewing parameters: it converts
// both colors to CIELAB and compares their channel-wise absolute
// differences against the interval from [Params.Interval], reporting
// true if any single channel meets or exceeds its threshold.
func (pr *Params) NoticeablyDifferent(c1, c2 color.Color) bool {
	return pr.Interval().Exceeds(ToLAB(c1), ToLAB(c2))
}

// NoticeablyDifferentStrings is like [Params.NoticeablyDifferent], but
// takes the colors as strings in any form [colors.FromString] accepts:
// hex values, CSS color names, rgb(...), hsl(...), etc. It returns an
// error if either string does not parse as a color.
func (pr *Params) NoticeablyDifferentStrings(c1, c2 string) (bool, error) {
	a, err := colors.FromString(c1)
	if err != nil {
		return false, err
	}
	b, err := colors.FromString(c2)
	if err != nil {
		return false, err
	}
	return pr.NoticeablyDifferent(a, b), nil
}

// NoticeablyDifferent returns whether the two colors are noticeably
// different under default viewing parameters (a thin mark with no
// glyph shape, at the 50th percentile). Use [Params] to control the
// mark size, shape, fill, and percentile.
func NoticeablyDifferent(c1, c2 color.Color) bool {
	pr := &Params{}
	pr.Defaults()
	return pr.NoticeablyDifferent(c1, c2)
}

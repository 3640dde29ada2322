// Copyright (c) 2025, The Datavis-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorjnd

//go:generate core generate

import "strings"

// Shapes are the glyph shapes that scatterplot marks can be rendered
// with. The discriminability model has separate regression
// coefficients for each shape; None is for plain area marks such as
// bars and lines, which use the generalized size-only model.
type Shapes int32 //enums:enum -transform lower -accept-lower

const (
	// None is a mark with no glyph shape (bars, lines, areas).
	None Shapes = iota

	// Circle is a circle glyph.
	Circle

	// Cross is a plus-shaped stroke glyph; it has no fillable area.
	Cross

	// Diamond is a diamond glyph.
	Diamond

	// Square is a square glyph.
	Square

	// Star is a five-pointed star glyph.
	Star

	// Triangle is an upward triangle glyph.
	Triangle

	// Wye is a Y-shaped stroke glyph; it has no fillable area.
	Wye
)

// Fills are the fill styles of a glyph shape: drawn as a filled area
// or as an outline only. Only Circle, Diamond, Square, Star, and
// Triangle support both styles; Cross and Wye ignore the fill.
type Fills int32 //enums:enum -transform lower -accept-lower

const (
	// Unfilled is a glyph drawn in outline only.
	Unfilled Fills = iota

	// Filled is a glyph drawn as a solid area.
	Filled
)

// ShapeFromString returns the shape named by the given string,
// case-insensitively. Anything unrecognized returns None.
func ShapeFromString(s string) Shapes {
	sh := None
	if err := sh.SetString(strings.TrimSpace(s)); err != nil {
		return None
	}
	return sh
}

// FillFromString returns the fill style named by the given string,
// case-insensitively. Anything unrecognized returns Unfilled.
func FillFromString(s string) Fills {
	f := Unfilled
	if err := f.SetString(strings.TrimSpace(s)); err != nil {
		return Unfilled
	}
	return f
}

// Copyright (c) 2025, The Datavis-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorjnd

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestToLAB(t *testing.T) {
	w := ToLAB(white)
	tolassert.EqualTol(t, 100, w.L, 0.01)
	tolassert.EqualTol(t, 0, w.A, 0.1)
	tolassert.EqualTol(t, 0, w.B, 0.1)

	b := ToLAB(black)
	tolassert.EqualTol(t, 0, b.L, 0.01)
	tolassert.EqualTol(t, 0, b.A, 0.01)
	tolassert.EqualTol(t, 0, b.B, 0.01)

	r := ToLAB(color.RGBA{R: 255, A: 255})
	tolassert.EqualTol(t, 53.24, r.L, 0.1)
	tolassert.EqualTol(t, 80.09, r.A, 0.3)
	tolassert.EqualTol(t, 67.2, r.B, 0.3)
}

func TestNoticeablyDifferent(t *testing.T) {
	assert.True(t, NoticeablyDifferent(white, black))
	assert.False(t, NoticeablyDifferent(white, white))
	assert.False(t, NoticeablyDifferent(black, black))

	// symmetric in its color arguments
	assert.Equal(t, NoticeablyDifferent(white, black), NoticeablyDifferent(black, white))
}

func TestNoticeablyDifferentShape(t *testing.T) {
	pr := &Params{}
	pr.Defaults()
	pr.Shape = Square
	pr.Fill = Filled
	assert.True(t, pr.NoticeablyDifferent(white, black))
	assert.False(t, pr.NoticeablyDifferent(black, black))

	// p is overridden by the 50th-percentile shape tables, not honored
	pr2 := *pr
	pr2.P = 0.9
	assert.Equal(t, pr.Interval(), pr2.Interval())
	assert.Equal(t, pr.NoticeablyDifferent(white, black), pr2.NoticeablyDifferent(white, black))
}

func TestNoticeablyDifferentSize(t *testing.T) {
	// two grays about 8.5 L* apart: below the thin-mark threshold,
	// above the wide-mark one. Larger marks only ever make a pair
	// easier to tell apart.
	g1 := color.RGBA{128, 128, 128, 255}
	g2 := color.RGBA{150, 150, 150, 255}

	thin := &Params{}
	thin.Defaults()
	assert.False(t, thin.NoticeablyDifferent(g1, g2))

	wide := &Params{}
	wide.Defaults()
	wide.Size = Wide
	assert.True(t, wide.NoticeablyDifferent(g1, g2))
}

func TestNoticeablyDifferentStrings(t *testing.T) {
	pr := &Params{}
	pr.Defaults()

	diff, err := pr.NoticeablyDifferentStrings("black", "white")
	assert.NoError(t, err)
	assert.True(t, diff)

	diff, err = pr.NoticeablyDifferentStrings("#808080", "#808080")
	assert.NoError(t, err)
	assert.False(t, diff)

	_, err = pr.NoticeablyDifferentStrings("notacolor", "white")
	assert.Error(t, err)
}

// seehuhn.de/go/pixel - rasterization and planar geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package conic

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// Hyperbola rasterizes the hyperbola x²/a² - y²/b² = 1 around center.
//
// The curve is sampled at every integer x from a while x is smaller than
// the width of bounds.  For each sample, y = b·√(x²/a² - 1) is rounded to
// the nearest pixel and the four points (±x, ±y) are emitted.  The
// unrounded offset is kept in Pos.
//
// For a = 0 the curve is undefined and only the centre is emitted.
func Hyperbola(center pixel.Point, a, b int, bounds rect.Rect) iter.Seq[pixel.Plot] {
	a, b = abs(a), abs(b)
	if a == 0 {
		pixel.Logger().Debug("degenerate hyperbola", "a", a, "b", b)
		return only(center)
	}
	width := bounds.URx - bounds.LLx
	return func(yield func(pixel.Plot) bool) {
		fa, fb := float64(a), float64(b)
		for i, x := 0, a; float64(x) < width; i, x = i+1, x+1 {
			fx := float64(x)
			fy := fb * math.Sqrt(fx*fx/(fa*fa)-1)
			if !sampled(yield, center, i, fx, fy) {
				return
			}
		}
	}
}

// Parabola rasterizes the parabola y = x²/(2p) around center, together
// with its mirror images in both axes.
//
// The curve is sampled at every integer x from 0 and stops before the
// first sample whose y reaches the height of bounds.  For p = 0 the curve
// is undefined and only the centre is emitted.
func Parabola(center pixel.Point, p int, bounds rect.Rect) iter.Seq[pixel.Plot] {
	p = abs(p)
	if p == 0 {
		pixel.Logger().Debug("degenerate parabola")
		return only(center)
	}
	height := bounds.URy - bounds.LLy
	return func(yield func(pixel.Plot) bool) {
		for i := 0; ; i++ {
			fx := float64(i)
			fy := fx * fx / float64(2*p)
			if fy >= height {
				return
			}
			if !sampled(yield, center, i, fx, fy) {
				return
			}
		}
	}
}

// sampled emits the four mirror images of the real-valued offset (x, y),
// rounding to the nearest pixel.
func sampled(yield func(pixel.Plot) bool, center pixel.Point, i int, x, y float64) bool {
	ix, iy := int(math.Round(x)), int(math.Round(y))
	signs := [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	for _, s := range signs {
		p := pixel.Plot{
			Iter:      i,
			X:         center.X + s[0]*ix,
			Y:         center.Y + s[1]*iy,
			Intensity: 1,
			Pos: vec.Vec2{
				X: float64(center.X) + float64(s[0])*x,
				Y: float64(center.Y) + float64(s[1])*y,
			},
		}
		if !yield(p) {
			return false
		}
	}
	return true
}

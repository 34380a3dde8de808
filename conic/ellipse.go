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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// Ellipse rasterizes the axis-aligned ellipse with semi-axes rx and ry
// around center, using the two-region midpoint algorithm.
//
// In region 1 the slope is shallower than -1 and x advances every step;
// the decision variable starts at ry² - rx²·ry + rx²/4.  Once the gradient
// terms satisfy 2ry²x >= 2rx²y, the walk switches to region 2, where y
// decreases every step, and continues until y drops below zero.  Both
// regions are one loop, so the point at which the first region stops is
// exactly where the second one continues.
//
// Each iteration emits the four points (±x, ±y).  Plots carry the decision
// variable and the region number.
//
// If both semi-axes are zero, only the centre is emitted.  If exactly one
// of them is zero, the ellipse collapses to a segment along the other axis
// and that segment is emitted, mirrored in the same way.
func Ellipse(center pixel.Point, rx, ry int) iter.Seq[pixel.Plot] {
	rx, ry = abs(rx), abs(ry)
	switch {
	case rx == 0 && ry == 0:
		return only(center)
	case rx == 0 || ry == 0:
		pixel.Logger().Debug("degenerate ellipse", "rx", rx, "ry", ry)
		return collapsed(center, rx, ry)
	}

	return func(yield func(pixel.Plot) bool) {
		a2 := float64(rx) * float64(rx)
		b2 := float64(ry) * float64(ry)

		x, y := 0.0, float64(ry)
		dx := 0.0
		dy := 2 * a2 * y
		d := b2 - a2*float64(ry) + 0.25*a2
		region := 1

		for i := 0; ; i++ {
			if region == 1 && dx >= dy {
				region = 2
				d = b2*(x+0.5)*(x+0.5) + a2*(y-1)*(y-1) - a2*b2
			}
			if region == 2 && y < 0 {
				return
			}

			if !quadrants(yield, center, x, y, pixel.Plot{Iter: i, Decision: d, Region: region}) {
				return
			}

			if region == 1 {
				x++
				dx += 2 * b2
				if d < 0 {
					d += dx + b2
				} else {
					y--
					dy -= 2 * a2
					d += dx - dy + b2
				}
			} else {
				y--
				dy -= 2 * a2
				if d > 0 {
					d += a2 - dy
				} else {
					x++
					dx += 2 * b2
					d += dx - dy + a2
				}
			}
		}
	}
}

// collapsed emits the segment an ellipse with one zero semi-axis
// degenerates to.
func collapsed(center pixel.Point, rx, ry int) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		for i := range max(rx, ry) + 1 {
			x, y := float64(i), 0.0
			if rx == 0 {
				x, y = 0, float64(ry-i)
			}
			if !quadrants(yield, center, x, y, pixel.Plot{Iter: i}) {
				return
			}
		}
	}
}

// quadrants emits the four mirror images of the first-quadrant offset
// (x, y), using tmpl for the diagnostic fields.
func quadrants(yield func(pixel.Plot) bool, center pixel.Point, x, y float64, tmpl pixel.Plot) bool {
	ix, iy := int(x), int(y)
	signs := [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	for _, s := range signs {
		p := tmpl
		p.X = center.X + s[0]*ix
		p.Y = center.Y + s[1]*iy
		p.Intensity = 1
		p.Pos = vec.Vec2{
			X: float64(center.X) + float64(s[0])*x,
			Y: float64(center.Y) + float64(s[1])*y,
		}
		if !yield(p) {
			return false
		}
	}
	return true
}

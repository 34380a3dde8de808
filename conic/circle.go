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

	"seehuhn.de/go/pixel"
)

// Circle rasterizes the circle of radius r around center with the
// midpoint (Bresenham) circle algorithm.
//
// The decision variable starts at 3-2r.  Each iteration emits the eight
// points (±x, ±y) and (±y, ±x), then updates d by 4x+6 if it is negative,
// or by 4(x-y)+10 with a step of y otherwise.  The loop ends once x > y.
// The Decision field of a plot holds d at the time the point was emitted.
//
// A zero radius gives the centre alone.  Negative radii are treated as
// their absolute value.
func Circle(center pixel.Point, r int) iter.Seq[pixel.Plot] {
	r = abs(r)
	if r == 0 {
		return only(center)
	}
	return func(yield func(pixel.Plot) bool) {
		x, y := 0, r
		d := 3 - 2*r
		for i := 0; x <= y; i++ {
			octants := [8]pixel.Point{
				{X: x, Y: y}, {X: -x, Y: y}, {X: x, Y: -y}, {X: -x, Y: -y},
				{X: y, Y: x}, {X: -y, Y: x}, {X: y, Y: -x}, {X: -y, Y: -x},
			}
			for _, o := range octants {
				q := center.Add(o)
				p := pixel.Plot{Iter: i, X: q.X, Y: q.Y, Intensity: 1, Decision: float64(d)}
				if !yield(p) {
					return
				}
			}

			if d < 0 {
				d += 4*x + 6
			} else {
				d += 4*(x-y) + 10
				y--
			}
			x++
		}
	}
}

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

package line

import (
	"iter"

	"seehuhn.de/go/pixel"
)

// Bresenham rasterizes the segment from p0 to p1 using only integer
// arithmetic.
//
// The major axis is the one with the larger extent d; the error term starts
// at 2*dMinor - dMajor.  After each plot, a non-negative error steps the
// minor axis and subtracts 2*dMajor; the major axis always steps and
// 2*dMinor is added.  Exactly dMajor+1 pixels are plotted and the last one
// is p1, without any endpoint test.
//
// Err holds the error term used to decide the step after the plot, NextErr
// the corrected error term.
func Bresenham(p0, p1 pixel.Point) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		x, y := p0.X, p0.Y
		dx := abs(p1.X - p0.X)
		dy := abs(p1.Y - p0.Y)
		sx, sy := 1, 1
		if p0.X > p1.X {
			sx = -1
		}
		if p0.Y > p1.Y {
			sy = -1
		}

		steep := dy > dx
		if steep {
			dx, dy = dy, dx
		}

		e := 2*dy - dx
		for i := 0; i <= dx; i++ {
			p := pixel.Plot{Iter: i, X: x, Y: y, Intensity: 1, Err: e}

			if e >= 0 {
				if steep {
					x += sx
				} else {
					y += sy
				}
				e -= 2 * dx
			}
			if steep {
				y += sy
			} else {
				x += sx
			}
			e += 2 * dy

			p.NextErr = e
			if !yield(p) {
				return
			}
		}
	}
}

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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// Wu rasterizes the segment from p0 to p1 with Xiaolin Wu's antialiasing
// algorithm.
//
// The line is walked along its dominant axis, from the smaller to the
// larger coordinate, so the sequence may run from p1 to p0.  Every column
// gets two plots, the pixel nearest to the ideal line and its neighbour,
// with intensities 1-f and f where f is the fractional part of the ideal
// position.  For interior columns the two intensities sum to 1; the two
// endpoint columns are weighted by the horizontal pixel gap, which is 1/2
// for pixel-centred endpoints.  All plots of one column share the same
// Iter value.
//
// A zero-length segment gives the single point p0 at full intensity.
func Wu(p0, p1 pixel.Point) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		if p0 == p1 {
			pixel.Logger().Debug("zero-length line", "alg", AlgWu, "at", p0)
			yield(pixel.Plot{X: p0.X, Y: p0.Y, Intensity: 1, Pos: p0.Vec()})
			return
		}

		x0, y0 := float64(p0.X), float64(p0.Y)
		x1, y1 := float64(p1.X), float64(p1.Y)
		steep := math.Abs(y1-y0) > math.Abs(x1-x0)
		if steep {
			x0, y0 = y0, x0
			x1, y1 = y1, x1
		}
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}

		dx := x1 - x0
		dy := y1 - y0
		gradient := 1.0
		if dx != 0 {
			gradient = dy / dx
		}

		col := 0
		plot := func(x, y int, c, fy float64) bool {
			p := pixel.Plot{Iter: col, X: x, Y: y, Intensity: c, Pos: vec.Vec2{X: float64(x), Y: fy}}
			if steep {
				p.X, p.Y = y, x
				p.Pos.X, p.Pos.Y = p.Pos.Y, p.Pos.X
			}
			return yield(p)
		}

		// first endpoint
		xEnd := math.Round(x0)
		yEnd := y0 + gradient*(xEnd-x0)
		xGap := rfpart(x0 + 0.5)
		xPix0 := int(xEnd)
		yPix := ipart(yEnd)
		if !plot(xPix0, yPix, rfpart(yEnd)*xGap, yEnd) ||
			!plot(xPix0, yPix+1, fpart(yEnd)*xGap, yEnd) {
			return
		}
		intery := yEnd + gradient

		// second endpoint, plotted after the interior
		xEnd = math.Round(x1)
		yEnd = y1 + gradient*(xEnd-x1)
		xGap = fpart(x1 + 0.5)
		xPix1 := int(xEnd)

		for x := xPix0 + 1; x < xPix1; x++ {
			col++
			y := ipart(intery)
			if !plot(x, y, rfpart(intery), intery) || !plot(x, y+1, fpart(intery), intery) {
				return
			}
			intery += gradient
		}

		col++
		yPix = ipart(yEnd)
		if !plot(xPix1, yPix, rfpart(yEnd)*xGap, yEnd) {
			return
		}
		plot(xPix1, yPix+1, fpart(yEnd)*xGap, yEnd)
	}
}

// ipart returns the integer part of x, rounding towards -∞.
func ipart(x float64) int {
	return int(math.Floor(x))
}

// fpart returns the fractional part of x, in [0, 1).
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

func rfpart(x float64) float64 {
	return 1 - fpart(x)
}

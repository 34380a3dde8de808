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

package curve

import (
	"iter"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// Hermite samples the cubic Hermite spline through the given points.
//
// The tangent at the first and last point is the one-sided difference to
// the neighbouring point; interior tangents are half the difference of the
// two neighbours.  The curve passes through every point.  Fewer than two
// points give an empty sequence.
func Hermite(points []pixel.Point, samples int) iter.Seq[pixel.Plot] {
	n := len(points)
	if n < 2 {
		return empty
	}

	pts := make([]vec.Vec2, n)
	for i, p := range points {
		pts[i] = p.Vec()
	}
	tangents := make([]vec.Vec2, n)
	for i := range pts {
		switch i {
		case 0:
			tangents[i] = pts[1].Sub(pts[0])
		case n - 1:
			tangents[i] = pts[n-1].Sub(pts[n-2])
		default:
			tangents[i] = pts[i+1].Sub(pts[i-1]).Mul(0.5)
		}
	}

	s := &segments{
		m:       &hermiteBasis,
		scale:   1,
		samples: samples,
		n:       n - 1,
		geom: func(i int) [4]vec.Vec2 {
			return [4]vec.Vec2{pts[i], pts[i+1], tangents[i], tangents[i+1]}
		},
	}
	return s.all
}

// Bezier samples the cubic Bézier curve with control points p0, …, p3.
// The curve starts at p0 and ends at p3.
func Bezier(p0, p1, p2, p3 pixel.Point, samples int) iter.Seq[pixel.Plot] {
	g := [4]vec.Vec2{p0.Vec(), p1.Vec(), p2.Vec(), p3.Vec()}
	s := &segments{
		m:       &bezierBasis,
		scale:   1,
		samples: samples,
		n:       1,
		geom:    func(int) [4]vec.Vec2 { return g },
	}
	return s.all
}

// BSpline samples the uniform cubic B-spline with the given control
// points.  Every window of four consecutive points contributes one
// segment; the curve generally passes through none of the points.  Fewer
// than four points give an empty sequence.
func BSpline(points []pixel.Point, samples int) iter.Seq[pixel.Plot] {
	n := len(points)
	if n < 4 {
		return empty
	}
	pts := make([]vec.Vec2, n)
	for i, p := range points {
		pts[i] = p.Vec()
	}
	s := &segments{
		m:       &bsplineBasis,
		scale:   1.0 / 6,
		samples: samples,
		n:       n - 3,
		geom: func(i int) [4]vec.Vec2 {
			return [4]vec.Vec2{pts[i], pts[i+1], pts[i+2], pts[i+3]}
		},
	}
	return s.all
}

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

package planar

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// Segment is a line segment between two pixels.
type Segment struct {
	A, B pixel.Point
}

// Seg is a shorthand for Segment{A: a, B: b}.
func Seg(a, b pixel.Point) Segment {
	return Segment{A: a, B: b}
}

// Intersect returns the point where s1 and s2 meet.
//
// Writing the segments as A1 + t(B1-A1) and A2 + u(B2-A2), both t and u
// must lie in [0, 1], end points included.  Parallel segments never
// intersect, even if they overlap.  The result is not rounded.
func Intersect(s1, s2 Segment) (vec.Vec2, bool) {
	x1, y1 := float64(s1.A.X), float64(s1.A.Y)
	x2, y2 := float64(s1.B.X), float64(s1.B.Y)
	x3, y3 := float64(s2.A.X), float64(s2.A.Y)
	x4, y4 := float64(s2.B.X), float64(s2.B.Y)

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return vec.Vec2{}, false
	}
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)}, true
}

// Round1 rounds both coordinates to one decimal place.
func Round1(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: math.Round(v.X*10) / 10,
		Y: math.Round(v.Y*10) / 10,
	}
}

// PolygonIntersections returns the points where seg crosses the edges of
// the polygon, in edge order, rounded to one decimal place.  A crossing at
// a vertex is reported once for each of the two edges meeting there.
func PolygonIntersections(poly []pixel.Point, seg Segment) []vec.Vec2 {
	var res []vec.Vec2
	n := len(poly)
	if n < 2 {
		return nil
	}
	for i := range n {
		if n == 2 && i == 1 {
			break
		}
		if p, ok := Intersect(seg, Seg(poly[i], poly[(i+1)%n])); ok {
			res = append(res, Round1(p))
		}
	}
	return res
}

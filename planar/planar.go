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

// Package planar implements elementary computational geometry on integer
// pixel coordinates: orientation tests, distances, segment intersection,
// convexity, point in polygon, and edge normals.
//
// Polygons are slices of vertices in order.  The last vertex is implicitly
// joined to the first.
package planar

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// Orientation describes the turn made at the middle of three points.
type Orientation int

// These are the possible orientations.  Left and Right refer to a
// coordinate system with the y-axis pointing up; on a screen with y
// pointing down the two are exchanged.
const (
	Collinear Orientation = iota
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "collinear"
	}
}

// Cross returns the z-component of (p2-p1) × (p3-p2).
func Cross(p1, p2, p3 pixel.Point) int {
	a := p2.Sub(p1)
	b := p3.Sub(p2)
	return a.X*b.Y - a.Y*b.X
}

// Orient classifies the turn p1 → p2 → p3.
func Orient(p1, p2, p3 pixel.Point) Orientation {
	c := Cross(p1, p2, p3)
	switch {
	case c > 0:
		return Left
	case c < 0:
		return Right
	default:
		return Collinear
	}
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q pixel.Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// IsConvex reports whether the polygon is convex.
//
// All turns at the vertices, taken cyclically, must have the same sign.
// Collinear vertices are ignored, so a polygon without any proper turn
// counts as convex.  Polygons with fewer than three vertices are not
// convex.
func IsConvex(poly []pixel.Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	sign := 0
	for i := range n {
		c := Cross(poly[i], poly[(i+1)%n], poly[(i+2)%n])
		if c == 0 {
			continue
		}
		s := 1
		if c < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// Contains reports whether q lies inside the polygon, using even-odd ray
// casting along the positive x direction.
//
// An edge is crossed if its end points lie on different sides of the
// horizontal line through q (a vertex exactly on the line counts as below
// it) and the crossing lies strictly to the right of q.  Points on the
// boundary may be reported either way.  Polygons with fewer than three
// vertices contain no points.
func Contains(poly []pixel.Point, q pixel.Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	x, y := float64(q.X), float64(q.Y)
	inside := false
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		if (a.Y > q.Y) == (b.Y > q.Y) {
			continue
		}
		x1, y1 := float64(a.X), float64(a.Y)
		x2, y2 := float64(b.X), float64(b.Y)
		if x < (x2-x1)*(y-y1)/(y2-y1)+x1 {
			inside = !inside
		}
	}
	return inside
}

// SignedArea returns the area enclosed by the polygon, positive if the
// vertices run counter-clockwise in a y-up frame.
func SignedArea(poly []pixel.Point) float64 {
	n := len(poly)
	sum := 0
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return float64(sum) / 2
}

// Normal is a unit normal vector attached to the midpoint of a polygon
// edge.
type Normal struct {
	Mid vec.Vec2
	Dir vec.Vec2
}

// Tip returns the end point of the normal, drawn with the given length.
func (n Normal) Tip(length float64) vec.Vec2 {
	return n.Mid.Add(n.Dir.Mul(length))
}

// Normals returns one normal per polygon edge, in edge order.  For an edge
// with direction (dx, dy) the normal is (-dy, dx), scaled to unit length;
// this points into the polygon when its vertices run counter-clockwise in
// a y-up frame.  Zero-length edges get a zero direction.
func Normals(poly []pixel.Point) []Normal {
	n := len(poly)
	if n < 2 {
		return nil
	}
	res := make([]Normal, n)
	for i := range n {
		a, b := poly[i].Vec(), poly[(i+1)%n].Vec()
		d := b.Sub(a)
		dir := vec.Vec2{X: -d.Y, Y: d.X}
		if l := dir.Length(); l > 0 {
			dir = dir.Mul(1 / l)
		}
		res[i] = Normal{Mid: a.Add(b).Mul(0.5), Dir: dir}
	}
	return res
}

// InwardNormals is like Normals, but the normals always point into the
// polygon, whichever way its vertices run.
func InwardNormals(poly []pixel.Point) []Normal {
	res := Normals(poly)
	if SignedArea(poly) < 0 {
		for i := range res {
			res[i].Dir = res[i].Dir.Mul(-1)
		}
	}
	return res
}

// Path returns the polygon as a closed path.
func Path(poly []pixel.Point) *path.Data {
	p := &path.Data{}
	for i, v := range poly {
		if i == 0 {
			p = p.MoveTo(v.Vec())
		} else {
			p = p.LineTo(v.Vec())
		}
	}
	if len(poly) > 0 {
		p = p.Close()
	}
	return p
}

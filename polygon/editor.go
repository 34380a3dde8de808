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

// Package polygon implements an interactive polygon editor without a user
// interface: vertices are added one at a time, the polygon is closed, and
// then it can be analysed (convexity, convex hull, inward normals) and
// queried (point in polygon, intersections with a segment).
//
// Drawing is kept separate from the editor: see Render, DrawDebug and
// LoadSVG.
package polygon

import (
	"errors"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/hull"
	"seehuhn.de/go/pixel/planar"
)

// ErrTooFewVertices is returned when closing a polygon with fewer than
// three vertices.
var ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

// Result describes a closed polygon.
type Result struct {
	Convex bool
	Hull   []pixel.Point

	// Normals holds one inward unit normal per edge.  It is only set for
	// convex polygons.
	Normals []planar.Normal
}

// Editor accumulates the vertices of a polygon.
// An Editor is not safe for concurrent use.
type Editor struct {
	method   hull.Method
	vertices []pixel.Point
	result   *Result

	segStart *pixel.Point
}

// NewEditor returns an empty editor which uses the given hull method.
func NewEditor(method hull.Method) *Editor {
	return &Editor{method: method}
}

// AddVertex appends a vertex.  Adding a vertex to a closed polygon opens
// it again.
func (e *Editor) AddVertex(p pixel.Point) {
	e.vertices = append(e.vertices, p)
	e.result = nil
}

// Vertices returns a copy of the vertices, in insertion order.
func (e *Editor) Vertices() []pixel.Point {
	return slices.Clone(e.vertices)
}

// Method returns the hull method used by Finish.
func (e *Editor) Method() hull.Method {
	return e.method
}

// SetMethod changes the hull method.  If the polygon is closed, the hull
// is recomputed.
func (e *Editor) SetMethod(m hull.Method) {
	e.method = m
	if e.result != nil {
		e.result.Hull = hull.Build(m, e.vertices)
	}
}

// Finish closes the polygon and analyses it.  If there are fewer than
// three vertices, ErrTooFewVertices is returned and the editor is left
// unchanged.
func (e *Editor) Finish() (Result, error) {
	if len(e.vertices) < 3 {
		return Result{}, ErrTooFewVertices
	}

	res := &Result{
		Convex: planar.IsConvex(e.vertices),
		Hull:   hull.Build(e.method, e.vertices),
	}
	if res.Convex {
		res.Normals = planar.InwardNormals(e.vertices)
	}
	e.result = res

	pixel.Logger().Info("polygon closed",
		"vertices", len(e.vertices),
		"convex", res.Convex,
		"hull", len(res.Hull))
	return *res, nil
}

// Closed reports whether Finish has been called since the last change to
// the vertices.
func (e *Editor) Closed() bool {
	return e.result != nil
}

// Result returns the analysis of the closed polygon.  The second return
// value is false if the polygon is not closed.
func (e *Editor) Result() (Result, bool) {
	if e.result == nil {
		return Result{}, false
	}
	return *e.result, true
}

// Contains reports whether q lies inside the polygon.
func (e *Editor) Contains(q pixel.Point) bool {
	return planar.Contains(e.vertices, q)
}

// CheckSegment returns the intersections of the segment from a to b with
// the polygon edges, rounded to one decimal place.
func (e *Editor) CheckSegment(a, b pixel.Point) []vec.Vec2 {
	hits := planar.PolygonIntersections(e.vertices, planar.Seg(a, b))
	pixel.Logger().Debug("segment check", "from", a, "to", b, "hits", len(hits))
	return hits
}

// SegmentClick enters a segment one end point at a time.  The first call
// records the start point and returns done == false.  The second call
// completes the segment, returns its intersections with the polygon, and
// forgets the start point.
func (e *Editor) SegmentClick(p pixel.Point) (hits []vec.Vec2, done bool) {
	if e.segStart == nil {
		e.segStart = &p
		return nil, false
	}
	a := *e.segStart
	e.segStart = nil
	return e.CheckSegment(a, p), true
}

// Reset removes all vertices and any half-entered segment.  The hull
// method is kept.
func (e *Editor) Reset() {
	e.vertices = e.vertices[:0]
	e.result = nil
	e.segStart = nil
}

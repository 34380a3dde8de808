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

// Package testcases holds named drawing scenarios which are shared by the
// package tests and by the export and genpdf commands.
package testcases

import (
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/conic"
	"seehuhn.de/go/pixel/curve"
	"seehuhn.de/go/pixel/hull"
	"seehuhn.de/go/pixel/line"
	"seehuhn.de/go/pixel/polygon"
	"seehuhn.de/go/pixel/scene"
)

// TestCase defines a single drawing scenario.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels
	Shape  Shape  // what to draw
}

// Shape is one of Line, Conic, Curve, Polygon or Scene.
type Shape interface {
	plots(bounds rect.Rect) iter.Seq[pixel.Plot]
}

// Line is a polyline drawn with one of the line algorithms.
type Line struct {
	Alg    line.Algorithm
	Points []pixel.Point
	Closed bool
}

func (s Line) plots(rect.Rect) iter.Seq[pixel.Plot] {
	return line.Polyline(s.Alg, s.Points, s.Closed)
}

// Conic is a conic section given by its centre and a boundary point.
type Conic struct {
	Kind     conic.Kind
	Center   pixel.Point
	Boundary pixel.Point
}

func (s Conic) plots(bounds rect.Rect) iter.Seq[pixel.Plot] {
	return conic.Rasterize(s.Kind, s.Center, s.Boundary, bounds)
}

// Curve is a parametric curve through or near the given control points.
type Curve struct {
	Kind    curve.Kind
	Points  []pixel.Point
	Samples int // 0 means curve.DefaultSamples
}

func (s Curve) plots(rect.Rect) iter.Seq[pixel.Plot] {
	n := s.Samples
	if n == 0 {
		n = curve.DefaultSamples
	}
	return curve.Rasterize(s.Kind, s.Points, n)
}

// Polygon is a closed polygon together with its convex hull.
type Polygon struct {
	Vertices []pixel.Point
	Method   hull.Method
	Alg      line.Algorithm
}

// plots returns the outline of the polygon followed by its hull.
func (s Polygon) plots(rect.Rect) iter.Seq[pixel.Plot] {
	outline := line.Polyline(s.Alg, s.Vertices, true)
	h := line.Polyline(s.Alg, hull.Build(s.Method, s.Vertices), true)
	return func(yield func(pixel.Plot) bool) {
		for p := range outline {
			if !yield(p) {
				return
			}
		}
		for p := range h {
			if !yield(p) {
				return
			}
		}
	}
}

// Editor returns a closed polygon editor holding the vertices.
func (s Polygon) Editor() (*polygon.Editor, error) {
	ed := polygon.NewEditor(s.Method)
	for _, v := range s.Vertices {
		ed.AddVertex(v)
	}
	if _, err := ed.Finish(); err != nil {
		return nil, err
	}
	return ed, nil
}

// Scene is a wireframe mesh seen through a perspective projection.
type Scene struct {
	Mesh   *scene.Mesh
	Params scene.Params
	Alg    line.Algorithm
}

func (s Scene) plots(bounds rect.Rect) iter.Seq[pixel.Plot] {
	vp := scene.Viewport{
		Width:  int(bounds.URx),
		Height: int(bounds.URy),
		Factor: bounds.URy,
	}
	return scene.Render(s.Mesh, s.Params, vp, s.Alg)
}

// Bounds returns the canvas area of the test case.
func (tc TestCase) Bounds() rect.Rect {
	return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
}

// Plots returns the plot sequence of the test case.
func (tc TestCase) Plots() iter.Seq[pixel.Plot] {
	return tc.Shape.plots(tc.Bounds())
}

// Draw renders the test case onto a new canvas.  Polygons are drawn with
// their fill, hull and normals.
func (tc TestCase) Draw() (*pixel.Canvas, error) {
	c := pixel.NewCanvas(tc.Width, tc.Height)
	if s, ok := tc.Shape.(Polygon); ok {
		ed, err := s.Editor()
		if err != nil {
			return nil, err
		}
		ed.Render(c, s.Alg)
		return c, nil
	}
	c.Draw(tc.Plots())
	return c, nil
}

// Outline returns the fill path of a polygon test case, or nil for other
// shapes.
func (tc TestCase) Outline() []pixel.Point {
	if s, ok := tc.Shape.(Polygon); ok {
		return s.Vertices
	}
	return nil
}

// pt is a shorthand for pixel.Pt.
func pt(x, y int) pixel.Point {
	return pixel.Pt(x, y)
}

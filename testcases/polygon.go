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

package testcases

import (
	"math"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/hull"
	"seehuhn.de/go/pixel/line"
)

var polygonCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Shape: Polygon{
			Vertices: []pixel.Point{pt(10, 50), pt(32, 10), pt(54, 50)},
			Method:   hull.MethodGraham,
			Alg:      line.AlgBresenham,
		},
	},
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Shape: Polygon{
			Vertices: rectangle(10, 10, 54, 54),
			Method:   hull.MethodJarvis,
			Alg:      line.AlgDDA,
		},
	},
	{
		Name:   "arrow",
		Width:  64,
		Height: 64,
		Shape: Polygon{
			Vertices: []pixel.Point{
				pt(8, 24), pt(36, 24), pt(36, 10), pt(58, 32),
				pt(36, 54), pt(36, 40), pt(8, 40),
			},
			Method: hull.MethodGraham,
			Alg:    line.AlgWu,
		},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Shape: Polygon{
			Vertices: fivePointStar(32, 32, 25),
			Method:   hull.MethodJarvis,
			Alg:      line.AlgBresenham,
		},
	},
}

// rectangle returns the corners of an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 int) []pixel.Point {
	return []pixel.Point{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// fivePointStar returns the vertices of a five-pointed star
// (self-intersecting), connecting every second point of a pentagon.
func fivePointStar(cx, cy, r float64) []pixel.Point {
	pts := make([]pixel.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(
			int(math.Round(cx+r*math.Cos(angle))),
			int(math.Round(cy+r*math.Sin(angle))),
		)
	}

	order := []int{0, 2, 4, 1, 3}
	res := make([]pixel.Point, len(order))
	for i, j := range order {
		res[i] = pts[j]
	}
	return res
}

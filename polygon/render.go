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

package polygon

import (
	"iter"
	"math"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/line"
	"seehuhn.de/go/pixel/planar"
)

// Shading used by Render.
const (
	fillLevel   = 0.15
	hullLevel   = 0.5
	normalScale = 20
)

// Render draws the polygon onto c.  Edges are rasterized with alg; the
// closing edge is only drawn once the polygon is closed.  A closed polygon
// also gets a light even-odd fill, its convex hull at half intensity, and
// for convex polygons the inward normals.  Render returns the number of
// plots which landed on the canvas.
func (e *Editor) Render(c *pixel.Canvas, alg line.Algorithm) int {
	if len(e.vertices) == 0 {
		return 0
	}

	n := 0
	res, closed := e.Result()
	if closed {
		c.Fill(planar.Path(e.vertices), pixel.EvenOdd, fillLevel)
		n += c.Draw(scaled(line.Polyline(alg, res.Hull, true), hullLevel))
	}
	n += c.Draw(line.Polyline(alg, e.vertices, closed))

	for _, nv := range res.Normals {
		tip := nv.Tip(normalScale)
		from := pixel.Pt(int(math.Round(nv.Mid.X)), int(math.Round(nv.Mid.Y)))
		to := pixel.Pt(int(math.Round(tip.X)), int(math.Round(tip.Y)))
		n += c.Draw(line.Rasterize(alg, from, to))
	}
	return n
}

// scaled multiplies the intensity of every plot in seq by level.
func scaled(seq iter.Seq[pixel.Plot], level float64) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		for p := range seq {
			p.Intensity *= level
			if !yield(p) {
				return
			}
		}
	}
}

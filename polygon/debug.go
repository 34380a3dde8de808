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
	"math"

	"github.com/fogleman/gg"
	"seehuhn.de/go/pixel"
)

const debugPadding = 20

// DrawDebug writes a PNG image of the polygon to the named file, scaled by
// the given factor.  The polygon is drawn filled, with its convex hull in
// red and, for convex polygons, its normals in green.  The image uses a
// y-up frame.
//
// Unlike Render, this uses vector graphics and antialiased strokes; it is
// meant for inspecting results, not for showing the rasterizers.
func (e *Editor) DrawDebug(filename string, scale float64) error {
	if len(e.vertices) == 0 {
		return ErrTooFewVertices
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range e.vertices {
		minX = min(minX, float64(p.X))
		minY = min(minY, float64(p.Y))
		maxX = max(maxX, float64(p.X))
		maxY = max(maxY, float64(p.Y))
	}

	width := int(scale*(maxX-minX)) + 2*debugPadding
	height := int(scale*(maxY-minY)) + 2*debugPadding
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// origin at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(debugPadding, debugPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	res, closed := e.Result()

	outline(c, e.vertices, closed)
	c.SetRGB(0.8, 0.8, 1)
	if closed {
		c.FillPreserve()
	}
	c.SetRGB(0, 0, 0.6)
	c.SetLineWidth(2 / scale)
	c.Stroke()

	if len(res.Hull) > 1 {
		outline(c, res.Hull, true)
		c.SetRGB(0.8, 0, 0)
		c.SetLineWidth(1 / scale)
		c.Stroke()
	}

	c.SetRGB(0, 0.6, 0)
	for _, n := range res.Normals {
		tip := n.Tip(normalScale / scale)
		c.DrawLine(n.Mid.X, n.Mid.Y, tip.X, tip.Y)
		c.Stroke()
	}

	c.SetRGB(0, 0, 0)
	for _, p := range e.vertices {
		c.DrawCircle(float64(p.X), float64(p.Y), 3/scale)
		c.Fill()
	}

	return c.SavePNG(filename)
}

func outline(c *gg.Context, pts []pixel.Point, closed bool) {
	c.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	if closed {
		c.ClosePath()
	}
}

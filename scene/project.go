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

package scene

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/line"
)

// DefaultFactor is the screen scale used when a Viewport has no factor.
const DefaultFactor = 200

// Viewport describes the screen area a scene is projected onto.
type Viewport struct {
	Width, Height int

	// Factor scales projected coordinates to pixels.  If zero,
	// DefaultFactor is used.
	Factor float64
}

// Screen returns the map from projected coordinates to pixel
// coordinates.  The origin is moved to the centre of the viewport and the
// y-axis is flipped, so that positive y points up on screen.
func (vp Viewport) Screen() matrix.Matrix {
	f := vp.Factor
	if f == 0 {
		f = DefaultFactor
	}
	return matrix.Scale(f, -f).Translate(float64(vp.Width)/2, float64(vp.Height)/2)
}

// Project transforms every mesh vertex with p.Matrix(), applies the
// perspective divide x/(z+d), y/(z+d) with d = p.Distance, and maps the
// result to the viewport.
//
// Vertices with z+d = 0 project to infinite or NaN coordinates; these are
// returned as they are.
func Project(m *Mesh, p Params, vp Viewport) []vec.Vec2 {
	if m == nil {
		return nil
	}
	tr := p.Matrix()
	screen := vp.Screen()
	res := make([]vec.Vec2, len(m.Vertices))
	for i, v := range m.Vertices {
		w := tr.Apply(v)
		x := w.X / (w.Z + p.Distance)
		y := w.Y / (w.Z + p.Distance)
		res[i] = vec.Vec2{
			X: screen[0]*x + screen[2]*y + screen[4],
			Y: screen[1]*x + screen[3]*y + screen[5],
		}
	}
	return res
}

// Render projects the mesh and rasterizes every face as a closed polyline
// with the given line algorithm.  Faces with a vertex which does not
// project to a finite point, or projects absurdly far away, are skipped.
func Render(m *Mesh, p Params, vp Viewport, alg line.Algorithm) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		if m.IsEmpty() {
			return
		}
		proj := Project(m, p, vp)

		var pts []pixel.Point
	faces:
		for i, face := range m.Faces {
			pts = pts[:0]
			for _, idx := range face {
				q := proj[idx]
				if !isFinite(q) {
					pixel.Logger().Debug("skipping face", "face", i, "vertex", idx)
					continue faces
				}
				pts = append(pts, pixel.Pt(int(math.Round(q.X)), int(math.Round(q.Y))))
			}
			for plot := range line.Polyline(alg, pts, true) {
				if !yield(plot) {
					return
				}
			}
		}
	}
}

// isFinite reports whether q is a finite point within a million pixels of
// the origin.
func isFinite(q vec.Vec2) bool {
	const limit = 1 << 20
	return math.Abs(q.X) < limit && math.Abs(q.Y) < limit
}

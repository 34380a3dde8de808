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

// DDA rasterizes the segment from p0 to p1 with a digital differential
// analyzer: steps = max(|dx|, |dy|) equal real-valued increments, each
// rounded to the nearest pixel.  The sequence has steps+1 plots, starting
// at p0 and ending at p1.  Each plot records the un-rounded position in
// Pos.  A zero-length segment gives the single point p0.
func DDA(p0, p1 pixel.Point) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		dx := p1.X - p0.X
		dy := p1.Y - p0.Y
		steps := max(abs(dx), abs(dy))
		if steps == 0 {
			pixel.Logger().Debug("zero-length line", "alg", AlgDDA, "at", p0)
			yield(pixel.Plot{X: p0.X, Y: p0.Y, Intensity: 1, Pos: p0.Vec()})
			return
		}

		xInc := float64(dx) / float64(steps)
		yInc := float64(dy) / float64(steps)
		x, y := float64(p0.X), float64(p0.Y)
		for i := 0; i <= steps; i++ {
			p := pixel.Plot{
				Iter:      i,
				X:         int(math.Round(x)),
				Y:         int(math.Round(y)),
				Intensity: 1,
				Pos:       vec.Vec2{X: x, Y: y},
			}
			if !yield(p) {
				return
			}
			x += xInc
			y += yInc
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

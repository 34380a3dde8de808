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

package hull

import (
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/planar"
)

// Jarvis computes the convex hull of pts using the Jarvis march.
//
// The walk starts at the leftmost point (lowest among equals).  From each
// hull vertex the next one is the point which leaves all other points on
// its left; of several collinear candidates the farthest is taken.  The
// walk ends when it returns to the start.
//
// Repeated points are ignored.  If there are fewer than three distinct
// points, these are returned unchanged.
func Jarvis(pts []pixel.Point) []pixel.Point {
	pts, ok := prepare(pts)
	if !ok {
		return pts
	}

	start := pts[0]
	for _, p := range pts[1:] {
		if p.X < start.X || p.X == start.X && p.Y < start.Y {
			start = p
		}
	}

	var h []pixel.Point
	cur := start
	for range len(pts) {
		h = append(h, cur)
		next := cur
		for _, c := range pts {
			if c == cur {
				continue
			}
			if next == cur {
				next = c
				continue
			}
			x := planar.Cross(cur, next, c)
			if x < 0 || x == 0 && dist2(cur, c) > dist2(cur, next) {
				next = c
			}
		}
		cur = next
		if cur == start {
			break
		}
	}

	return normalize(h)
}

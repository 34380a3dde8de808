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
	"slices"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/planar"
)

// Graham computes the convex hull of pts using Graham's scan.
//
// The pivot is the lowest point (leftmost among equals).  All other points
// are sorted by polar angle around the pivot, nearer points first for equal
// angles, and scanned with a stack which drops every vertex that does not
// make a strict left turn.
//
// Repeated points are ignored.  If there are fewer than three distinct
// points, these are returned unchanged.
func Graham(pts []pixel.Point) []pixel.Point {
	pts, ok := prepare(pts)
	if !ok {
		return pts
	}

	pivotIdx := 0
	for i, p := range pts {
		if lower(p, pts[pivotIdx]) {
			pivotIdx = i
		}
	}
	pivot := pts[pivotIdx]
	rest := slices.Delete(slices.Clone(pts), pivotIdx, pivotIdx+1)

	slices.SortFunc(rest, func(a, b pixel.Point) int {
		c := planar.Cross(pivot, a, b)
		switch {
		case c > 0:
			return -1
		case c < 0:
			return 1
		}
		return dist2(pivot, a) - dist2(pivot, b)
	})

	stack := make([]pixel.Point, 0, len(pts))
	stack = append(stack, pivot)
	for _, p := range rest {
		for len(stack) >= 2 && planar.Cross(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	// points on the closing edge back to the pivot
	for len(stack) >= 3 && planar.Cross(stack[len(stack)-2], stack[len(stack)-1], pivot) <= 0 {
		stack = stack[:len(stack)-1]
	}

	return normalize(stack)
}

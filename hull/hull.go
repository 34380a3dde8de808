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

// Package hull computes convex hulls of pixel sets with Graham's scan and
// with the Jarvis march (gift wrapping).
//
// Both methods return the hull vertices counter-clockwise in a y-up
// frame, starting with the lowest vertex (leftmost among equals).
// Vertices in the interior of hull edges are omitted, so the two methods
// give identical results for the same input.
package hull

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/planar"
)

// Method selects a convex hull algorithm.
type Method int

// Supported methods.
const (
	MethodGraham Method = iota
	MethodJarvis
)

// ErrUnknownMethod is returned by ParseMethod for unrecognised names.
var ErrUnknownMethod = errors.New("unknown hull method")

func (m Method) String() string {
	switch m {
	case MethodGraham:
		return "graham"
	case MethodJarvis:
		return "jarvis"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a name like "Jarvis" into a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "graham":
		return MethodGraham, nil
	case "jarvis":
		return MethodJarvis, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Build computes the convex hull of pts with the given method.
// Unknown methods give an empty hull.
func Build(m Method, pts []pixel.Point) []pixel.Point {
	var h []pixel.Point
	switch m {
	case MethodGraham:
		h = Graham(pts)
	case MethodJarvis:
		h = Jarvis(pts)
	default:
		return nil
	}
	pixel.Logger().Debug("convex hull", "method", m, "points", len(pts), "hull", len(h))
	return h
}

// prepare returns a copy of pts without repeated points, and whether
// there are enough distinct points to build a hull.
func prepare(pts []pixel.Point) ([]pixel.Point, bool) {
	if len(pts) < 3 {
		return slices.Clone(pts), false
	}
	seen := make(map[pixel.Point]bool, len(pts))
	res := make([]pixel.Point, 0, len(pts))
	for _, p := range pts {
		if !seen[p] {
			seen[p] = true
			res = append(res, p)
		}
	}
	return res, len(res) >= 3
}

// lower reports whether p comes before q in (y, x) order.
func lower(p, q pixel.Point) bool {
	return p.Y < q.Y || p.Y == q.Y && p.X < q.X
}

func dist2(p, q pixel.Point) int {
	d := q.Sub(p)
	return d.X*d.X + d.Y*d.Y
}

// normalize brings a hull into counter-clockwise order and rotates it to
// start at its lowest vertex.
func normalize(h []pixel.Point) []pixel.Point {
	if planar.SignedArea(h) < 0 {
		slices.Reverse(h)
	}
	start := 0
	for i, p := range h {
		if lower(p, h[start]) {
			start = i
		}
	}
	return append(h[start:], h[:start]...)
}

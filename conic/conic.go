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

// Package conic rasterizes second-order curves: midpoint circles,
// two-region midpoint ellipses, and sampled hyperbolas and parabolas.
//
// All curves are centred on a pixel and exploit their symmetry: every
// iteration computes one point in the first quadrant (or octant, for the
// circle) and emits its mirror images.  Points on a symmetry axis are
// emitted more than once.
package conic

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pixel"
)

// Kind selects a second-order curve.
type Kind int

// Supported curve kinds.
const (
	KindCircle Kind = iota
	KindEllipse
	KindHyperbola
	KindParabola
)

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("unknown conic kind")

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindHyperbola:
		return "hyperbola"
	case KindParabola:
		return "parabola"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a name like "ellipse" into a Kind.
func ParseKind(name string) (Kind, error) {
	for k := KindCircle; k <= KindParabola; k++ {
		if strings.EqualFold(strings.TrimSpace(name), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Rasterize draws a curve of the given kind, centred at center.  The shape
// parameters are taken from the offset of boundary to center, the way an
// interactive user would drag them out:
//
//   - circle: r = |Δx|
//   - ellipse: rx = |Δx|, ry = |Δy|
//   - hyperbola: a = |Δx|, b = |Δy|
//   - parabola: p = |Δy| / 2, rounded down
//
// Hyperbolas and parabolas are unbounded and are cut off at the size of
// bounds.
func Rasterize(kind Kind, center, boundary pixel.Point, bounds rect.Rect) iter.Seq[pixel.Plot] {
	d := boundary.Sub(center)
	dx, dy := abs(d.X), abs(d.Y)
	switch kind {
	case KindCircle:
		return Circle(center, dx)
	case KindEllipse:
		return Ellipse(center, dx, dy)
	case KindHyperbola:
		return Hyperbola(center, dx, dy, bounds)
	case KindParabola:
		return Parabola(center, dy/2, bounds)
	}
	return func(func(pixel.Plot) bool) {}
}

// only returns a sequence with the single point p.
func only(p pixel.Point) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		yield(pixel.Plot{X: p.X, Y: p.Y, Intensity: 1, Pos: p.Vec()})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

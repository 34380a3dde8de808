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

// Package line implements the classic line rasterizers: the digital
// differential analyzer, Bresenham's integer algorithm and Wu's antialiased
// algorithm.
//
// Each rasterizer returns a sequence of [pixel.Plot] values.  Nothing is
// drawn; see [pixel.Canvas] for a consumer.
package line

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"seehuhn.de/go/pixel"
)

// Algorithm selects a line rasterizer.
type Algorithm int

// Supported line algorithms.
const (
	AlgDDA Algorithm = iota
	AlgBresenham
	AlgWu
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognised names.
var ErrUnknownAlgorithm = errors.New("unknown line algorithm")

func (a Algorithm) String() string {
	switch a {
	case AlgDDA:
		return "dda"
	case AlgBresenham:
		return "bresenham"
	case AlgWu:
		return "wu"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts a name like "bresenham" into an Algorithm.
// Matching is case-insensitive, and "cda" is accepted as an alias for
// "dda".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dda", "cda":
		return AlgDDA, nil
	case "bresenham":
		return AlgBresenham, nil
	case "wu":
		return AlgWu, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Rasterize returns the plots for the segment from p0 to p1, using the
// given algorithm.  Unknown algorithms give an empty sequence.
func Rasterize(alg Algorithm, p0, p1 pixel.Point) iter.Seq[pixel.Plot] {
	switch alg {
	case AlgDDA:
		return DDA(p0, p1)
	case AlgBresenham:
		return Bresenham(p0, p1)
	case AlgWu:
		return Wu(p0, p1)
	}
	return func(func(pixel.Plot) bool) {}
}

// Polyline rasterizes the segments between consecutive points.  If closed
// is set, the last point is joined to the first.  Shared vertices are
// plotted once for every segment they belong to.
func Polyline(alg Algorithm, pts []pixel.Point, closed bool) iter.Seq[pixel.Plot] {
	return func(yield func(pixel.Plot) bool) {
		n := len(pts)
		if n == 1 {
			yield(pixel.Plot{X: pts[0].X, Y: pts[0].Y, Intensity: 1})
			return
		}
		segs := n - 1
		if closed && n > 2 {
			segs = n
		}
		for i := range segs {
			for p := range Rasterize(alg, pts[i], pts[(i+1)%n]) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

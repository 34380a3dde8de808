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

// Package curve samples parametric cubic curves into pixel plots: Hermite
// interpolation through a list of points, single cubic Bézier segments and
// uniform cubic B-splines.
//
// Every curve segment is evaluated in matrix form, [t³ t² t 1]·M·G, where M
// is the basis matrix of the curve family and G holds the four geometry
// vectors of the segment.
package curve

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// DefaultSamples is the number of parameter steps per segment used when a
// non-positive sample count is given.
const DefaultSamples = 100

// Kind selects a curve family.
type Kind int

// Supported curve families.
const (
	KindHermite Kind = iota
	KindBezier
	KindBSpline
)

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("unknown curve kind")

func (k Kind) String() string {
	switch k {
	case KindHermite:
		return "hermite"
	case KindBezier:
		return "bezier"
	case KindBSpline:
		return "bspline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a name like "bspline" into a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hermite":
		return KindHermite, nil
	case "bezier", "bézier":
		return KindBezier, nil
	case "bspline", "b-spline":
		return KindBSpline, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MinPoints returns the number of control points a curve of kind k needs.
func (k Kind) MinPoints() int {
	if k == KindHermite {
		return 2
	}
	return 4
}

// Rasterize samples a curve of the given kind through or near the control
// points.  For Bézier curves only the first four points are used.  If
// there are fewer than k.MinPoints() points, the sequence is empty.
func Rasterize(kind Kind, points []pixel.Point, samples int) iter.Seq[pixel.Plot] {
	switch kind {
	case KindHermite:
		return Hermite(points, samples)
	case KindBezier:
		if len(points) < 4 {
			return empty
		}
		return Bezier(points[0], points[1], points[2], points[3], samples)
	case KindBSpline:
		return BSpline(points, samples)
	}
	return empty
}

func empty(func(pixel.Plot) bool) {}

type basis [4][4]float64

var (
	hermiteBasis = basis{
		{2, -2, 1, 1},
		{-3, 3, -2, -1},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
	}
	bezierBasis = basis{
		{-1, 3, -3, 1},
		{3, -6, 3, 0},
		{-3, 3, 0, 0},
		{1, 0, 0, 0},
	}
	bsplineBasis = basis{
		{-1, 3, -3, 1},
		{3, -6, 3, 0},
		{-3, 0, 3, 0},
		{1, 4, 1, 0},
	}
)

// eval returns [t³ t² t 1]·M·G, scaled by s.
func (m *basis) eval(g *[4]vec.Vec2, t, s float64) vec.Vec2 {
	T := [4]float64{t * t * t, t * t, t, 1}
	var res vec.Vec2
	for i := range 4 {
		var w float64
		for j := range 4 {
			w += T[j] * m[j][i]
		}
		res = res.Add(g[i].Mul(w * s))
	}
	return res
}

// segments samples consecutive curve segments.  Each segment is evaluated
// at t = i/samples for i = 0, …, samples.
type segments struct {
	m       *basis
	scale   float64
	samples int
	n       int
	geom    func(i int) [4]vec.Vec2
}

func (s *segments) all(yield func(pixel.Plot) bool) {
	samples := s.samples
	if samples <= 0 {
		samples = DefaultSamples
	}
	k := 0
	for seg := range s.n {
		g := s.geom(seg)
		for i := 0; i <= samples; i++ {
			t := float64(i) / float64(samples)
			pos := s.m.eval(&g, t, s.scale)
			p := pixel.Plot{
				Iter:      k,
				X:         int(math.Round(pos.X)),
				Y:         int(math.Round(pos.Y)),
				Intensity: 1,
				Pos:       pos,
			}
			if !yield(p) {
				return
			}
			k++
		}
	}
}

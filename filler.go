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

package pixel

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// FillRule selects how the interior of a self-intersecting or nested
// outline is determined.
type FillRule int

const (
	// NonZero treats a pixel as inside if the winding number is nonzero.
	NonZero FillRule = iota

	// EvenOdd treats a pixel as inside if a ray from it crosses the
	// outline an odd number of times.  This matches the point-in-polygon
	// test of the planar package.
	EvenOdd
)

// Filler computes anti-aliased pixel coverage for closed outlines, such as
// polygons and convex hulls.  Coverage is the fraction of a pixel's area
// inside the outline, from 0 to 1.  Outlines are given in device
// coordinates.
//
// A Filler keeps its buffers between calls; they grow as needed but never
// shrink.  A Filler is not safe for concurrent use.
type Filler struct {
	// Clip bounds output to this rectangle.  Coordinates must be
	// integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in pixels.
	Flatness float64

	cover  []float32 // signed vertical extent per pixel
	area   []float32 // cover weighted by horizontal position
	edges  []edge
	active []int

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewFiller returns a Filler for the given clip rectangle.
func NewFiller(clip rect.Rect) *Filler {
	return &Filler{
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Fill rasterizes the outline p using the given rule.  The emit callback
// receives the coverage of one row at a time, starting at column xMin;
// its slice argument is only valid during the call.  Subpaths are closed
// implicitly.
func (f *Filler) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := f.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]

	slices.SortFunc(f.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	f.active = f.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(f.edges) && min(f.edges[next].y0, f.edges[next].y1) < yBot {
			f.active = append(f.active, next)
			next++
		}
		if len(f.active) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)

		touched := false
		for i := 0; i < len(f.active); {
			e := &f.edges[f.active[i]]
			if max(e.y0, e.y1) <= yTop {
				f.active[i] = f.active[len(f.active)-1]
				f.active = f.active[:len(f.active)-1]
				continue
			}
			if f.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == NonZero {
			integrateNonZero(f.cover, f.area)
		} else {
			integrateEvenOdd(f.cover, f.area)
		}

		if trimmed, offset := trimZeros(f.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// collectEdges flattens p into f.edges and returns the bounding box of the
// edges, clamped to the clip rectangle.
func (f *Filler) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	f.edges = f.edges[:0]
	f.bboxEmpty = true

	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				f.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			f.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			f.flattenQuadratic(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			f.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				f.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		f.addEdge(current, start)
	}

	if len(f.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.bxMin)), int(f.Clip.LLx))
	xMax = min(int(math.Floor(f.bxMax))+1, int(f.Clip.URx))
	yMin = max(int(math.Floor(f.byMin)), int(f.Clip.LLy))
	yMax = min(int(math.Floor(f.byMax))+1, int(f.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (f *Filler) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	f.edges = append(f.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if f.bboxEmpty {
		f.bxMin, f.bxMax = min(a.X, b.X), max(a.X, b.X)
		f.byMin, f.byMax = min(a.Y, b.Y), max(a.Y, b.Y)
		f.bboxEmpty = false
		return
	}
	f.bxMin = min(f.bxMin, a.X, b.X)
	f.bxMax = max(f.bxMax, a.X, b.X)
	f.byMin = min(f.byMin, a.Y, b.Y)
	f.byMax = max(f.byMax, a.Y, b.Y)
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (f *Filler) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// error vector (P0 - 2*P1 + P2) / 4
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / f.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		f.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the segment count.
func (f *Filler) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		f.addEdge(prev, pt)
		prev = pt
	}
}

// Coverage model: for every pixel of a row we accumulate
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  cover weighted by (1 - xFrac), the part of the pixel to the
//	       right of the crossing
//
// The coverage of pixel i is then accum + area[i], where accum is the sum
// of cover over all pixels left of i.

// accumulate adds the contribution of e to row y.  It reports whether the
// edge overlaps the row.
func (f *Filler) accumulate(e *edge, y, bxMin, bxMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixRight < bxMin {
		c := sign * float32(yBot-yTop)
		f.cover[0] += c
		f.area[0] += c
		return true
	}
	if pixLeft >= bxMax {
		return false
	}

	if pixLeft == pixRight {
		f.addSpan(e, yTop, yBot, sign, pixLeft, bxMin, bxMax)
		return true
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		f.addSpan(e, lo, hi, sign, pix, bxMin, bxMax)
	}
	return true
}

// addSpan adds the part of e between lo and hi, which lies within pixel
// column pix.
func (f *Filler) addSpan(e *edge, lo, hi float64, sign float32, pix, bxMin, bxMax int) {
	c := sign * float32(hi-lo)
	switch {
	case pix < bxMin:
		f.cover[0] += c
		f.area[0] += c
	case pix < bxMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		xFrac := xMid - float64(pix)
		i := pix - bxMin
		f.cover[i] += c
		f.area[i] += c * float32(1-xFrac)
	}
}

// integrateNonZero turns accumulated cover and area into coverage values
// for the nonzero rule.  The result replaces cover.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns accumulated cover and area into coverage values
// for the even-odd rule.  The result replaces cover.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset, or nil if
// all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// which contributes coverage.
	horizontalEdgeThreshold = 1e-10
)

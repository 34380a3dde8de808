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
	"fmt"
	"iter"

	"seehuhn.de/go/geom/vec"
)

// Point is an integer pixel address.
type Point struct {
	X, Y int
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec returns the point as a real-valued vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Plot is a single event emitted by a rasterizer: the pixel to set, how
// strongly to set it, and the algorithm state that led to the choice.
// Diagnostic fields which an algorithm does not use are left zero.
type Plot struct {
	// Iter is the iteration of the algorithm which produced the plot.
	// Symmetric rasterizers emit several plots with the same Iter.
	Iter int

	// X and Y give the pixel address.
	X, Y int

	// Intensity is the pixel coverage, from 0 (no ink) to 1 (fully
	// opaque).
	Intensity float64

	// Pos is the real-valued position before conversion to a pixel
	// address (DDA, Wu, hyperbola, parabola and parametric curves).
	Pos vec.Vec2

	// Err is the Bresenham error term when the pixel was plotted and
	// NextErr is the corrected error term after the step.
	Err, NextErr int

	// Decision is the decision variable of the midpoint circle and
	// ellipse rasterizers at the time the pixel was plotted.
	Decision float64

	// Region is the region (1 or 2) of the midpoint ellipse rasterizer.
	Region int
}

// Pixel returns the pixel address of the plot.
func (p Plot) Pixel() Point {
	return Point{X: p.X, Y: p.Y}
}

// Pixels collects the pixel addresses of a plot sequence, in order.
func Pixels(seq iter.Seq[Plot]) []Point {
	var res []Point
	for p := range seq {
		res = append(res, p.Pixel())
	}
	return res
}

// Log records the plots of the most recently consumed sequence.
// This is the table shown next to the drawing area in an interactive
// session.  A Log is not safe for concurrent use.
type Log struct {
	entries []Plot
}

// Capture wraps seq so that every plot passing through is recorded.
// The log is cleared each time the returned sequence starts, so that
// repeated draws never accumulate.
func (l *Log) Capture(seq iter.Seq[Plot]) iter.Seq[Plot] {
	return func(yield func(Plot) bool) {
		l.Reset()
		for p := range seq {
			l.entries = append(l.entries, p)
			if !yield(p) {
				return
			}
		}
	}
}

// Entries returns the recorded plots.  The slice is valid until the next
// call to Capture or Reset.
func (l *Log) Entries() []Plot {
	return l.entries
}

// Len returns the number of recorded plots.
func (l *Log) Len() int {
	return len(l.entries)
}

// Reset discards all recorded plots.
func (l *Log) Reset() {
	l.entries = l.entries[:0]
}

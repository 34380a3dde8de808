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
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// coverageOf fills p into a w×h buffer of coverage values.
func coverageOf(p *path.Data, rule FillRule, w, h int) []float32 {
	buf := make([]float32, w*h)
	f := NewFiller(rect.Rect{URx: float64(w), URy: float64(h)})
	f.Fill(p, rule, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

func polygonPath(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	p := polygonPath(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 1})
	coverage := coverageOf(p, NonZero, 10, 1)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	// pixel-aligned rectangle from (2,1) to (6,4), plus a half-covered
	// column at x = 6
	p := polygonPath(
		vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 6.5, Y: 1},
		vec.Vec2{X: 6.5, Y: 4}, vec.Vec2{X: 2, Y: 4},
	)
	const w, h = 8, 6
	coverage := coverageOf(p, NonZero, w, h)
	for y := range h {
		for x := range w {
			var want float32
			switch {
			case y < 1 || y >= 4 || x < 2 || x > 6:
				want = 0
			case x == 6:
				want = 0.5
			default:
				want = 1
			}
			if got := coverage[y*w+x]; math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("(%d, %d): got %.3f, want %.3f", x, y, got, want)
			}
		}
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := polygonPath(
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0},
		vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10},
	)
	p = p.MoveTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 7, Y: 3}).
		LineTo(vec.Vec2{X: 7, Y: 7}).
		LineTo(vec.Vec2{X: 3, Y: 7}).
		Close()

	nonZero := coverageOf(p, NonZero, 10, 10)
	evenOdd := coverageOf(p, EvenOdd, 10, 10)

	inner := 5*10 + 5
	outer := 1*10 + 1
	if nonZero[inner] != 1 {
		t.Errorf("nonzero inner coverage %.3f, want 1", nonZero[inner])
	}
	if evenOdd[inner] != 0 {
		t.Errorf("even-odd inner coverage %.3f, want 0", evenOdd[inner])
	}
	if nonZero[outer] != 1 || evenOdd[outer] != 1 {
		t.Errorf("outer coverage %.3f/%.3f, want 1", nonZero[outer], evenOdd[outer])
	}
}

func TestFillClip(t *testing.T) {
	p := polygonPath(
		vec.Vec2{X: -5, Y: -5}, vec.Vec2{X: 50, Y: -5},
		vec.Vec2{X: 50, Y: 50}, vec.Vec2{X: -5, Y: 50},
	)
	f := NewFiller(rect.Rect{URx: 4, URy: 3})
	rows := 0
	f.Fill(p, NonZero, func(y, xMin int, coverage []float32) {
		rows++
		if y < 0 || y >= 3 || xMin < 0 || xMin+len(coverage) > 4 {
			t.Errorf("row %d [%d, %d) outside clip", y, xMin, xMin+len(coverage))
		}
	})
	if rows != 3 {
		t.Errorf("got %d rows, want 3", rows)
	}
}

func TestFillEmpty(t *testing.T) {
	f := NewFiller(rect.Rect{URx: 10, URy: 10})
	called := false
	emit := func(int, int, []float32) { called = true }

	f.Fill(&path.Data{}, NonZero, emit)
	// degenerate outline without area
	f.Fill(polygonPath(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 8, Y: 1}), NonZero, emit)
	// outline outside the clip rectangle
	f.Fill(polygonPath(
		vec.Vec2{X: 20, Y: 20}, vec.Vec2{X: 30, Y: 20}, vec.Vec2{X: 30, Y: 30},
	), NonZero, emit)

	if called {
		t.Error("emit called for empty fill")
	}
}

// TestAgainstVector compares the coverage of a star against the
// rasterizer from golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	var pts []vec.Vec2
	for i := range 5 {
		angle := float64(2*i%5)*2*math.Pi/5 - math.Pi/2
		pts = append(pts, vec.Vec2{
			X: 32 + 25*math.Cos(angle),
			Y: 32 + 25*math.Sin(angle),
		})
	}
	ours := coverageOf(polygonPath(pts...), NonZero, size, size)

	z := vector.NewRasterizer(size, size)
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		z.LineTo(float32(q.X), float32(q.Y))
	}
	z.ClosePath()
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	const tolerance = 3
	bad := 0
	for i, c := range ours {
		a := int(math.Round(float64(c) * 255))
		b := int(dst.Pix[i])
		if d := a - b; d > tolerance || d < -tolerance {
			bad++
			if bad <= 5 {
				t.Logf("pixel (%d, %d): got %d, vector has %d", i%size, i/size, a, b)
			}
		}
	}
	if bad > size*size/100 {
		t.Errorf("%d pixels differ by more than %d levels", bad, tolerance)
	}
}

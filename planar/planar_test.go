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

package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

var square = []pixel.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

func TestOrient(t *testing.T) {
	a, b := pixel.Pt(0, 0), pixel.Pt(4, 0)
	assert.Equal(t, Left, Orient(a, b, pixel.Pt(6, 3)))
	assert.Equal(t, Right, Orient(a, b, pixel.Pt(6, -3)))
	assert.Equal(t, Collinear, Orient(a, b, pixel.Pt(9, 0)))
	assert.Equal(t, 12, Cross(a, b, pixel.Pt(6, 3)))
	assert.Equal(t, "left", Left.String())
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(pixel.Pt(1, 1), pixel.Pt(4, 5)))
	assert.Equal(t, 0.0, Distance(pixel.Pt(3, 3), pixel.Pt(3, 3)))
}

func TestSquare(t *testing.T) {
	assert.True(t, IsConvex(square))
	assert.True(t, Contains(square, pixel.Pt(5, 5)))
	assert.False(t, Contains(square, pixel.Pt(15, 5)))
	assert.False(t, Contains(square, pixel.Pt(5, -1)))
	assert.Equal(t, 100.0, SignedArea(square))
}

func TestIsConvex(t *testing.T) {
	arrow := []pixel.Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 10}, {X: 3, Y: 5}}
	assert.False(t, IsConvex(arrow))

	// clockwise order is fine
	cw := []pixel.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	assert.True(t, IsConvex(cw))

	// collinear vertices on an edge are ignored
	withMid := []pixel.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.True(t, IsConvex(withMid))

	assert.False(t, IsConvex(square[:2]))
	assert.False(t, IsConvex(nil))
}

func TestContainsConcave(t *testing.T) {
	u := []pixel.Point{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}, {X: 20, Y: 30}, {X: 20, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 30}, {X: 0, Y: 30}}
	assert.True(t, Contains(u, pixel.Pt(5, 20)))
	assert.True(t, Contains(u, pixel.Pt(25, 20)))
	assert.True(t, Contains(u, pixel.Pt(15, 5)))
	assert.False(t, Contains(u, pixel.Pt(15, 20)))
	assert.False(t, Contains(u[:2], pixel.Pt(15, 0)))
}

func TestContainsRotation(t *testing.T) {
	// the result does not depend on the starting vertex
	poly := []pixel.Point{{X: 2, Y: 1}, {X: 12, Y: 3}, {X: 9, Y: 11}, {X: 5, Y: 7}, {X: 1, Y: 9}}
	probes := []pixel.Point{{X: 5, Y: 4}, {X: 8, Y: 8}, {X: 3, Y: 8}, {X: 11, Y: 10}, {X: 0, Y: 0}, {X: 6, Y: 9}}
	for _, q := range probes {
		want := Contains(poly, q)
		for k := 1; k < len(poly); k++ {
			rot := append(append([]pixel.Point{}, poly[k:]...), poly[:k]...)
			assert.Equal(t, want, Contains(rot, q), "probe %v, rotation %d", q, k)
		}
	}
}

func TestIntersect(t *testing.T) {
	s1 := Seg(pixel.Pt(0, 0), pixel.Pt(10, 10))
	s2 := Seg(pixel.Pt(0, 10), pixel.Pt(10, 0))

	p, ok := Intersect(s1, s2)
	require.True(t, ok)
	assert.InDelta(t, 5, p.X, 1e-12)
	assert.InDelta(t, 5, p.Y, 1e-12)

	q, ok := Intersect(s2, s1)
	require.True(t, ok)
	assert.InDelta(t, p.X, q.X, 1e-12)
	assert.InDelta(t, p.Y, q.Y, 1e-12)
}

func TestIntersectEdgeCases(t *testing.T) {
	// touching end points count
	p, ok := Intersect(Seg(pixel.Pt(0, 0), pixel.Pt(4, 0)), Seg(pixel.Pt(4, 0), pixel.Pt(4, 6)))
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 4, Y: 0}, p)

	// lines cross outside the segments
	_, ok = Intersect(Seg(pixel.Pt(0, 0), pixel.Pt(2, 2)), Seg(pixel.Pt(0, 10), pixel.Pt(10, 0)))
	assert.False(t, ok)

	// parallel and coincident segments are reported as disjoint
	_, ok = Intersect(Seg(pixel.Pt(0, 0), pixel.Pt(4, 0)), Seg(pixel.Pt(0, 1), pixel.Pt(4, 1)))
	assert.False(t, ok)
	_, ok = Intersect(Seg(pixel.Pt(0, 0), pixel.Pt(4, 0)), Seg(pixel.Pt(2, 0), pixel.Pt(6, 0)))
	assert.False(t, ok)
}

func TestPolygonIntersections(t *testing.T) {
	seg := Seg(pixel.Pt(-5, 3), pixel.Pt(15, 4))
	got := PolygonIntersections(square, seg)
	require.Len(t, got, 2)
	// right edge first, then left edge
	assert.Equal(t, vec.Vec2{X: 10, Y: 3.8}, got[0])
	assert.Equal(t, vec.Vec2{X: 0, Y: 3.3}, got[1])

	assert.Empty(t, PolygonIntersections(square, Seg(pixel.Pt(2, 2), pixel.Pt(8, 8))))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, vec.Vec2{X: 3.3, Y: -1.7}, Round1(vec.Vec2{X: 10.0 / 3, Y: -5.0 / 3}))
}

func TestNormals(t *testing.T) {
	ns := Normals(square)
	require.Len(t, ns, 4)

	want := []Normal{
		{Mid: vec.Vec2{X: 5, Y: 0}, Dir: vec.Vec2{X: 0, Y: 1}},
		{Mid: vec.Vec2{X: 10, Y: 5}, Dir: vec.Vec2{X: -1, Y: 0}},
		{Mid: vec.Vec2{X: 5, Y: 10}, Dir: vec.Vec2{X: 0, Y: -1}},
		{Mid: vec.Vec2{X: 0, Y: 5}, Dir: vec.Vec2{X: 1, Y: 0}},
	}
	for i, n := range ns {
		assert.InDelta(t, want[i].Mid.X, n.Mid.X, 1e-12)
		assert.InDelta(t, want[i].Mid.Y, n.Mid.Y, 1e-12)
		assert.InDelta(t, want[i].Dir.X, n.Dir.X, 1e-12)
		assert.InDelta(t, want[i].Dir.Y, n.Dir.Y, 1e-12)
		assert.InDelta(t, 1, n.Dir.Length(), 1e-12)

		// a counter-clockwise polygon has inward normals
		tip := n.Tip(1)
		assert.True(t, Contains(square, pixel.Pt(int(math.Round(tip.X)), int(math.Round(tip.Y)))))
	}

	degenerate := Normals([]pixel.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 4, Y: 5}})
	assert.Equal(t, vec.Vec2{}, degenerate[0].Dir)
}

func TestInwardNormals(t *testing.T) {
	cw := []pixel.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	for _, n := range InwardNormals(cw) {
		tip := n.Tip(1)
		assert.True(t, Contains(cw, pixel.Pt(int(math.Round(tip.X)), int(math.Round(tip.Y)))), "normal at %v", n.Mid)
	}
	assert.Equal(t, Normals(square), InwardNormals(square))
}

func TestPath(t *testing.T) {
	p := Path(square)
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, p.Cmds)
	assert.Len(t, p.Coords, 4)
	assert.Empty(t, Path(nil).Cmds)
}

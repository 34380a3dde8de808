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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/planar"
)

var methods = []Method{MethodGraham, MethodJarvis}

func TestSquareWithCentre(t *testing.T) {
	pts := []pixel.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
	want := []pixel.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	for _, m := range methods {
		h := Build(m, pts)
		assert.Equal(t, want, h, m.String())
		assert.NotContains(t, h, pixel.Pt(5, 5), m.String())
	}
}

func TestInputUnchanged(t *testing.T) {
	pts := []pixel.Point{{X: 3, Y: 1}, {X: 0, Y: 0}, {X: 2, Y: 5}, {X: 1, Y: 1}}
	orig := append([]pixel.Point{}, pts...)
	for _, m := range methods {
		Build(m, pts)
		assert.Equal(t, orig, pts, m.String())
	}
}

func TestSmallInputs(t *testing.T) {
	for _, m := range methods {
		assert.Empty(t, Build(m, nil))
		assert.Equal(t, []pixel.Point{{X: 1, Y: 2}}, Build(m, []pixel.Point{{X: 1, Y: 2}}))
		assert.Equal(t, []pixel.Point{{X: 4, Y: 2}, {X: 1, Y: 2}}, Build(m, []pixel.Point{{X: 4, Y: 2}, {X: 1, Y: 2}}))

		// three points, but only two distinct ones
		assert.Equal(t, []pixel.Point{{X: 4, Y: 2}, {X: 1, Y: 2}}, Build(m, []pixel.Point{{X: 4, Y: 2}, {X: 1, Y: 2}, {X: 4, Y: 2}}))
	}
}

func TestDuplicates(t *testing.T) {
	pts := []pixel.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 6}, {X: 8, Y: 0}, {X: 4, Y: 2}, {X: 4, Y: 6}}
	want := []pixel.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 4, Y: 6}}
	for _, m := range methods {
		assert.Equal(t, want, Build(m, pts), m.String())
	}
}

func TestCollinear(t *testing.T) {
	edge := []pixel.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 10, Y: 10}, {X: 5, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5}}
	want := []pixel.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	for _, m := range methods {
		assert.Equal(t, want, Build(m, edge), m.String())
	}

	line := []pixel.Point{{X: 0, Y: 10}, {X: 5, Y: 5}, {X: 10, Y: 0}, {X: 3, Y: 7}}
	for _, m := range methods {
		assert.Equal(t, []pixel.Point{{X: 10, Y: 0}, {X: 0, Y: 10}}, Build(m, line), m.String())
	}
}

func TestMethodsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := range 200 {
		n := 3 + rng.IntN(40)
		pts := make([]pixel.Point, n)
		for i := range pts {
			// a small grid gives plenty of collinear and repeated points
			pts[i] = pixel.Pt(rng.IntN(12), rng.IntN(12))
		}

		g := Graham(pts)
		j := Jarvis(pts)
		require.Equal(t, g, j, "trial %d: %v", trial, pts)

		if len(g) < 3 {
			continue
		}
		assert.Positive(t, planar.SignedArea(g), "trial %d", trial)
		assert.True(t, planar.IsConvex(g), "trial %d", trial)
		for _, p := range pts {
			for k := range g {
				c := planar.Cross(g[k], g[(k+1)%len(g)], p)
				if c < 0 {
					t.Fatalf("trial %d: %v lies outside hull edge %d of %v", trial, p, k, g)
				}
			}
		}
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Jarvis")
	require.NoError(t, err)
	assert.Equal(t, MethodJarvis, m)

	m, err = ParseMethod(MethodGraham.String())
	require.NoError(t, err)
	assert.Equal(t, MethodGraham, m)

	_, err = ParseMethod("quickhull")
	assert.True(t, errors.Is(err, ErrUnknownMethod))

	assert.Nil(t, Build(Method(7), []pixel.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}))
}

func BenchmarkGraham(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	pts := make([]pixel.Point, 1000)
	for i := range pts {
		pts[i] = pixel.Pt(rng.IntN(1000), rng.IntN(1000))
	}
	for b.Loop() {
		Graham(pts)
	}
}

func BenchmarkJarvis(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	pts := make([]pixel.Point, 1000)
	for i := range pts {
		pts[i] = pixel.Pt(rng.IntN(1000), rng.IntN(1000))
	}
	for b.Loop() {
		Jarvis(pts)
	}
}

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

package scene

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/line"
)

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-9, "z")
}

func TestRotations(t *testing.T) {
	assertVec3(t, Vec3{0, 1, 0}, RotationZ(math.Pi/2).Apply(Vec3{1, 0, 0}))
	assertVec3(t, Vec3{0, 0, 1}, RotationX(math.Pi/2).Apply(Vec3{0, 1, 0}))
	assertVec3(t, Vec3{1, 0, 0}, RotationY(math.Pi/2).Apply(Vec3{0, 0, 1}))

	v := Vec3{1, 2, 3}
	for _, m := range []Mat4{RotationX(0.3), RotationY(-1.2), RotationZ(2.5)} {
		w := m.Apply(v)
		assert.InDelta(t, math.Sqrt(14), math.Sqrt(w.X*w.X+w.Y*w.Y+w.Z*w.Z), 1e-9)
	}
}

func TestMul(t *testing.T) {
	m := RotationY(0.7).Mul(Translation(1, -2, 3))
	assert.Equal(t, m, Identity4.Mul(m))
	assert.Equal(t, m, m.Mul(Identity4))

	v := Vec3{0.5, 4, -2}
	assertVec3(t, RotationY(0.7).Apply(Translation(1, -2, 3).Apply(v)), m.Apply(v))
}

func TestParamsOrder(t *testing.T) {
	p := Params{RotZ: math.Pi / 2, Scale: 2, TX: 1, TY: 2, TZ: 3}
	// scaled to (2, 0, 0), rotated to (0, 2, 0), moved to (1, 4, 3)
	assertVec3(t, Vec3{1, 4, 3}, p.Matrix().Apply(Vec3{1, 0, 0}))

	assert.Equal(t, Identity4, Params{Scale: 1}.Matrix())
}

func TestLoad(t *testing.T) {
	fd, err := os.Open(filepath.Join("testdata", "pyramid.txt"))
	require.NoError(t, err)
	defer fd.Close()

	m, err := Load(fd)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 5)
	assert.Equal(t, Vec3{0, 0, 1.5}, m.Vertices[4])
	require.Len(t, m.Faces, 5)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Faces[0])
	assert.Equal(t, []int{3, 0, 4}, m.Faces[4])
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"empty", "", 0},
		{"comment only", "# nothing\n\n", 0},
		{"no faces", "0 0 0\n1 0 0\n", 0},
		{"two columns", "0 0 0\n1 0\n\n0 1\n", 2},
		{"bad number", "0 0 0\n1 x 0\n\n0 1\n", 2},
		{"bad index", "0 0 0\n1 0 0\n\n0 one\n", 4},
		{"index range", "0 0 0\n1 0 0\n\n0 2\n", 4},
		{"negative index", "0 0 0\n1 0 0\n\n-1 0\n", 4},
		{"short face", "0 0 0\n1 0 0\n# faces\n1\n", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Load(strings.NewReader(c.input))
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidSceneFormat)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, c.line, fe.Line)
		})
	}
}

func TestLoadSeparators(t *testing.T) {
	input := "\n# header\n0 0 0\n1 0 0\n0 1 0\n# faces\n\n0 1 2\n# more\n2 1\n"
	m, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 3)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 1}}, m.Faces)
}

func TestProject(t *testing.T) {
	vp := Viewport{Width: 400, Height: 300}
	m := &Mesh{Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 1}}}
	p := Params{Scale: 1, Distance: 4}

	q := Project(m, p, vp)
	require.Len(t, q, 3)
	assert.InDelta(t, 200, q[0].X, 1e-9)
	assert.InDelta(t, 150, q[0].Y, 1e-9)
	assert.InDelta(t, 200+DefaultFactor/4.0, q[1].X, 1e-9)
	assert.InDelta(t, 150, q[1].Y, 1e-9)
	// y points up on screen, and depth shrinks the offset
	assert.InDelta(t, 200, q[2].X, 1e-9)
	assert.InDelta(t, 150-DefaultFactor/5.0, q[2].Y, 1e-9)

	vp.Factor = 10
	q = Project(m, p, vp)
	assert.InDelta(t, 202.5, q[1].X, 1e-9)
}

func TestRender(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100, Factor: 100}
	m := &Mesh{
		Vertices: []Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		Faces:    [][]int{{0, 1, 2, 3}},
	}
	p := Params{Scale: 1, Distance: 4}

	c := pixel.NewCanvas(vp.Width, vp.Height)
	n := c.Draw(Render(m, p, vp, line.AlgBresenham))
	// four edges of 51 pixels each
	assert.Equal(t, 4*51, n)
	assert.Equal(t, uint8(0), c.At(25, 25))
	assert.Equal(t, uint8(0), c.At(75, 50))
	assert.Equal(t, uint8(255), c.At(50, 50))
}

func TestRenderSkipsDegenerate(t *testing.T) {
	vp := Viewport{Width: 100, Height: 100}
	m := &Mesh{
		Vertices: []Vec3{{0, 0, 0}, {0.1, 0, 0}, {0, 0.1, 0}, {0.1, 0.1, -4}},
		Faces:    [][]int{{0, 1, 2}, {1, 2, 3}},
	}
	p := Params{Scale: 1, Distance: 4}

	all := pixel.Pixels(Render(m, p, vp, line.AlgDDA))
	good := pixel.Pixels(Render(&Mesh{Vertices: m.Vertices, Faces: m.Faces[:1]}, p, vp, line.AlgDDA))
	assert.NotEmpty(t, good)
	assert.Equal(t, good, all)

	assert.Empty(t, pixel.Pixels(Render(nil, p, vp, line.AlgDDA)))
	assert.Empty(t, pixel.Pixels(Render(&Mesh{}, p, vp, line.AlgDDA)))
}

func TestStageLoad(t *testing.T) {
	s := NewStage(DefaultParams())
	assert.True(t, s.Mesh().IsEmpty())

	require.NoError(t, s.Load(strings.NewReader("0 0 0\n1 1 1\n\n0 1\n")))
	assert.Len(t, s.Mesh().Vertices, 2)

	err := s.Load(strings.NewReader("0 0 0\n1 1\n"))
	assert.ErrorIs(t, err, ErrInvalidSceneFormat)
	assert.True(t, s.Mesh().IsEmpty())

	s.SetMesh(Cube())
	assert.Len(t, s.Mesh().Faces, 6)
	s.SetMesh(nil)
	assert.True(t, s.Mesh().IsEmpty())
}

func TestStageUpdate(t *testing.T) {
	s := NewStage(Params{Scale: 1})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.Update(func(p Params) Params {
					p.RotY += 1
					return p
				})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800.0, s.Params().RotY)
}

// TestStageRun checks that frames never mix old and new parameters while
// a control goroutine keeps changing them.
func TestStageRun(t *testing.T) {
	s := NewStage(Params{Scale: 1})
	s.SetMesh(Cube())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	go func() {
		for i := 0; ctx.Err() == nil; i++ {
			a := float64(i)
			s.SetParams(Params{RotX: a, RotY: a, RotZ: a, Scale: 1, TZ: a, Distance: 10})
		}
	}()

	var frames []Frame
	err := s.Run(ctx, time.Millisecond, func(f Frame) {
		frames = append(frames, f)
		for range Render(f.Mesh, f.Params, Viewport{Width: 64, Height: 64}, line.AlgWu) {
		}
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotEmpty(t, frames)

	for i, f := range frames {
		p := f.Params
		assert.True(t, p.RotX == p.RotY && p.RotY == p.RotZ && p.RotZ == p.TZ, "torn frame %v", p)
		assert.Len(t, f.Mesh.Faces, 6)
		if i > 0 {
			assert.Greater(t, f.Seq, frames[i-1].Seq)
		}
	}
}

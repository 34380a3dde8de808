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
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"seehuhn.de/go/pixel"
)

// Stage holds the mesh and the transform parameters shown by a render
// loop.  Both are replaced as a whole, never modified in place, so that a
// reader always sees a consistent pair of values.  All methods are safe
// for concurrent use.
type Stage struct {
	mesh   atomic.Pointer[Mesh]
	params atomic.Pointer[Params]
	frames atomic.Int64
}

// NewStage returns a stage with an empty mesh and the given parameters.
func NewStage(p Params) *Stage {
	s := &Stage{}
	s.mesh.Store(&Mesh{})
	s.params.Store(&p)
	return s
}

// Load reads a new mesh from r.  If the input is malformed, the stage is
// reset to an empty mesh and the error is returned.
func (s *Stage) Load(r io.Reader) error {
	m, err := Load(r)
	if err != nil {
		s.mesh.Store(&Mesh{})
		pixel.Logger().Warn("scene load failed", "error", err)
		return fmt.Errorf("loading scene: %w", err)
	}
	s.mesh.Store(m)
	pixel.Logger().Info("scene loaded", "vertices", len(m.Vertices), "faces", len(m.Faces))
	return nil
}

// SetMesh replaces the mesh.  The caller must not modify m afterwards.
func (s *Stage) SetMesh(m *Mesh) {
	if m == nil {
		m = &Mesh{}
	}
	s.mesh.Store(m)
}

// Mesh returns the current mesh.  The result must not be modified.
func (s *Stage) Mesh() *Mesh {
	return s.mesh.Load()
}

// SetParams replaces the transform parameters.
func (s *Stage) SetParams(p Params) {
	s.params.Store(&p)
}

// Params returns the current transform parameters.
func (s *Stage) Params() Params {
	return *s.params.Load()
}

// Update atomically replaces the parameters by fn applied to the current
// ones and returns the new value.  If another update intervenes, fn is
// called again with the newer parameters.
func (s *Stage) Update(fn func(Params) Params) Params {
	for {
		old := s.params.Load()
		next := fn(*old)
		if s.params.CompareAndSwap(old, &next) {
			return next
		}
	}
}

// Frame is a consistent view of a stage, taken at one instant.
type Frame struct {
	Seq    int64
	Mesh   *Mesh
	Params Params
}

// Snapshot returns the current mesh and parameters as a frame.
func (s *Stage) Snapshot() Frame {
	return Frame{
		Seq:    s.frames.Add(1),
		Mesh:   s.mesh.Load(),
		Params: *s.params.Load(),
	}
}

// Run calls draw with a fresh snapshot immediately and then once per
// interval, until ctx is cancelled.  Run returns the context's error.
func (s *Stage) Run(ctx context.Context, interval time.Duration, draw func(Frame)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		draw(s.Snapshot())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

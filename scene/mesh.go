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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidSceneFormat is matched by all errors Load returns for
// malformed input.
var ErrInvalidSceneFormat = errors.New("invalid scene format")

// FormatError describes a malformed line of a scene file.
type FormatError struct {
	Line int // 1-based, 0 if the error concerns the whole file
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("scene line %d: %s", e.Line, msg)
	}
	return "scene: " + msg
}

// Unwrap gives access to ErrInvalidSceneFormat and to the underlying cause.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidSceneFormat}
	}
	return []error{ErrInvalidSceneFormat, e.Err}
}

// Mesh is a set of vertices and of faces connecting them.  A mesh is not
// modified once it has been loaded.
type Mesh struct {
	Vertices []Vec3

	// Faces lists the vertex indices of each face, which are 0-based
	// indices into Vertices.
	Faces [][]int
}

// IsEmpty reports whether the mesh has nothing to draw.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Faces) == 0
}

// Load reads a mesh in the scene text format.
//
// The file starts with vertex lines, three space-separated numbers each.
// A blank line or a line starting with '#' ends the vertex list; all
// following non-blank lines which do not start with '#' are faces, given
// as space-separated vertex indices.  Blank and comment lines before the
// first vertex are skipped.
//
// On error, no mesh is returned.  Errors match ErrInvalidSceneFormat
// unless reading from r failed.
func Load(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	inFaces := false
	lineNo := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		skip := text == "" || strings.HasPrefix(text, "#")

		switch {
		case skip && len(m.Vertices) > 0:
			inFaces = true
			continue
		case skip:
			continue
		}

		fields := strings.Fields(text)
		if !inFaces {
			v, err := parseVertex(fields)
			if err != nil {
				return nil, &FormatError{Line: lineNo, Msg: "bad vertex", Err: err}
			}
			m.Vertices = append(m.Vertices, v)
			continue
		}

		face, err := parseFace(fields, len(m.Vertices))
		if err != nil {
			return nil, &FormatError{Line: lineNo, Msg: "bad face", Err: err}
		}
		m.Faces = append(m.Faces, face)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	if len(m.Vertices) == 0 {
		return nil, &FormatError{Msg: "no vertices"}
	}
	if len(m.Faces) == 0 {
		return nil, &FormatError{Msg: "no faces"}
	}
	return m, nil
}

func parseVertex(fields []string) (Vec3, error) {
	if len(fields) != 3 {
		return Vec3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vec3{}, err
		}
		c[i] = x
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func parseFace(fields []string, numVertices int) ([]int, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("expected at least 2 indices, got %d", len(fields))
	}
	face := make([]int, len(fields))
	for i, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= numVertices {
			return nil, fmt.Errorf("vertex index %d out of range [0, %d)", idx, numVertices)
		}
		face[i] = idx
	}
	return face, nil
}

// Cube returns the wireframe of the cube [-1, 1]³.
func Cube() *Mesh {
	return &Mesh{
		Vertices: []Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Faces: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			{0, 1, 5, 4},
			{2, 3, 7, 6},
			{0, 3, 7, 4},
			{1, 2, 6, 5},
		},
	}
}

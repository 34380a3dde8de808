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

// Package scene implements a small wireframe pipeline: a mesh of vertices
// and faces is transformed by rotation, scaling and translation, projected
// with a perspective divide, and its faces are rasterized as closed
// polylines.
//
// Transform parameters are immutable values.  A [Stage] shares the current
// mesh and parameters between a control path and a render loop running in
// different goroutines.
package scene

import "math"

// Vec3 is a point or direction in space.
type Vec3 struct {
	X, Y, Z float64
}

// IsFinite reports whether all coordinates are finite.
func (v Vec3) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.Z, 0) && !math.IsNaN(v.Z)
}

// Mat4 is a 4×4 matrix acting on homogeneous column vectors.
type Mat4 [4][4]float64

// Identity4 is the identity transformation.
var Identity4 = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// RotationX returns a rotation by the angle a (in radians) about the x-axis.
func RotationX(a float64) Mat4 {
	s, c := math.Sincos(a)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation by the angle a (in radians) about the y-axis.
func RotationY(a float64) Mat4 {
	s, c := math.Sincos(a)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation by the angle a (in radians) about the z-axis.
func RotationZ(a float64) Mat4 {
	s, c := math.Sincos(a)
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Scaling returns a uniform scaling by the factor f.
func Scaling(f float64) Mat4 {
	return Mat4{
		{f, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, f, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a translation by (x, y, z).
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Mul returns the product m·n, which applies n first and then m.
func (m Mat4) Mul(n Mat4) Mat4 {
	var res Mat4
	for i := range 4 {
		for j := range 4 {
			var s float64
			for k := range 4 {
				s += m[i][k] * n[k][j]
			}
			res[i][j] = s
		}
	}
	return res
}

// Apply transforms the point v, using w = 1 for the homogeneous coordinate.
// The resulting homogeneous coordinate is dropped.
func (m Mat4) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// Params are the parameters of the scene transformation.  Angles are in
// radians.
type Params struct {
	RotX, RotY, RotZ float64
	Scale            float64
	TX, TY, TZ       float64

	// Distance is added to the depth of every vertex before the
	// perspective divide.
	Distance float64
}

// DefaultParams returns parameters which show a unit-sized mesh centred
// at the origin.
func DefaultParams() Params {
	return Params{Scale: 1, Distance: 5}
}

// Matrix returns the composed transformation T·Rx·Ry·Rz·S: vertices are
// scaled first, then rotated about the z, y and x axes, and finally
// translated.
func (p Params) Matrix() Mat4 {
	return Translation(p.TX, p.TY, p.TZ).
		Mul(RotationX(p.RotX)).
		Mul(RotationY(p.RotY)).
		Mul(RotationZ(p.RotZ)).
		Mul(Scaling(p.Scale))
}

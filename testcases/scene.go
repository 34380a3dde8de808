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

package testcases

import (
	"math"

	"seehuhn.de/go/pixel/line"
	"seehuhn.de/go/pixel/scene"
)

var sceneCases = []TestCase{
	{
		Name:   "cube_front",
		Width:  128,
		Height: 128,
		Shape: Scene{
			Mesh:   scene.Cube(),
			Params: scene.DefaultParams(),
			Alg:    line.AlgBresenham,
		},
	},
	{
		Name:   "cube_rotated",
		Width:  128,
		Height: 128,
		Shape: Scene{
			Mesh:   scene.Cube(),
			Params: scene.Params{RotX: math.Pi / 6, RotY: math.Pi / 4, Scale: 1, Distance: 5},
			Alg:    line.AlgWu,
		},
	},
	{
		Name:   "cube_small_far",
		Width:  128,
		Height: 128,
		Shape: Scene{
			Mesh:   scene.Cube(),
			Params: scene.Params{RotY: math.Pi / 8, Scale: 0.5, TZ: 3, Distance: 5},
			Alg:    line.AlgDDA,
		},
	},
}

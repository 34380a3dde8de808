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
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/line"
)

var lineCases = []TestCase{
	{
		Name:   "horizontal_dda",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgDDA, Points: []pixel.Point{pt(2, 32), pt(61, 32)}},
	},
	{
		Name:   "horizontal_bresenham",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgBresenham, Points: []pixel.Point{pt(2, 32), pt(61, 32)}},
	},
	{
		Name:   "shallow_dda",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgDDA, Points: []pixel.Point{pt(2, 10), pt(60, 30)}},
	},
	{
		Name:   "shallow_bresenham",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgBresenham, Points: []pixel.Point{pt(2, 10), pt(60, 30)}},
	},
	{
		Name:   "shallow_wu",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgWu, Points: []pixel.Point{pt(2, 10), pt(60, 30)}},
	},
	{
		Name:   "steep_dda",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgDDA, Points: []pixel.Point{pt(10, 2), pt(22, 61)}},
	},
	{
		Name:   "steep_wu",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgWu, Points: []pixel.Point{pt(10, 2), pt(22, 61)}},
	},
	{
		Name:   "diagonal_bresenham",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgBresenham, Points: []pixel.Point{pt(2, 2), pt(61, 61)}},
	},
	{
		Name:   "reversed_bresenham",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgBresenham, Points: []pixel.Point{pt(60, 50), pt(4, 8)}},
	},
	{
		Name:   "single_point",
		Width:  64,
		Height: 64,
		Shape:  Line{Alg: line.AlgDDA, Points: []pixel.Point{pt(32, 32), pt(32, 32)}},
	},

	// polylines
	{
		Name:   "zigzag_open",
		Width:  64,
		Height: 64,
		Shape: Line{
			Alg:    line.AlgBresenham,
			Points: []pixel.Point{pt(4, 50), pt(16, 14), pt(28, 50), pt(40, 14), pt(52, 50)},
		},
	},
	{
		Name:   "square_closed_wu",
		Width:  64,
		Height: 64,
		Shape: Line{
			Alg:    line.AlgWu,
			Points: []pixel.Point{pt(12, 12), pt(52, 12), pt(52, 52), pt(12, 52)},
			Closed: true,
		},
	},
}

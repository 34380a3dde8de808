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
	"seehuhn.de/go/pixel/curve"
)

var (
	wave = []pixel.Point{pt(4, 40), pt(20, 10), pt(36, 50), pt(52, 14), pt(60, 30)}
	hook = []pixel.Point{pt(8, 56), pt(8, 8), pt(56, 8), pt(56, 40)}
)

var curveCases = []TestCase{
	{
		Name:   "hermite_wave",
		Width:  64,
		Height: 64,
		Shape:  Curve{Kind: curve.KindHermite, Points: wave},
	},
	{
		Name:   "bspline_wave",
		Width:  64,
		Height: 64,
		Shape:  Curve{Kind: curve.KindBSpline, Points: wave},
	},
	{
		Name:   "bezier_hook",
		Width:  64,
		Height: 64,
		Shape:  Curve{Kind: curve.KindBezier, Points: hook},
	},
	{
		Name:   "bezier_hook_coarse",
		Width:  64,
		Height: 64,
		Shape:  Curve{Kind: curve.KindBezier, Points: hook, Samples: 10},
	},
	{
		Name:   "hermite_two_points",
		Width:  64,
		Height: 64,
		Shape:  Curve{Kind: curve.KindHermite, Points: []pixel.Point{pt(4, 4), pt(60, 60)}},
	},
}

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

import "seehuhn.de/go/pixel/conic"

var conicCases = []TestCase{
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Shape:  Conic{Kind: conic.KindCircle, Center: pt(32, 32), Boundary: pt(56, 32)},
	},
	{
		Name:   "circle_small",
		Width:  16,
		Height: 16,
		Shape:  Conic{Kind: conic.KindCircle, Center: pt(8, 8), Boundary: pt(11, 8)},
	},
	{
		Name:   "circle_zero_radius",
		Width:  16,
		Height: 16,
		Shape:  Conic{Kind: conic.KindCircle, Center: pt(8, 8), Boundary: pt(8, 12)},
	},
	{
		Name:   "ellipse_wide",
		Width:  64,
		Height: 64,
		Shape:  Conic{Kind: conic.KindEllipse, Center: pt(32, 32), Boundary: pt(60, 44)},
	},
	{
		Name:   "ellipse_tall",
		Width:  64,
		Height: 64,
		Shape:  Conic{Kind: conic.KindEllipse, Center: pt(32, 32), Boundary: pt(42, 60)},
	},
	{
		Name:   "ellipse_flat",
		Width:  64,
		Height: 64,
		Shape:  Conic{Kind: conic.KindEllipse, Center: pt(32, 32), Boundary: pt(52, 32)},
	},
	{
		Name:   "hyperbola",
		Width:  64,
		Height: 64,
		Shape:  Conic{Kind: conic.KindHyperbola, Center: pt(32, 32), Boundary: pt(40, 38)},
	},
	{
		Name:   "parabola",
		Width:  64,
		Height: 64,
		Shape:  Conic{Kind: conic.KindParabola, Center: pt(32, 32), Boundary: pt(32, 48)},
	},
}

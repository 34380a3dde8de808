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

package polygon

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"seehuhn.de/go/pixel"
)

// ErrNoPolygon is returned by LoadSVG if the document contains no
// <polygon> element.
var ErrNoPolygon = errors.New("no polygon element found")

// LoadSVG reads the vertices of the first <polygon> element of an SVG
// document.  Coordinates are rounded to the nearest pixel.  Points are
// separated by white space, with the two coordinates of a point separated
// by a comma.
func LoadSVG(r io.Reader) ([]pixel.Point, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, ErrNoPolygon
	}

	var pts []pixel.Point
	for _, field := range strings.Fields(polygons[0].Attributes["points"]) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q", field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %w", xs, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %w", ys, err)
		}
		pts = append(pts, pixel.Pt(int(math.Round(x)), int(math.Round(y))))
	}
	return pts, nil
}

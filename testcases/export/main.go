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

// Command export writes the test cases and the plots they produce to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Shape  string     `json:"shape"`
	Params jsonParams `json:"params"`
	Plots  []jsonPlot `json:"plots"`
}

type jsonParams struct {
	Algorithm string  `json:"algorithm,omitempty"`
	Points    [][]int `json:"points,omitempty"`
	Closed    bool    `json:"closed,omitempty"`
	Samples   int     `json:"samples,omitempty"`
}

type jsonPlot struct {
	Iter      int     `json:"iter"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Intensity float64 `json:"intensity"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	switch s := tc.Shape.(type) {
	case testcases.Line:
		jtc.Shape = "line"
		jtc.Params = jsonParams{Algorithm: s.Alg.String(), Points: points(s.Points), Closed: s.Closed}
	case testcases.Conic:
		jtc.Shape = "conic"
		jtc.Params = jsonParams{Algorithm: s.Kind.String(), Points: points([]pixel.Point{s.Center, s.Boundary})}
	case testcases.Curve:
		jtc.Shape = "curve"
		jtc.Params = jsonParams{Algorithm: s.Kind.String(), Points: points(s.Points), Samples: s.Samples}
	case testcases.Polygon:
		jtc.Shape = "polygon"
		jtc.Params = jsonParams{Algorithm: s.Method.String(), Points: points(s.Vertices), Closed: true}
	case testcases.Scene:
		jtc.Shape = "scene"
		jtc.Params = jsonParams{Algorithm: s.Alg.String()}
	default:
		panic(fmt.Sprintf("unknown shape %T", s))
	}

	for p := range tc.Plots() {
		jtc.Plots = append(jtc.Plots, jsonPlot{
			Iter:      p.Iter,
			X:         p.X,
			Y:         p.Y,
			Intensity: p.Intensity,
		})
	}
	return jtc
}

func points(pts []pixel.Point) [][]int {
	res := make([][]int, len(pts))
	for i, p := range pts {
		res[i] = []int{p.X, p.Y}
	}
	return res
}

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

// Command genpdf writes a PDF and a PNG image for every test case.
// The PDF shows each plot as a unit square, the PNG is the rasterized
// canvas.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pixel/testcases"
)

const refDir = "testdata/reference"

// outlineGray is the gray level used for polygon interiors.
const outlineGray = 0.85

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; plots use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	if outline := tc.Outline(); len(outline) > 0 {
		page.SetFillColor(color.DeviceGray(outlineGray))
		page.MoveTo(float64(outline[0].X)+0.5, float64(outline[0].Y)+0.5)
		for _, p := range outline[1:] {
			page.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
		}
		page.ClosePath()
		page.FillEvenOdd()
	}

	for p := range tc.Plots() {
		if p.Intensity <= 0 {
			continue
		}
		page.SetFillColor(color.DeviceGray(1 - min(p.Intensity, 1)))
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
		page.Fill()
	}

	return page.Close()
}

func generatePNG(tc testcases.TestCase, pngPath string) error {
	c, err := tc.Draw()
	if err != nil {
		return err
	}
	return c.SavePNG(pngPath)
}

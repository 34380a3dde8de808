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

package pixel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"iter"
	"os"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Canvas is a grayscale drawing surface with a white background.  It
// consumes plot sequences; a plot of intensity c darkens its pixel to
// Shade(c).  Where plots overlap, the darkest value wins.  Plots outside the
// canvas are dropped.
type Canvas struct {
	// FlipY selects a y-up coordinate system, with y = 0 on the bottom
	// row.  By default y = 0 is the top row.
	FlipY bool

	img    *image.Gray
	filler *Filler
}

// NewCanvas returns a white canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return &Canvas{img: img}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Bounds returns the canvas area as a rectangle.
func (c *Canvas) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(c.Width()),
		URy: float64(c.Height()),
	}
}

// Shade maps a coverage value to a gray level on a white background:
// 1 gives black, 0 gives white.
func Shade(intensity float64) uint8 {
	intensity = max(0, min(1, intensity))
	return uint8(255 * (1 - intensity))
}

// Set darkens the pixel (x, y) to Shade(intensity), unless it is darker
// already.  It reports whether the pixel lies on the canvas.
func (c *Canvas) Set(x, y int, intensity float64) bool {
	if c.FlipY {
		y = c.Height() - 1 - y
	}
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return false
	}
	i := c.img.PixOffset(x, y)
	if v := Shade(intensity); v < c.img.Pix[i] {
		c.img.Pix[i] = v
	}
	return true
}

// Draw consumes seq and returns the number of plots which landed on the
// canvas.
func (c *Canvas) Draw(seq iter.Seq[Plot]) int {
	n := 0
	for p := range seq {
		if c.Set(p.X, p.Y, p.Intensity) {
			n++
		}
	}
	return n
}

// Fill shades the inside of the outline p, scaling pixel coverage by
// level.  Outline coordinates use the same orientation as plots.
func (c *Canvas) Fill(p *path.Data, rule FillRule, level float64) {
	if c.filler == nil {
		c.filler = NewFiller(c.Bounds())
	} else {
		c.filler.Clip = c.Bounds()
	}
	c.filler.Fill(p, rule, func(y, xMin int, coverage []float32) {
		for i, cov := range coverage {
			c.Set(xMin+i, y, float64(cov)*level)
		}
	})
}

// Image returns the underlying image.  Changes to the canvas are visible in
// the image.
func (c *Canvas) Image() *image.Gray {
	return c.img
}

// At returns the gray level of pixel (x, y), in the canvas orientation.
func (c *Canvas) At(x, y int) uint8 {
	if c.FlipY {
		y = c.Height() - 1 - y
	}
	return c.img.GrayAt(x, y).Y
}

// WritePNG encodes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to the named PNG file.
func (c *Canvas) SavePNG(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := c.WritePNG(f); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return nil
}

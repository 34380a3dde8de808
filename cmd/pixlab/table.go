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

package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/logrusorgru/aurora"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/hull"
	"seehuhn.de/go/pixel/polygon"
)

// column is one field of the plot table.
type column struct {
	name  string
	value func(pixel.Plot) string
}

var (
	colIter = column{"iter", func(p pixel.Plot) string { return strconv.Itoa(p.Iter) }}
	colX    = column{"x", func(p pixel.Plot) string { return strconv.Itoa(p.X) }}
	colY    = column{"y", func(p pixel.Plot) string { return strconv.Itoa(p.Y) }}
	colPos  = column{"pos", func(p pixel.Plot) string {
		return fmt.Sprintf("(%.2f, %.2f)", p.Pos.X, p.Pos.Y)
	}}
	colIntensity = column{"intensity", func(p pixel.Plot) string { return fmt.Sprintf("%.3f", p.Intensity) }}
	colErr       = column{"err", func(p pixel.Plot) string { return strconv.Itoa(p.Err) }}
	colNextErr   = column{"next", func(p pixel.Plot) string { return strconv.Itoa(p.NextErr) }}
	colDecision  = column{"decision", func(p pixel.Plot) string { return fmt.Sprintf("%g", p.Decision) }}
	colRegion    = column{"region", func(p pixel.Plot) string { return strconv.Itoa(p.Region) }}
)

var (
	lineColumns  = []column{colIter, colX, colY, colPos, colIntensity, colErr, colNextErr}
	conicColumns = []column{colIter, colX, colY, colDecision, colRegion}
	curveColumns = []column{colIter, colX, colY, colPos}
)

// plot draws seq onto the canvas and, unless quiet output was requested,
// prints one table row per plot.
func plot(canvas *pixel.Canvas, title string, seq iter.Seq[pixel.Plot], cols []column) error {
	var rec pixel.Log
	n := canvas.Draw(rec.Capture(seq))
	if *quiet {
		return nil
	}

	fmt.Println(aurora.Cyan(title).String())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, c := range cols {
		fmt.Fprint(w, aurora.Yellow(c.name).String(), "\t")
	}
	fmt.Fprintln(w)
	for _, p := range rec.Entries() {
		for _, c := range cols {
			fmt.Fprint(w, c.value(p), "\t")
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d plots, %d on canvas\n", rec.Len(), n)
	return nil
}

func printHull(w io.Writer, method hull.Method, res polygon.Result) {
	convex := aurora.Red("no")
	if res.Convex {
		convex = aurora.Green("yes")
	}
	fmt.Fprintf(w, "%s %s\n", aurora.Cyan("convex:").String(), convex.String())
	fmt.Fprintf(w, "%s", aurora.Cyan("hull ("+method.String()+"):").String())
	for _, p := range res.Hull {
		fmt.Fprintf(w, " %s", p)
	}
	fmt.Fprintln(w)
	for i, nv := range res.Normals {
		fmt.Fprintf(w, "normal %d: mid (%.1f, %.1f) dir (%.3f, %.3f)\n",
			i, nv.Mid.X, nv.Mid.Y, nv.Dir.X, nv.Dir.Y)
	}
}

var errPointSyntax = errors.New("points must be given as x,y")

func parsePoint(s string) (pixel.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return pixel.Point{}, fmt.Errorf("%q: %w", s, errPointSyntax)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return pixel.Point{}, fmt.Errorf("%q: %w", s, errPointSyntax)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return pixel.Point{}, fmt.Errorf("%q: %w", s, errPointSyntax)
	}
	return pixel.Pt(x, y), nil
}

func parsePoints(args []string) ([]pixel.Point, error) {
	pts := make([]pixel.Point, 0, len(args))
	for _, s := range args {
		p, err := parsePoint(s)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// parseSegment parses "x0,y0:x1,y1".
func parseSegment(s string) (pixel.Point, pixel.Point, error) {
	as, bs, ok := strings.Cut(s, ":")
	if !ok {
		return pixel.Point{}, pixel.Point{}, fmt.Errorf("segment %q: want x0,y0:x1,y1", s)
	}
	a, err := parsePoint(as)
	if err != nil {
		return pixel.Point{}, pixel.Point{}, err
	}
	b, err := parsePoint(bs)
	if err != nil {
		return pixel.Point{}, pixel.Point{}, err
	}
	return a, b, nil
}

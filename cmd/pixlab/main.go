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

// Command pixlab runs the rasterization and geometry algorithms from the
// command line.  Every subcommand prints the plot records it produced and
// can optionally write the result to a PNG file.
package main

import (
	"context"
	"fmt"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/conic"
	"seehuhn.de/go/pixel/curve"
	"seehuhn.de/go/pixel/hull"
	"seehuhn.de/go/pixel/internal/config"
	"seehuhn.de/go/pixel/internal/log"
	"seehuhn.de/go/pixel/line"
	"seehuhn.de/go/pixel/polygon"
	"seehuhn.de/go/pixel/scene"
)

var (
	app = kingpin.New("pixlab", "Rasterization and planar geometry workbench.")

	configFile = app.Flag("config", "YAML configuration file.").Short('c').String()
	pngFile    = app.Flag("png", "Write the canvas to this PNG file.").Short('o').String()
	show       = app.Flag("show", "Show the canvas in the terminal.").Bool()
	quiet      = app.Flag("quiet", "Do not print plot tables.").Short('q').Bool()
	debug      = app.Flag("debug", "Enable debug logging.").Bool()

	lineCmd    = app.Command("line", "Rasterize a line segment or polyline.")
	lineAlg    = lineCmd.Flag("alg", "Line algorithm (dda, bresenham, wu).").String()
	lineClosed = lineCmd.Flag("closed", "Join the last point to the first.").Bool()
	linePoints = lineCmd.Arg("points", "Points as x,y.").Required().Strings()

	conicCmd      = app.Command("conic", "Rasterize a conic section.")
	conicKind     = conicCmd.Flag("kind", "Conic kind (circle, ellipse, hyperbola, parabola).").String()
	conicCenter   = conicCmd.Arg("center", "Centre as x,y.").Required().String()
	conicBoundary = conicCmd.Arg("boundary", "Boundary point as x,y.").Required().String()

	curveCmd     = app.Command("curve", "Rasterize a parametric curve.")
	curveKind    = curveCmd.Flag("kind", "Curve family (hermite, bezier, bspline).").String()
	curveSamples = curveCmd.Flag("samples", "Samples per segment.").Int()
	curvePoints  = curveCmd.Arg("points", "Control points as x,y.").Required().Strings()

	hullCmd     = app.Command("hull", "Close a polygon and compute its convex hull.")
	hullMethod  = hullCmd.Flag("method", "Hull method (graham, jarvis).").String()
	hullSVG     = hullCmd.Flag("svg", "Read the polygon from an SVG file.").ExistingFile()
	hullSegment = hullCmd.Flag("segment", "Intersect the polygon with the segment x0,y0:x1,y1.").String()
	hullInside  = hullCmd.Flag("inside", "Test whether the point x,y lies inside.").String()
	hullSketch  = hullCmd.Flag("sketch", "Write an enlarged vector rendering to this PNG file.").String()
	hullPoints  = hullCmd.Arg("points", "Vertices as x,y.").Strings()

	sceneCmd    = app.Command("scene", "Render a wireframe scene.")
	sceneFile   = sceneCmd.Flag("file", "Scene file (default: unit cube).").ExistingFile()
	sceneFrames = sceneCmd.Flag("frames", "Number of frames to render.").Default("1").Int()
	sceneSpin   = sceneCmd.Flag("spin", "Rotation about the y-axis per frame, in radians.").Default("0").Float64()
	sceneRotX   = sceneCmd.Flag("rx", "Rotation about the x-axis, in radians.").Default("0").Float64()
	sceneRotY   = sceneCmd.Flag("ry", "Rotation about the y-axis, in radians.").Default("0").Float64()
	sceneRotZ   = sceneCmd.Flag("rz", "Rotation about the z-axis, in radians.").Default("0").Float64()
)

func main() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig(*configFile)
	if err != nil {
		app.Fatalf("%v", err)
	}
	level := cfg.Logging.Level
	if *debug {
		level = "debug"
	}
	logger := log.Init(log.Options{
		Level:     level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
		Color:     true,
	})

	canvas := pixel.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	canvas.FlipY = cfg.Canvas.FlipY

	switch cmd {
	case lineCmd.FullCommand():
		err = runLine(cfg, canvas)
	case conicCmd.FullCommand():
		err = runConic(cfg, canvas)
	case curveCmd.FullCommand():
		err = runCurve(cfg, canvas)
	case hullCmd.FullCommand():
		err = runHull(cfg, canvas)
	case sceneCmd.FullCommand():
		err = runScene(cfg, canvas)
	}
	if err == nil {
		err = output(canvas)
	}
	if err != nil {
		logger.Error("command failed", "command", cmd, "error", err)
		app.Fatalf("%v", err)
	}
}

func loadConfig(name string) (config.AppConfig, error) {
	if name == "" {
		if p, err := config.DefaultPath(); err == nil {
			name = p
		}
	}
	return config.Load(name)
}

func output(canvas *pixel.Canvas) error {
	name := *pngFile
	if name == "" {
		if !*show {
			return nil
		}
		f, err := os.CreateTemp("", "pixlab-*.png")
		if err != nil {
			return err
		}
		name = f.Name()
		f.Close()
		defer os.Remove(name)
	}
	if err := canvas.SavePNG(name); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if *show {
		imgcat.CatFile(name, os.Stdout)
	}
	return nil
}

func runLine(cfg config.AppConfig, canvas *pixel.Canvas) error {
	alg, err := line.ParseAlgorithm(pick(*lineAlg, cfg.Algorithms.Line))
	if err != nil {
		return err
	}
	pts, err := parsePoints(*linePoints)
	if err != nil {
		return err
	}
	return plot(canvas, alg.String(), line.Polyline(alg, pts, *lineClosed), lineColumns)
}

func runConic(cfg config.AppConfig, canvas *pixel.Canvas) error {
	kind, err := conic.ParseKind(pick(*conicKind, cfg.Algorithms.Conic))
	if err != nil {
		return err
	}
	center, err := parsePoint(*conicCenter)
	if err != nil {
		return err
	}
	boundary, err := parsePoint(*conicBoundary)
	if err != nil {
		return err
	}
	seq := conic.Rasterize(kind, center, boundary, canvas.Bounds())
	return plot(canvas, kind.String(), seq, conicColumns)
}

func runCurve(cfg config.AppConfig, canvas *pixel.Canvas) error {
	kind, err := curve.ParseKind(pick(*curveKind, cfg.Algorithms.Curve))
	if err != nil {
		return err
	}
	pts, err := parsePoints(*curvePoints)
	if err != nil {
		return err
	}
	if len(pts) < kind.MinPoints() {
		return fmt.Errorf("%s needs at least %d control points, got %d",
			kind, kind.MinPoints(), len(pts))
	}
	samples := *curveSamples
	if samples <= 0 {
		samples = cfg.Algorithms.CurveSamples
	}
	return plot(canvas, kind.String(), curve.Rasterize(kind, pts, samples), curveColumns)
}

func runHull(cfg config.AppConfig, canvas *pixel.Canvas) error {
	method, err := hull.ParseMethod(pick(*hullMethod, cfg.Algorithms.Hull))
	if err != nil {
		return err
	}
	var pts []pixel.Point
	if *hullSVG != "" {
		f, err := os.Open(*hullSVG)
		if err != nil {
			return err
		}
		pts, err = polygon.LoadSVG(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", *hullSVG, err)
		}
	}
	more, err := parsePoints(*hullPoints)
	if err != nil {
		return err
	}
	pts = append(pts, more...)

	ed := polygon.NewEditor(method)
	for _, p := range pts {
		ed.AddVertex(p)
	}
	res, err := ed.Finish()
	if err != nil {
		return err
	}
	alg, err := line.ParseAlgorithm(cfg.Algorithms.Line)
	if err != nil {
		return err
	}
	ed.Render(canvas, alg)
	if *hullSketch != "" {
		if err := ed.DrawDebug(*hullSketch, sketchScale); err != nil {
			return err
		}
	}

	if *quiet {
		return nil
	}
	printHull(os.Stdout, method, res)
	if *hullInside != "" {
		q, err := parsePoint(*hullInside)
		if err != nil {
			return err
		}
		fmt.Printf("%s inside: %t\n", q, ed.Contains(q))
	}
	if *hullSegment != "" {
		a, b, err := parseSegment(*hullSegment)
		if err != nil {
			return err
		}
		for _, x := range ed.CheckSegment(a, b) {
			fmt.Printf("intersection (%g, %g)\n", x.X, x.Y)
		}
	}
	return nil
}

func runScene(cfg config.AppConfig, canvas *pixel.Canvas) error {
	alg, err := line.ParseAlgorithm(cfg.Algorithms.Line)
	if err != nil {
		return err
	}

	params := scene.DefaultParams()
	params.Distance = cfg.Scene.Distance
	params.Scale = cfg.Scene.Scale
	params.RotX, params.RotY, params.RotZ = *sceneRotX, *sceneRotY, *sceneRotZ
	stage := scene.NewStage(params)

	if *sceneFile != "" {
		f, err := os.Open(*sceneFile)
		if err != nil {
			return err
		}
		err = stage.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", *sceneFile, err)
		}
	} else {
		stage.SetMesh(scene.Cube())
	}

	vp := scene.Viewport{
		Width:  canvas.Width(),
		Height: canvas.Height(),
		Factor: cfg.Scene.Factor,
	}
	frames := max(*sceneFrames, 1)
	logger := log.WithComponent("scene")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var last scene.Frame
	err = stage.Run(ctx, cfg.Scene.Interval(), func(fr scene.Frame) {
		last = fr
		n := 0
		for range scene.Render(fr.Mesh, fr.Params, vp, alg) {
			n++
		}
		logger.Debug("frame", "seq", fr.Seq, "plots", n, "rotY", fr.Params.RotY)
		if fr.Seq >= int64(frames) {
			cancel()
			return
		}
		stage.Update(func(p scene.Params) scene.Params {
			p.RotY += *sceneSpin
			return p
		})
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	seq := scene.Render(last.Mesh, last.Params, vp, alg)
	return plot(canvas, fmt.Sprintf("frame %d", last.Seq), seq, lineColumns)
}

// sketchScale is the magnification of the --sketch image.
const sketchScale = 4

// pick returns flag if set, def otherwise.
func pick(flag, def string) string {
	if flag != "" {
		return flag
	}
	return def
}

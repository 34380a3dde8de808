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

// Package config holds the settings of the pixlab command.  Settings are
// read from a YAML file, with environment variables as read-only
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pixel/conic"
	"seehuhn.de/go/pixel/curve"
	"seehuhn.de/go/pixel/hull"
	"seehuhn.de/go/pixel/line"
)

type CanvasConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	FlipY  bool `yaml:"flip_y"`
}

type AlgorithmConfig struct {
	Line  string `yaml:"line"`  // dda, bresenham or wu
	Conic string `yaml:"conic"` // circle, ellipse, hyperbola or parabola
	Curve string `yaml:"curve"` // hermite, bezier or bspline
	Hull  string `yaml:"hull"`  // graham or jarvis

	CurveSamples int `yaml:"curve_samples"`
}

type SceneConfig struct {
	Distance   float64 `yaml:"distance"`
	Scale      float64 `yaml:"scale"`
	Factor     float64 `yaml:"factor"`
	IntervalMs int     `yaml:"interval_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the complete configuration.
type AppConfig struct {
	ConfigVersion int             `yaml:"config_version"`
	Canvas        CanvasConfig    `yaml:"canvas"`
	Algorithms    AlgorithmConfig `yaml:"algorithms"`
	Scene         SceneConfig     `yaml:"scene"`
	Logging       LoggingConfig   `yaml:"logging"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: 800, Height: 600},
		Algorithms: AlgorithmConfig{
			Line:         "dda",
			Conic:        "circle",
			Curve:        "hermite",
			Hull:         "graham",
			CurveSamples: curve.DefaultSamples,
		},
		Scene:   SceneConfig{Distance: 5, Scale: 1, Factor: 200, IntervalMs: 40},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Environment variables used as overrides.
const (
	EnvCanvasWidth  = "PIXEL_CANVAS_WIDTH"
	EnvCanvasHeight = "PIXEL_CANVAS_HEIGHT"
	EnvLine         = "PIXEL_LINE_ALGORITHM"
	EnvHull         = "PIXEL_HULL_METHOD"
	EnvLogLevel     = "PIXEL_LOG_LEVEL"
	EnvLogFormat    = "PIXEL_LOG_FORMAT"
	EnvLogSource    = "PIXEL_LOG_SOURCE"
	EnvLogFile      = "PIXEL_LOG_FILE"
)

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pixel", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults and applies
// environment overrides.  A missing file is not an error.  The result is
// validated.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// use defaults
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Defaults(), fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvCanvasWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.Width = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.Height = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLine)); v != "" {
		cfg.Algorithms.Line = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvHull)); v != "" {
		cfg.Algorithms.Hull = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// Validate checks that all settings are usable.  All problems are
// reported together.
func (c AppConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d is not positive", c.Canvas.Width, c.Canvas.Height))
	}
	if _, err := line.ParseAlgorithm(c.Algorithms.Line); err != nil {
		errs = append(errs, err)
	}
	if _, err := conic.ParseKind(c.Algorithms.Conic); err != nil {
		errs = append(errs, err)
	}
	if _, err := curve.ParseKind(c.Algorithms.Curve); err != nil {
		errs = append(errs, err)
	}
	if _, err := hull.ParseMethod(c.Algorithms.Hull); err != nil {
		errs = append(errs, err)
	}
	if c.Algorithms.CurveSamples <= 0 {
		errs = append(errs, fmt.Errorf("curve samples must be positive, got %d", c.Algorithms.CurveSamples))
	}
	if c.Scene.Scale == 0 {
		errs = append(errs, errors.New("scene scale must not be zero"))
	}
	if c.Scene.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("scene interval must be positive, got %dms", c.Scene.IntervalMs))
	}
	return errors.Join(errs...)
}

// Interval returns the render loop interval.
func (s SceneConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

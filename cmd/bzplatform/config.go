// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bzflag.org/platform/base/iox/tomlx"
	"bzflag.org/platform/base/iox/yamlx"
	"bzflag.org/platform/system"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of the demo.
type Config struct {

	// GL is the requested OpenGL context.
	GL GLConfig `toml:"gl" yaml:"gl"`

	// Fullscreen opens each window fullscreen on its own monitor at the
	// current resolution of that monitor. Windows without a monitor of
	// their own are not opened.
	Fullscreen bool `toml:"fullscreen" yaml:"fullscreen"`

	// VerticalSync syncs buffer swaps to the monitor refresh.
	VerticalSync bool `toml:"vertical_sync" yaml:"vertical_sync"`

	// Watch reloads shaders when their files change.
	Watch bool `toml:"watch" yaml:"watch"`

	// Joystick is the id of the joystick to open, or -1 for none.
	Joystick int `toml:"joystick" yaml:"joystick"`

	// Icon is an image file to use as the window icon
	// instead of the built-in one.
	Icon string `toml:"icon" yaml:"icon"`

	// DeadZone is the fraction of each joystick axis around
	// its center that is treated as centered.
	DeadZone float32 `toml:"dead_zone" yaml:"dead_zone"`

	// Windows are the windows to open.
	Windows []WindowConfig `toml:"windows" yaml:"windows"`
}

// GLConfig is a requested OpenGL context.
type GLConfig struct {

	// Profile is one of "core", "compat" and "es".
	Profile string `toml:"profile" yaml:"profile"`

	Major int `toml:"major" yaml:"major"`
	Minor int `toml:"minor" yaml:"minor"`
}

// WindowConfig is one window of the demo.
type WindowConfig struct {
	Title string `toml:"title" yaml:"title"`

	// Shader is the file name of the shader to draw,
	// looked up with [shadertoy.Find].
	Shader string `toml:"shader" yaml:"shader"`

	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// X and Y are the position on the primary monitor;
	// negative values center the window.
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`

	MinWidth  int `toml:"min_width" yaml:"min_width"`
	MinHeight int `toml:"min_height" yaml:"min_height"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		GL:           GLConfig{Profile: "core", Major: 4, Minor: 1},
		VerticalSync: true,
		Joystick:     0,
		DeadZone:     0.1,
		Windows: []WindowConfig{
			{Title: "Plasma", Shader: "plasma.frag", Width: 800, Height: 600, X: 40, Y: 40, MinWidth: 512, MinHeight: 384},
			{Title: "Rings", Shader: "rings.frag", Width: 800, Height: 600, X: 860, Y: 40, MinWidth: 640, MinHeight: 480},
		},
	}
}

// LoadConfig returns the default configuration overridden by the given
// file, if any. Files ending in .yaml or .yml are YAML; all others are
// TOML. A leading ~ is expanded to the home directory.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	path, err := homedir.Expand(filename)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	if isYAML(path) {
		err = yamlx.Open(cfg, path)
	} else {
		err = tomlx.Open(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes the configuration as TOML, or as YAML if yaml is set.
func WriteConfig(cfg *Config, w io.Writer, yaml bool) error {
	if yaml {
		return yamlx.Write(cfg, w)
	}
	return tomlx.Write(cfg, w)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Validate returns an error for settings that cannot be used.
func (c *Config) Validate() error {
	if _, err := c.GL.Version(); err != nil {
		return err
	}
	if c.DeadZone < 0 || c.DeadZone >= 1 {
		return fmt.Errorf("dead_zone %v is not in [0, 1)", c.DeadZone)
	}
	for i, w := range c.Windows {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("window %d (%q) has size %dx%d", i, w.Title, w.Width, w.Height)
		}
		if w.Shader == "" {
			return fmt.Errorf("window %d (%q) has no shader", i, w.Title)
		}
	}
	return nil
}

// Version returns the OpenGL version to request.
func (g GLConfig) Version() (system.GLVersion, error) {
	v := system.GLVersion{Major: g.Major, Minor: g.Minor}
	switch strings.ToLower(g.Profile) {
	case "core", "":
		v.Profile = system.GLCore
	case "compat":
		v.Profile = system.GLCompat
	case "es":
		v.Profile = system.GLES
	default:
		return v, fmt.Errorf("unknown OpenGL profile %q", g.Profile)
	}
	if g.Major < 1 {
		return v, fmt.Errorf("invalid OpenGL version %d.%d", g.Major, g.Minor)
	}
	return v, nil
}

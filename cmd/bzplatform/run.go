// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"bzflag.org/platform/base/errors"
	"bzflag.org/platform/shadertoy"
	"bzflag.org/platform/system"
	"bzflag.org/platform/system/driver/desktop"
)

// view is an open window with the shader it draws.
type view struct {
	win     system.Window
	shader  *shadertoy.Shader
	program *shadertoy.Program
}

// run opens the windows of the configuration and draws them until
// a window is closed or the user quits.
func run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p, err := desktop.NewPlatform()
	if err != nil {
		return err
	}
	defer p.Terminate()

	logDevices(p)
	js := p.Joystick()
	if cfg.Joystick >= 0 && len(js.Joysticks()) > 0 {
		errors.Log(js.Open(cfg.Joystick))
	}

	glv, _ := cfg.GL.Version()
	p.SetGLVersion(glv)
	p.SetRGBA(8, 8, 8, 8)

	views, err := openViews(p, cfg)
	defer func() {
		for _, v := range views {
			v.win.MakeContextCurrent()
			v.program.Delete()
			v.win.SetUserData(nil)
		}
	}()
	if err != nil {
		return err
	}
	if len(views) == 0 {
		return fmt.Errorf("no windows to open")
	}

	var watcher *shadertoy.Watcher
	if cfg.Watch {
		paths := make([]string, len(views))
		for i, v := range views {
			paths[i] = v.shader.Path
		}
		watcher, err = shadertoy.NewWatcher(paths...)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	h := newHandler()
	h.install(p.Callbacks())

	for p.IsRunning() && !h.quit {
		p.PollEvents()
		if watcher != nil {
			reload(views, watcher.Poll())
		}
		for _, v := range views {
			v.win.MakeContextCurrent()
			if !h.useMouse && js.ID() >= 0 {
				steer(v.win, v.program, js, cfg.DeadZone)
			}
			v.program.DrawFrame(p.GameTime())
			v.win.SwapBuffers()
		}
	}
	return nil
}

// logDevices logs the audio devices, joysticks, monitors and
// resolutions of the platform.
func logDevices(p system.Platform) {
	if a := p.Audio(); a != nil {
		for _, d := range a.AudioDevices() {
			slog.Info("audio device", "name", d)
		}
	}
	for _, j := range p.Joystick().Joysticks() {
		slog.Info("joystick", "id", j.ID, "guid", j.GUID, "name", j.Name,
			"axes", j.Axes, "hats", j.Hats, "buttons", j.Buttons,
			"rumble", j.IsRumbleSupported, "gameController", j.IsGameController)
	}
	mons := p.Monitors()
	slog.Info("monitors", "count", len(mons))
	for _, m := range mons {
		res := p.Resolutions(m)
		slog.Info("monitor", "name", m.Name(), "current", p.CurrentResolution(m), "resolutions", len(res))
		for _, r := range res {
			slog.Debug("resolution", "monitor", m.Name(), "mode", r)
		}
	}
}

// windowOptions returns the options for each configured window that
// can be opened. Fullscreen windows each need a monitor of their own.
func windowOptions(p system.Platform, cfg *Config) []*system.WindowOptions {
	var mons []system.Monitor
	if cfg.Fullscreen {
		mons = p.Monitors()
	}
	var opts []*system.WindowOptions
	for i, wc := range cfg.Windows {
		o := system.NewWindowOptions(wc.Title, wc.Width, wc.Height)
		if cfg.Fullscreen {
			if i >= len(mons) {
				slog.Warn("no monitor for fullscreen window", "window", wc.Title)
				break
			}
			o.Fullscreen = true
			o.Monitor = mons[i]
			o.Resolution = p.CurrentResolution(mons[i])
		} else {
			o.Pos.X, o.Pos.Y = wc.X, wc.Y
		}
		opts = append(opts, o)
	}
	return opts
}

func openViews(p system.Platform, cfg *Config) ([]*view, error) {
	var views []*view
	imgs, err := icons(cfg.Icon)
	if err != nil {
		return nil, err
	}
	for i, o := range windowOptions(p, cfg) {
		wc := cfg.Windows[i]
		sh, err := shadertoy.Find(wc.Shader)
		if err != nil {
			return views, err
		}
		w, err := p.CreateWindow(o)
		if err != nil {
			return views, err
		}
		w.SetMinSize(wc.MinWidth, wc.MinHeight)
		w.SetTitle(wc.Title)
		w.SetIcon(imgs)
		w.MakeContextCurrent()
		w.SetVerticalSync(cfg.VerticalSync)
		sz := w.Size()
		pr, err := shadertoy.NewProgram(sh.Body, sz.X, sz.Y)
		if err != nil {
			w.Destroy()
			return views, fmt.Errorf("window %q: %w", wc.Title, err)
		}
		w.SetUserData(pr)
		views = append(views, &view{win: w, shader: sh, program: pr})
	}
	return views, nil
}

// reload rebuilds the programs of the views whose shader
// files are among the changed paths.
func reload(views []*view, changed []string) {
	for _, path := range changed {
		b, err := os.ReadFile(path)
		if errors.Log(err) != nil {
			continue
		}
		for _, v := range views {
			if v.shader.Path != path {
				continue
			}
			v.win.MakeContextCurrent()
			if err := v.program.Reload(string(b)); err != nil {
				slog.Error("reloading shader", "path", path, "err", err)
				continue
			}
			v.shader.Body = string(b)
			slog.Info("reloaded shader", "path", path)
		}
	}
}

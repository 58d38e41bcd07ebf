// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"fmt"
	"image"

	"bzflag.org/platform/events"
	"bzflag.org/platform/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the [system.Window] implementation for the desktop.
type Window struct {
	platform   *Platform
	glw        *glfw.Window
	fullscreen bool
	gamma      float32
	userData   any
}

func newWindow(p *Platform, opts *system.WindowOptions) (*Window, error) {
	mon := glfwMonitor(opts.Monitor)
	w := &Window{platform: p, gamma: 1}
	var err error
	if opts.Fullscreen {
		res := opts.Resolution
		glfw.WindowHint(glfw.RefreshRate, res.RefreshRate)
		w.glw, err = glfw.CreateWindow(res.Width, res.Height, opts.Title, mon, nil)
		w.fullscreen = true
	} else {
		w.glw, err = glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("desktop: creating window %q: %w", opts.Title, err)
	}
	if !w.fullscreen {
		pos := windowPosition(mon, opts.Pos, opts.Size)
		w.glw.SetPos(pos.X, pos.Y)
	}
	w.glw.SetKeyCallback(w.keyEvent)
	w.glw.SetCursorPosCallback(w.cursorPosEvent)
	w.glw.SetMouseButtonCallback(w.mouseButtonEvent)
	w.glw.SetScrollCallback(w.scrollEvent)
	w.glw.SetFramebufferSizeCallback(w.fbResized)
	w.glw.SetPosCallback(w.moved)
	return w, nil
}

// windowPosition returns the screen position of a windowed window
// on the given monitor.
func windowPosition(mon *glfw.Monitor, pos, size image.Point) image.Point {
	mx, my := mon.GetPos()
	var msize image.Point
	if vm := mon.GetVideoMode(); vm != nil {
		msize = image.Pt(vm.Width, vm.Height)
	}
	return system.WindowPosition(pos, size, image.Pt(mx, my), msize)
}

func (w *Window) keyEvent(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	w.platform.callbacks.Key(w.platform, w, KeyCode(k), KeyAction(action), GlfwMods(mods))
}

func (w *Window) charEvent(_ *glfw.Window, char rune) {
	w.platform.callbacks.Text(w.platform, w, system.TextEvent(char))
}

func (w *Window) cursorPosEvent(_ *glfw.Window, x, y float64) {
	w.platform.callbacks.CursorPos(w.platform, w, x, y)
}

func (w *Window) mouseButtonEvent(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	w.platform.callbacks.MouseButton(w.platform, w, MouseButton(button), ButtonAction(action), GlfwMods(mods))
}

func (w *Window) scrollEvent(_ *glfw.Window, x, y float64) {
	w.platform.callbacks.Scroll(w.platform, w, x, y)
}

func (w *Window) fbResized(_ *glfw.Window, width, height int) {
	w.platform.callbacks.Resize(w.platform, w, width, height)
}

func (w *Window) moved(_ *glfw.Window, x, y int) {
	w.platform.callbacks.Move(w.platform, w, x, y)
}

func (w *Window) IsFullscreen() bool { return w.fullscreen }

func (w *Window) SetVerticalSync(sync bool) {
	if sync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *Window) Size() image.Point {
	width, height := w.glw.GetSize()
	return image.Pt(width, height)
}

func (w *Window) SetWindowed(size, pos image.Point, mon system.Monitor) {
	pos = windowPosition(glfwMonitor(mon), pos, size)
	w.fullscreen = false
	w.glw.SetMonitor(nil, pos.X, pos.Y, size.X, size.Y, glfw.DontCare)
}

func (w *Window) SetFullscreen(res system.Resolution, mon system.Monitor) {
	w.fullscreen = true
	w.glw.SetMonitor(glfwMonitor(mon), 0, 0, res.Width, res.Height, res.RefreshRate)
	// gamma can only be applied to a monitor the window owns
	w.SetGamma(w.gamma)
}

func (w *Window) Iconify() { w.glw.Iconify() }

func (w *Window) SetMinSize(width, height int) {
	w.glw.SetSizeLimits(width, height, glfw.DontCare, glfw.DontCare)
}

func (w *Window) SetTitle(title string) { w.glw.SetTitle(title) }

func (w *Window) SetIcon(images []image.Image) { w.glw.SetIcon(images) }

func (w *Window) SetMouseRelative(relative bool) {
	if relative {
		w.glw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *Window) SetMousePosition(x, y float64) { w.glw.SetCursorPos(x, y) }

// SupportsMouseConfinement returns false; GLFW cannot confine the
// cursor without also hiding it.
func (w *Window) SupportsMouseConfinement() bool { return false }

func (w *Window) SetConfineMouse(mode events.Confinements, box image.Rectangle) bool {
	return false
}

func (w *Window) ConfineMouse() events.Confinements { return events.ConfinedNone }

func (w *Window) MakeContextCurrent() { w.glw.MakeContextCurrent() }

func (w *Window) SwapBuffers() { w.glw.SwapBuffers() }

func (w *Window) SetGamma(gamma float32) {
	if !w.HasGammaControl() {
		return
	}
	w.gamma = gamma
	if mon := w.glw.GetMonitor(); mon != nil {
		mon.SetGamma(gamma)
	}
}

func (w *Window) Gamma() float32 { return w.gamma }

func (w *Window) HasGammaControl() bool { return true }

func (w *Window) ShouldClose() bool { return w.glw.ShouldClose() }

func (w *Window) Destroy() {
	w.glw.Destroy()
	w.platform.removeWindow(w)
}

func (w *Window) UserData() any { return w.userData }

func (w *Window) SetUserData(v any) { w.userData = v }

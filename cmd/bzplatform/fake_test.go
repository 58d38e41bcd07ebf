// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"time"

	"bzflag.org/platform/events"
	"bzflag.org/platform/system"
)

type fakeMonitor string

func (m fakeMonitor) Name() string { return string(m) }

type fakePlatform struct {
	callbacks system.Callbacks
	monitors  []system.Monitor
	joystick  *fakeJoystick
	textInput bool
	time      float64
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		monitors: []system.Monitor{fakeMonitor("left")},
		joystick: &fakeJoystick{id: -1},
	}
}

func (p *fakePlatform) CreateWindow(opts *system.WindowOptions) (system.Window, error) {
	return newFakeWindow(opts.Size.X, opts.Size.Y), nil
}
func (p *fakePlatform) Windows() []system.Window            { return nil }
func (p *fakePlatform) Audio() system.Audio                 { return nil }
func (p *fakePlatform) Joystick() system.Joystick           { return p.joystick }
func (p *fakePlatform) IsRunning() bool                     { return true }
func (p *fakePlatform) GameTime() float64                   { return p.time }
func (p *fakePlatform) PrimaryMonitor() system.Monitor      { return p.monitors[0] }
func (p *fakePlatform) Monitors() []system.Monitor          { return p.monitors }
func (p *fakePlatform) SetGLVersion(v system.GLVersion)     {}
func (p *fakePlatform) SetRGBA(red, green, blue, alpha int) {}
func (p *fakePlatform) PollEvents()                         {}
func (p *fakePlatform) StartTextInput()                     { p.textInput = true }
func (p *fakePlatform) StopTextInput()                      { p.textInput = false }
func (p *fakePlatform) IsTextInput() bool                   { return p.textInput }
func (p *fakePlatform) Callbacks() *system.Callbacks        { return &p.callbacks }
func (p *fakePlatform) Terminate()                          {}

func (p *fakePlatform) CurrentResolution(mon system.Monitor) system.Resolution {
	return system.Resolution{Width: 1920, Height: 1080, RefreshRate: 60}
}

func (p *fakePlatform) Resolutions(mon system.Monitor) []system.Resolution {
	return []system.Resolution{p.CurrentResolution(mon)}
}

type fakeWindow struct {
	size      image.Point
	mouse     [2]float64
	confine   events.Confinements
	box       image.Rectangle
	gamma     float32
	iconified bool
	current   int
	userData  any
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{size: image.Pt(width, height), gamma: 1}
}

func (w *fakeWindow) IsFullscreen() bool                                      { return false }
func (w *fakeWindow) SetVerticalSync(sync bool)                               {}
func (w *fakeWindow) Size() image.Point                                       { return w.size }
func (w *fakeWindow) SetWindowed(size, pos image.Point, mon system.Monitor)   {}
func (w *fakeWindow) SetFullscreen(res system.Resolution, mon system.Monitor) {}
func (w *fakeWindow) Iconify()                                                { w.iconified = true }
func (w *fakeWindow) SetMinSize(width, height int)                            {}
func (w *fakeWindow) SetTitle(title string)                                   {}
func (w *fakeWindow) SetIcon(images []image.Image)                            {}
func (w *fakeWindow) SetMouseRelative(relative bool)                          {}
func (w *fakeWindow) SetMousePosition(x, y float64)                           { w.mouse = [2]float64{x, y} }
func (w *fakeWindow) SupportsMouseConfinement() bool                          { return true }
func (w *fakeWindow) ConfineMouse() events.Confinements                       { return w.confine }
func (w *fakeWindow) MakeContextCurrent()                                     { w.current++ }
func (w *fakeWindow) SwapBuffers()                                            {}
func (w *fakeWindow) SetGamma(gamma float32)                                  { w.gamma = gamma }
func (w *fakeWindow) Gamma() float32                                          { return w.gamma }
func (w *fakeWindow) HasGammaControl() bool                                   { return true }
func (w *fakeWindow) ShouldClose() bool                                       { return false }
func (w *fakeWindow) Destroy()                                                {}
func (w *fakeWindow) UserData() any                                           { return w.userData }
func (w *fakeWindow) SetUserData(v any)                                       { w.userData = v }

func (w *fakeWindow) SetConfineMouse(mode events.Confinements, box image.Rectangle) bool {
	w.confine, w.box = mode, box
	return true
}

type fakeJoystick struct {
	id     int
	axes   []float32
	rumble []time.Duration
	power  []float32
}

func (j *fakeJoystick) Joysticks() []system.JoystickInfo { return nil }
func (j *fakeJoystick) Close()                           { j.id = -1 }
func (j *fakeJoystick) ID() int                          { return j.id }
func (j *fakeJoystick) Name() string                     { return "fake" }
func (j *fakeJoystick) NumAxes() int                     { return len(j.axes) }
func (j *fakeJoystick) NumHats() int                     { return 0 }
func (j *fakeJoystick) NumButtons() int                  { return 0 }
func (j *fakeJoystick) IsRumbleSupported() bool          { return true }

func (j *fakeJoystick) Open(id int) error {
	j.id = id
	return nil
}

func (j *fakeJoystick) Rumble(strength float32, duration time.Duration) {
	j.power = append(j.power, strength)
	j.rumble = append(j.rumble, duration)
}

func (j *fakeJoystick) Axis(axis int) float32 {
	if axis < 0 || axis >= len(j.axes) {
		return 0
	}
	return j.axes[axis]
}

// fakeRenderer records the calls of the handler.
type fakeRenderer struct {
	size     image.Point
	position [4]float64
	resizes  int
}

func (r *fakeRenderer) Resize(width, height int) {
	r.size = image.Pt(width, height)
	r.resizes++
}

func (r *fakeRenderer) SetPosition(curX, curY, clickX, clickY float64) {
	r.position = [4]float64{curX, curY, clickX, clickY}
}

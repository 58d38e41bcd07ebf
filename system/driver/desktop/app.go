// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements [system.Platform] on top of GLFW 3.3
// for Windows, macOS and Linux.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"bzflag.org/platform/events"
	"bzflag.org/platform/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW must only be used from the main thread
	runtime.LockOSThread()
}

// Platform is the [system.Platform] implementation for the desktop.
type Platform struct {
	windows   []*Window
	joystick  *Joystick
	joyState  system.JoyState
	callbacks system.Callbacks
	textInput bool
}

// NewPlatform initializes GLFW and returns the platform, which also
// becomes [system.ThePlatform]. It must be called from the main thread.
func NewPlatform() (*Platform, error) {
	// report hats separately instead of as extra buttons
	glfw.InitHint(glfw.JoystickHatButtons, glfw.False)
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: initializing glfw: %w", err)
	}
	glfw.WindowHint(glfw.CocoaRetinaFramebuffer, glfw.True)
	glfw.WindowHint(glfw.CocoaGraphicsSwitching, glfw.False)
	if startTime != 0 {
		glfw.SetTime(startTime)
	}
	p := &Platform{}
	system.ThePlatform = p
	return p, nil
}

// CreateWindow implements [system.Platform].
func (p *Platform) CreateWindow(opts *system.WindowOptions) (system.Window, error) {
	if opts == nil {
		opts = system.NewWindowOptions("", 640, 480)
	}
	w, err := newWindow(p, opts)
	if err != nil {
		return nil, err
	}
	p.windows = append(p.windows, w)
	if p.textInput {
		w.glw.SetCharCallback(w.charEvent)
	}
	return w, nil
}

// Windows implements [system.Platform].
func (p *Platform) Windows() []system.Window {
	ws := make([]system.Window, len(p.windows))
	for i, w := range p.windows {
		ws[i] = w
	}
	return ws
}

// Audio returns nil; GLFW has no audio support.
func (p *Platform) Audio() system.Audio { return nil }

// Joystick implements [system.Platform].
func (p *Platform) Joystick() system.Joystick {
	if p.joystick == nil {
		p.joystick = newJoystick()
	}
	return p.joystick
}

// IsRunning implements [system.Platform].
func (p *Platform) IsRunning() bool {
	glfw.PollEvents()
	for _, w := range p.windows {
		if w.ShouldClose() {
			return false
		}
	}
	return true
}

// GameTime implements [system.Platform].
func (p *Platform) GameTime() float64 {
	return glfw.GetTime()
}

// PrimaryMonitor implements [system.Platform].
func (p *Platform) PrimaryMonitor() system.Monitor {
	return newMonitor(glfw.GetPrimaryMonitor())
}

// Monitors implements [system.Platform].
func (p *Platform) Monitors() []system.Monitor {
	gms := glfw.GetMonitors()
	mons := make([]system.Monitor, 0, len(gms))
	for _, gm := range gms {
		mons = append(mons, newMonitor(gm))
	}
	return mons
}

// CurrentResolution implements [system.Platform].
func (p *Platform) CurrentResolution(mon system.Monitor) system.Resolution {
	vm := glfwMonitor(mon).GetVideoMode()
	if vm == nil {
		return system.Resolution{}
	}
	return resolution(vm)
}

// Resolutions implements [system.Platform].
func (p *Platform) Resolutions(mon system.Monitor) []system.Resolution {
	vms := glfwMonitor(mon).GetVideoModes()
	res := make([]system.Resolution, len(vms))
	for i, vm := range vms {
		res[i] = resolution(vm)
	}
	return res
}

// SetGLVersion implements [system.Platform].
func (p *Platform) SetGLVersion(v system.GLVersion) {
	switch v.Profile {
	case system.GLCore:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	case system.GLES:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	default:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, v.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, v.Minor)
}

// SetRGBA implements [system.Platform].
func (p *Platform) SetRGBA(red, green, blue, alpha int) {
	glfw.WindowHint(glfw.RedBits, red)
	glfw.WindowHint(glfw.GreenBits, green)
	glfw.WindowHint(glfw.BlueBits, blue)
	glfw.WindowHint(glfw.AlphaBits, alpha)
}

// PollEvents implements [system.Platform]. GLFW has no joystick
// events, so the open joystick is polled here and changes are
// delivered to the first window.
func (p *Platform) PollEvents() {
	p.pollJoystick()
	glfw.PollEvents()
}

func (p *Platform) pollJoystick() {
	if p.joystick == nil || len(p.windows) == 0 {
		return
	}
	js, ok := p.joystick.glfwJoystick()
	if !ok {
		return
	}
	w := p.windows[0]
	btns := js.GetButtons()
	pressed := make([]bool, len(btns))
	for i, b := range btns {
		pressed[i] = b == glfw.Press
	}
	p.joyState.UpdateButtons(pressed, func(b events.JoyButtons, a events.ButtonActions) {
		p.callbacks.JoyButton(p, w, b, a)
	})
	hats := js.GetHats()
	dirs := make([]events.HatDirections, len(hats))
	for i, h := range hats {
		dirs[i] = HatDirection(h)
	}
	p.joyState.UpdateHats(dirs, func(h events.JoyHats, d events.HatDirections) {
		p.callbacks.JoyHat(p, w, h, d)
	})
}

// StartTextInput implements [system.Platform].
func (p *Platform) StartTextInput() {
	p.textInput = true
	for _, w := range p.windows {
		w.glw.SetCharCallback(w.charEvent)
	}
}

// StopTextInput implements [system.Platform].
func (p *Platform) StopTextInput() {
	for _, w := range p.windows {
		w.glw.SetCharCallback(nil)
	}
	p.textInput = false
}

// IsTextInput implements [system.Platform].
func (p *Platform) IsTextInput() bool { return p.textInput }

// Callbacks implements [system.Platform].
func (p *Platform) Callbacks() *system.Callbacks { return &p.callbacks }

// Terminate implements [system.Platform].
func (p *Platform) Terminate() {
	for _, w := range p.windows {
		w.glw.Destroy()
	}
	p.windows = nil
	if p.joystick != nil {
		p.joystick.Close()
	}
	glfw.Terminate()
	if system.ThePlatform == system.Platform(p) {
		system.ThePlatform = nil
	}
	slog.Debug("desktop: terminated")
}

// removeWindow forgets a destroyed window.
func (p *Platform) removeWindow(w *Window) {
	for i, pw := range p.windows {
		if pw == w {
			p.windows = append(p.windows[:i], p.windows[i+1:]...)
			return
		}
	}
}

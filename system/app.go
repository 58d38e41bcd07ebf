// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides a thin platform interface for games:
// windows with OpenGL contexts, monitors and their video modes,
// joysticks, and keyboard, mouse, text and joystick input delivered
// through [Callbacks]. Drivers implement it on top of a windowing
// library; see the desktop driver for the GLFW implementation.
package system

import "image"

// ThePlatform is the current [Platform]; only one is ever in effect.
// It is set by the driver when the platform is created.
var ThePlatform Platform

// Platform represents the windowing, input and OpenGL context layer
// of the operating system. All methods must be called from the main
// thread, which must be locked to its OS thread.
type Platform interface {

	// CreateWindow creates a new window with an OpenGL context, using
	// the OpenGL attributes set through SetGLVersion and SetRGBA.
	CreateWindow(opts *WindowOptions) (Window, error)

	// Windows returns the open windows, in creation order.
	Windows() []Window

	// Audio returns the audio interface, or nil if the
	// platform has no audio support.
	Audio() Audio

	// Joystick returns the joystick interface, creating it on first use.
	Joystick() Joystick

	// IsRunning polls for events and returns false once
	// any window has been asked to close.
	IsRunning() bool

	// GameTime returns the time in seconds since the platform started.
	GameTime() float64

	// PrimaryMonitor returns the primary monitor.
	PrimaryMonitor() Monitor

	// Monitors returns all connected monitors.
	Monitors() []Monitor

	// CurrentResolution returns the current video mode of the given
	// monitor, or of the primary monitor if it is nil.
	CurrentResolution(mon Monitor) Resolution

	// Resolutions returns all video modes of the given monitor,
	// or of the primary monitor if it is nil.
	Resolutions(mon Monitor) []Resolution

	// SetGLVersion sets the requested OpenGL profile and version
	// for windows created afterwards.
	SetGLVersion(v GLVersion)

	// SetRGBA sets the minimum color depth for windows created afterwards.
	SetRGBA(red, green, blue, alpha int)

	// PollEvents polls joysticks and window events, calling any
	// callbacks that are set.
	PollEvents()

	// StartTextInput starts delivering text input events.
	StartTextInput()

	// StopTextInput stops delivering text input events.
	StopTextInput()

	// IsTextInput returns whether text input events are being delivered.
	IsTextInput() bool

	// Callbacks returns the callbacks that events are delivered to.
	Callbacks() *Callbacks

	// Terminate destroys all windows and shuts the platform down.
	Terminate()
}

// Audio lists the audio devices of the platform.
type Audio interface {

	// AudioDevices returns the names of the audio output devices.
	AudioDevices() []string
}

// WindowOptions are the options for [Platform.CreateWindow].
type WindowOptions struct {

	// Title is the window title.
	Title string

	// Size is the size of a windowed window in screen coordinates.
	Size image.Point

	// Pos is the position of a windowed window relative to its
	// monitor. A negative coordinate centers the window on that axis.
	Pos image.Point

	// Monitor is the monitor to place the window on;
	// nil means the primary monitor.
	Monitor Monitor

	// Fullscreen makes a fullscreen window at Resolution
	// instead of a windowed one.
	Fullscreen bool

	// Resolution is the video mode of a fullscreen window.
	Resolution Resolution
}

// NewWindowOptions returns options for a windowed window
// of the given size, centered on the primary monitor.
func NewWindowOptions(title string, width, height int) *WindowOptions {
	return &WindowOptions{
		Title: title,
		Size:  image.Pt(width, height),
		Pos:   image.Pt(-1, -1),
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"bzflag.org/platform/events"
)

// Window is a top-level window with an OpenGL context.
type Window interface {

	// IsFullscreen returns whether the window is fullscreen.
	IsFullscreen() bool

	// SetVerticalSync turns vertical sync on or off for the
	// current context.
	SetVerticalSync(sync bool)

	// Size returns the size of the window in screen coordinates.
	Size() image.Point

	// SetWindowed switches the window to windowed mode with the given
	// size and position on the given monitor (nil for primary). A negative
	// position coordinate centers the window, as in [WindowPosition].
	SetWindowed(size, pos image.Point, mon Monitor)

	// SetFullscreen switches the window to fullscreen mode on the given
	// monitor (nil for primary) at the given resolution.
	SetFullscreen(res Resolution, mon Monitor)

	// Iconify minimizes the window.
	Iconify()

	// SetMinSize sets the minimum size of the window.
	SetMinSize(width, height int)

	// SetTitle sets the title of the window.
	SetTitle(title string)

	// SetIcon sets the window icon. The platform picks the image
	// closest to the size it needs.
	SetIcon(images []image.Image)

	// SetMouseRelative hides the cursor and reports unbounded
	// relative motion when on.
	SetMouseRelative(relative bool)

	// SetMousePosition moves the cursor to the given window position.
	SetMousePosition(x, y float64)

	// SupportsMouseConfinement returns whether SetConfineMouse works.
	SupportsMouseConfinement() bool

	// SetConfineMouse confines the mouse; the box is only used for
	// [events.ConfinedBox]. It returns false if confinement is not
	// supported.
	SetConfineMouse(mode events.Confinements, box image.Rectangle) bool

	// ConfineMouse returns the current confinement mode.
	ConfineMouse() events.Confinements

	// MakeContextCurrent makes the OpenGL context of the window
	// current on the calling thread.
	MakeContextCurrent()

	// SwapBuffers swaps the front and back buffers.
	SwapBuffers()

	// SetGamma sets the gamma of the monitor of a fullscreen window.
	// The value is remembered for windowed windows and applied when
	// the window becomes fullscreen.
	SetGamma(gamma float32)

	// Gamma returns the last gamma set.
	Gamma() float32

	// HasGammaControl returns whether SetGamma has any effect.
	HasGammaControl() bool

	// ShouldClose returns whether the user has asked to close the window.
	ShouldClose() bool

	// Destroy closes the window.
	Destroy()

	// UserData returns the value set by SetUserData.
	UserData() any

	// SetUserData attaches an arbitrary value to the window.
	SetUserData(v any)
}

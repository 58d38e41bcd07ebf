// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "time"

// JoystickInfo describes a connected joystick.
type JoystickInfo struct {
	ID      int
	GUID    string
	Name    string
	Axes    int
	Hats    int
	Buttons int

	IsRumbleSupported bool

	// IsGameController is whether the device is accessed through
	// a game controller mapping rather than as a raw joystick.
	IsGameController bool
}

// Joystick gives access to one open joystick at a time.
type Joystick interface {

	// Joysticks returns the connected joysticks.
	Joysticks() []JoystickInfo

	// Open selects the joystick with the given id.
	Open(id int) error

	// Close deselects the open joystick.
	Close()

	// ID returns the id of the open joystick, or -1.
	ID() int

	// Name returns the name of the open joystick.
	Name() string

	// NumAxes returns the number of axes of the open joystick.
	NumAxes() int

	// NumHats returns the number of hats of the open joystick.
	NumHats() int

	// NumButtons returns the number of buttons of the open joystick.
	NumButtons() int

	// IsRumbleSupported returns whether Rumble has any effect.
	IsRumbleSupported() bool

	// Rumble plays force feedback at the given strength from 0 to 1.
	Rumble(strength float32, duration time.Duration)

	// Axis returns the position of the given axis from -1 to 1,
	// or 0 if the axis does not exist.
	Axis(axis int) float32
}

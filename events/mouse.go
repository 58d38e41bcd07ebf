// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the platform-independent vocabulary of
// mouse and joystick input: buttons, button actions, joystick hats
// and hat directions, and mouse confinement modes.
package events

import "strconv"

// Buttons is a mouse button.
type Buttons int32

const (
	// ButtonUnknown is a button the platform cannot identify.
	ButtonUnknown Buttons = iota
	Left
	Middle
	Right
	Button4
	Button5
	Button6
	Button7
	Button8

	// ButtonsN is the number of mouse buttons.
	ButtonsN
)

var buttonNames = [...]string{"Unknown", "Left", "Middle", "Right", "Button4", "Button5", "Button6", "Button7", "Button8"}

// String returns the name of the button.
func (b Buttons) String() string {
	if b < 0 || b >= ButtonsN {
		return "Buttons(" + strconv.Itoa(int(b)) + ")"
	}
	return buttonNames[b]
}

// ButtonActions are the kinds of mouse and joystick button event.
type ButtonActions int32

const (
	// Release is sent when a button goes up.
	Release ButtonActions = iota

	// Press is sent when a button goes down.
	Press
)

func (a ButtonActions) String() string {
	if a == Press {
		return "Press"
	}
	return "Release"
}

// Confinements are the ways the mouse can be confined.
type Confinements int32

const (
	// ConfinedNone means the mouse moves freely.
	ConfinedNone Confinements = iota

	// ConfinedWindow keeps the mouse inside the window.
	ConfinedWindow

	// ConfinedBox keeps the mouse inside a rectangle
	// given in window coordinates.
	ConfinedBox
)

func (c Confinements) String() string {
	switch c {
	case ConfinedNone:
		return "None"
	case ConfinedWindow:
		return "Window"
	case ConfinedBox:
		return "Box"
	}
	return "Confinements(" + strconv.Itoa(int(c)) + ")"
}

// Next returns the confinement mode that follows c in the
// cycle None, Window, Box.
func (c Confinements) Next() Confinements {
	switch c {
	case ConfinedNone:
		return ConfinedWindow
	case ConfinedWindow:
		return ConfinedBox
	}
	return ConfinedNone
}

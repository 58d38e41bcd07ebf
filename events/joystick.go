// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// JoyButtons is a joystick button, numbered from 1.
type JoyButtons int32

const (
	// JoyButtonUnknown is returned for buttons beyond [JoyButtonsN].
	JoyButtonUnknown JoyButtons = 0

	// JoyButton1 is the first joystick button; the rest follow
	// consecutively up to JoyButton32.
	JoyButton1 JoyButtons = 1

	// JoyButtonsN is the number of distinct joystick buttons.
	JoyButtonsN = 32
)

// JoyButtonFromIndex returns the button for the given zero-based
// index, or [JoyButtonUnknown] when the index is out of range.
func JoyButtonFromIndex(i int) JoyButtons {
	if i < 0 || i >= JoyButtonsN {
		return JoyButtonUnknown
	}
	return JoyButton1 + JoyButtons(i)
}

// Index returns the zero-based index of the button, or -1.
func (b JoyButtons) Index() int {
	if b < JoyButton1 || b > JoyButtonsN {
		return -1
	}
	return int(b - JoyButton1)
}

func (b JoyButtons) String() string {
	if b.Index() < 0 {
		return "Unknown"
	}
	return "Button" + strconv.Itoa(int(b))
}

// JoyHats is a joystick hat switch, numbered from 1.
type JoyHats int32

const (
	// JoyHatUnknown is returned for hats beyond [JoyHatsN].
	JoyHatUnknown JoyHats = 0

	// JoyHat1 is the first hat; the rest follow up to JoyHat8.
	JoyHat1 JoyHats = 1

	// JoyHatsN is the number of distinct hats.
	JoyHatsN = 8
)

// JoyHatFromIndex returns the hat for the given zero-based
// index, or [JoyHatUnknown] when the index is out of range.
func JoyHatFromIndex(i int) JoyHats {
	if i < 0 || i >= JoyHatsN {
		return JoyHatUnknown
	}
	return JoyHat1 + JoyHats(i)
}

// Index returns the zero-based index of the hat, or -1.
func (h JoyHats) Index() int {
	if h < JoyHat1 || h > JoyHatsN {
		return -1
	}
	return int(h - JoyHat1)
}

func (h JoyHats) String() string {
	if h.Index() < 0 {
		return "Unknown"
	}
	return "Hat" + strconv.Itoa(int(h))
}

// HatDirections is the position of a joystick hat switch.
type HatDirections int32

const (
	HatCentered HatDirections = iota
	HatUp
	HatRightUp
	HatRight
	HatRightDown
	HatDown
	HatLeftDown
	HatLeft
	HatLeftUp
)

var hatDirectionNames = [...]string{"Centered", "Up", "RightUp", "Right", "RightDown", "Down", "LeftDown", "Left", "LeftUp"}

func (d HatDirections) String() string {
	if d < 0 || int(d) >= len(hatDirectionNames) {
		return "HatDirections(" + strconv.Itoa(int(d)) + ")"
	}
	return hatDirectionNames[d]
}

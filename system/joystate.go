// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "bzflag.org/platform/events"

// JoyState turns polled joystick button and hat states into change
// events. Windowing libraries without joystick events only report
// the current state, so presses shorter than the polling interval
// are missed.
type JoyState struct {
	buttons [events.JoyButtonsN]bool
	hats    [events.JoyHatsN]events.HatDirections
}

// Reset forgets all pressed buttons and centers all hats.
func (js *JoyState) Reset() {
	*js = JoyState{}
}

// UpdateButtons compares the given pressed states, indexed from 0,
// with the previous poll and calls fun for each button that changed.
// Buttons beyond [events.JoyButtonsN] are ignored.
func (js *JoyState) UpdateButtons(pressed []bool, fun func(events.JoyButtons, events.ButtonActions)) {
	for i, down := range pressed {
		if i >= len(js.buttons) {
			break
		}
		switch {
		case down && !js.buttons[i]:
			fun(events.JoyButtonFromIndex(i), events.Press)
		case !down && js.buttons[i]:
			fun(events.JoyButtonFromIndex(i), events.Release)
		}
		js.buttons[i] = down
	}
}

// UpdateHats compares the given hat directions, indexed from 0, with
// the previous poll and calls fun for each hat that changed direction.
// Hats beyond [events.JoyHatsN] are ignored.
func (js *JoyState) UpdateHats(dirs []events.HatDirections, fun func(events.JoyHats, events.HatDirections)) {
	for i, dir := range dirs {
		if i >= len(js.hats) {
			break
		}
		if js.hats[i] != dir {
			fun(events.JoyHatFromIndex(i), dir)
		}
		js.hats[i] = dir
	}
}

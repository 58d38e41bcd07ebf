// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"bzflag.org/platform/events"
	"bzflag.org/platform/events/key"
)

// ResizeFunc is called when the framebuffer of a window is resized.
type ResizeFunc func(p Platform, w Window, width, height int)

// MoveFunc is called when a window is moved.
type MoveFunc func(p Platform, w Window, x, y int)

// KeyFunc is called for physical key events.
type KeyFunc func(p Platform, w Window, code key.Codes, action key.Actions, mods key.Modifiers)

// TextFunc is called with the UTF-8 text of a text input event.
type TextFunc func(p Platform, w Window, text string)

// CursorPosFunc is called when the cursor moves, with window coordinates.
type CursorPosFunc func(p Platform, w Window, x, y float64)

// MouseButtonFunc is called for mouse button events.
type MouseButtonFunc func(p Platform, w Window, button events.Buttons, action events.ButtonActions, mods key.Modifiers)

// ScrollFunc is called for scroll wheel and trackpad events.
type ScrollFunc func(p Platform, w Window, x, y float64)

// JoyButtonFunc is called when a joystick button changes state.
type JoyButtonFunc func(p Platform, w Window, button events.JoyButtons, action events.ButtonActions)

// JoyHatFunc is called when a joystick hat changes direction.
type JoyHatFunc func(p Platform, w Window, hat events.JoyHats, dir events.HatDirections)

// Callbacks holds the functions events are delivered to. Resize and
// move callbacks accumulate; each of the others is a single slot that
// is replaced when set again. Delivering an event with no callback set
// does nothing. Callbacks are only used from the main thread.
type Callbacks struct {
	resize      []ResizeFunc
	move        []MoveFunc
	key         KeyFunc
	text        TextFunc
	cursorPos   CursorPosFunc
	mouseButton MouseButtonFunc
	scroll      ScrollFunc
	joyButton   JoyButtonFunc
	joyHat      JoyHatFunc
}

// AddResizeCallback adds a function called on every resize.
func (c *Callbacks) AddResizeCallback(fun ResizeFunc) { c.resize = append(c.resize, fun) }

// AddMoveCallback adds a function called on every move.
func (c *Callbacks) AddMoveCallback(fun MoveFunc) { c.move = append(c.move, fun) }

// SetKeyCallback sets the key callback; nil removes it.
func (c *Callbacks) SetKeyCallback(fun KeyFunc) { c.key = fun }

// SetTextCallback sets the text input callback; nil removes it.
func (c *Callbacks) SetTextCallback(fun TextFunc) { c.text = fun }

// SetCursorPosCallback sets the cursor position callback; nil removes it.
func (c *Callbacks) SetCursorPosCallback(fun CursorPosFunc) { c.cursorPos = fun }

// SetMouseButtonCallback sets the mouse button callback; nil removes it.
func (c *Callbacks) SetMouseButtonCallback(fun MouseButtonFunc) { c.mouseButton = fun }

// SetScrollCallback sets the scroll callback; nil removes it.
func (c *Callbacks) SetScrollCallback(fun ScrollFunc) { c.scroll = fun }

// SetJoyButtonCallback sets the joystick button callback; nil removes it.
func (c *Callbacks) SetJoyButtonCallback(fun JoyButtonFunc) { c.joyButton = fun }

// SetJoyHatCallback sets the joystick hat callback; nil removes it.
func (c *Callbacks) SetJoyHatCallback(fun JoyHatFunc) { c.joyHat = fun }

// HasText returns whether a text callback is set.
func (c *Callbacks) HasText() bool { return c.text != nil }

// HasJoyButton returns whether a joystick button callback is set.
func (c *Callbacks) HasJoyButton() bool { return c.joyButton != nil }

// HasJoyHat returns whether a joystick hat callback is set.
func (c *Callbacks) HasJoyHat() bool { return c.joyHat != nil }

// Resize delivers a resize event to all resize callbacks.
func (c *Callbacks) Resize(p Platform, w Window, width, height int) {
	for _, fun := range c.resize {
		fun(p, w, width, height)
	}
}

// Move delivers a move event to all move callbacks.
func (c *Callbacks) Move(p Platform, w Window, x, y int) {
	for _, fun := range c.move {
		fun(p, w, x, y)
	}
}

// Key delivers a key event.
func (c *Callbacks) Key(p Platform, w Window, code key.Codes, action key.Actions, mods key.Modifiers) {
	if c.key != nil {
		c.key(p, w, code, action, mods)
	}
}

// Text delivers a text input event.
func (c *Callbacks) Text(p Platform, w Window, text string) {
	if c.text != nil {
		c.text(p, w, text)
	}
}

// CursorPos delivers a cursor position event.
func (c *Callbacks) CursorPos(p Platform, w Window, x, y float64) {
	if c.cursorPos != nil {
		c.cursorPos(p, w, x, y)
	}
}

// MouseButton delivers a mouse button event. Events for
// [events.ButtonUnknown] are dropped.
func (c *Callbacks) MouseButton(p Platform, w Window, button events.Buttons, action events.ButtonActions, mods key.Modifiers) {
	if c.mouseButton != nil && button != events.ButtonUnknown {
		c.mouseButton(p, w, button, action, mods)
	}
}

// Scroll delivers a scroll event.
func (c *Callbacks) Scroll(p Platform, w Window, x, y float64) {
	if c.scroll != nil {
		c.scroll(p, w, x, y)
	}
}

// JoyButton delivers a joystick button event.
func (c *Callbacks) JoyButton(p Platform, w Window, button events.JoyButtons, action events.ButtonActions) {
	if c.joyButton != nil {
		c.joyButton(p, w, button, action)
	}
}

// JoyHat delivers a joystick hat event.
func (c *Callbacks) JoyHat(p Platform, w Window, hat events.JoyHats, dir events.HatDirections) {
	if c.joyHat != nil {
		c.joyHat(p, w, hat, dir)
	}
}

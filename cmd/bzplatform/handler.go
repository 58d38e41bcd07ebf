// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"log/slog"
	"time"

	"bzflag.org/platform/events"
	"bzflag.org/platform/events/key"
	"bzflag.org/platform/system"
	"github.com/chewxy/math32"
	"golang.org/x/text/unicode/norm"
)

// MessageSize is the capacity in bytes of the text input message,
// including one byte that is always kept free.
const MessageSize = 1024

// renderer is what a window draws with; it is stored as the user
// data of the window.
type renderer interface {
	Resize(width, height int)
	SetPosition(curX, curY, clickX, clickY float64)
}

// handler reacts to the input of the demo.
type handler struct {
	message []byte

	// messages are the finished text inputs.
	messages []string

	mouseX, mouseY float64
	clickX, clickY float64
	useMouse       bool
	leftDown       bool

	// quit is set when the user asks to exit.
	quit bool
}

func newHandler() *handler {
	return &handler{
		message:  make([]byte, 0, MessageSize),
		useMouse: true,
	}
}

// install sets the callbacks of the handler.
func (h *handler) install(cb *system.Callbacks) {
	cb.SetKeyCallback(h.key)
	cb.SetTextCallback(h.text)
	cb.SetCursorPosCallback(h.cursorPos)
	cb.SetMouseButtonCallback(h.mouseButton)
	cb.SetJoyButtonCallback(h.joyButton)
	cb.SetJoyHatCallback(h.joyHat)
	cb.SetScrollCallback(h.scroll)
	cb.AddResizeCallback(h.resize)
}

func (h *handler) key(p system.Platform, w system.Window, code key.Codes, action key.Actions, mods key.Modifiers) {
	slog.Info("key", "code", code, "action", action, "mods", mods)
	if action == key.Press && code == key.CodeF12 {
		h.quit = true
		return
	}
	if action != key.Release {
		return
	}
	if p.IsTextInput() {
		switch code {
		case key.CodeEnter, key.CodeKeypadEnter:
			msg := norm.NFC.String(string(h.message))
			slog.Info("finishing text input", "message", msg)
			h.messages = append(h.messages, msg)
			p.StopTextInput()
			h.message = h.message[:0]
		case key.CodeEscape:
			slog.Info("canceling text input")
			p.StopTextInput()
			h.message = h.message[:0]
		}
		return
	}
	switch code {
	case key.CodeN:
		slog.Info("starting text input")
		p.StartTextInput()
	case key.CodeX:
		sz := w.Size()
		w.SetMousePosition(float64(sz.X/2), float64(sz.Y/2))
	case key.CodeC:
		mode := w.ConfineMouse().Next()
		var box image.Rectangle
		if mode == events.ConfinedBox {
			c := w.Size().Div(2)
			box = image.Rect(c.X-20, c.Y-20, c.X+20, c.Y+20)
		}
		if !w.SetConfineMouse(mode, box) {
			slog.Info("mouse confinement is not supported", "mode", mode)
		}
	case key.CodeM:
		h.useMouse = !h.useMouse
		if h.useMouse {
			slog.Info("input set to mouse")
		} else {
			slog.Info("input set to joystick")
		}
	case key.CodeT:
		slog.Info("game time", "seconds", p.GameTime())
	case key.CodeF4:
		w.Iconify()
	case key.CodeG:
		if w.Gamma() < 1 {
			w.SetGamma(1)
		} else {
			w.SetGamma(0.5)
		}
		slog.Info("gamma set", "gamma", w.Gamma())
	}
}

// text appends the text to the message if all of it fits.
func (h *handler) text(p system.Platform, w system.Window, text string) {
	if len(h.message)+len(text) < MessageSize {
		h.message = append(h.message, text...)
		slog.Info("text input", "length", len(h.message), "added", len(text), "text", text)
		return
	}
	slog.Info("text input ignored, message is full", "length", len(h.message), "ignored", len(text), "text", text)
}

func (h *handler) cursorPos(p system.Platform, w system.Window, x, y float64) {
	h.mouseX, h.mouseY = x, y
	if !h.leftDown || !h.useMouse {
		return
	}
	r, ok := w.UserData().(renderer)
	if !ok {
		return
	}
	height := float64(w.Size().Y)
	w.MakeContextCurrent()
	r.SetPosition(h.mouseX, height-h.mouseY, h.clickX, height-h.clickY)
}

func (h *handler) mouseButton(p system.Platform, w system.Window, button events.Buttons, action events.ButtonActions, mods key.Modifiers) {
	slog.Info("mouse button", "button", button, "action", action, "mods", mods)
	if button != events.Left || !h.useMouse {
		return
	}
	h.leftDown = action == events.Press
	if h.leftDown {
		h.clickX, h.clickY = h.mouseX, h.mouseY
		return
	}
	r, ok := w.UserData().(renderer)
	if !ok {
		return
	}
	c := w.Size().Div(2)
	w.MakeContextCurrent()
	r.SetPosition(float64(c.X), float64(c.Y), float64(c.X), float64(c.Y))
}

func (h *handler) joyButton(p system.Platform, w system.Window, button events.JoyButtons, action events.ButtonActions) {
	slog.Info("joystick button", "button", button, "action", action)
	if action != events.Press {
		return
	}
	if strength, d, ok := rumbleFor(button); ok {
		p.Joystick().Rumble(strength, d)
	}
}

// rumbleFor returns the rumble played for the first ten buttons:
// increasing strengths, long for buttons 1 to 5 and short for 6 to 10.
func rumbleFor(button events.JoyButtons) (float32, time.Duration, bool) {
	i := button.Index()
	if i < 0 || i >= 10 {
		return 0, 0, false
	}
	strength := float32(i%5+1) / 10
	if i < 5 {
		return strength, 500 * time.Millisecond, true
	}
	return strength, 200 * time.Millisecond, true
}

func (h *handler) joyHat(p system.Platform, w system.Window, hat events.JoyHats, dir events.HatDirections) {
	slog.Info("joystick hat", "hat", hat, "direction", dir)
}

func (h *handler) scroll(p system.Platform, w system.Window, x, y float64) {
	slog.Info("scroll", "x", x, "y", y)
}

func (h *handler) resize(p system.Platform, w system.Window, width, height int) {
	r, ok := w.UserData().(renderer)
	if !ok {
		return
	}
	w.MakeContextCurrent()
	r.Resize(width, height)
}

// steer points the renderer of the window at the joystick position,
// with the window center as the click position.
func steer(w system.Window, r renderer, js system.Joystick, deadZone float32) {
	c := w.Size().Div(2)
	x := applyDeadZone(js.Axis(0), deadZone)
	y := applyDeadZone(js.Axis(1), deadZone)
	cx, cy := float64(c.X), float64(c.Y)
	r.SetPosition(cx+float64(x)*cx, cy-float64(y)*cy, cx, cy)
}

// applyDeadZone maps axis values within deadZone of the center to 0
// and rescales the rest to keep the full -1 to 1 range.
func applyDeadZone(v, deadZone float32) float32 {
	a := math32.Abs(v)
	if a <= deadZone {
		return 0
	}
	a = math32.Min((a-deadZone)/(1-deadZone), 1)
	return math32.Copysign(a, v)
}

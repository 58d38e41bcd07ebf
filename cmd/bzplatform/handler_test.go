// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"strings"
	"testing"
	"time"

	"bzflag.org/platform/events"
	"bzflag.org/platform/events/key"
	"bzflag.org/platform/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*handler, *fakePlatform, *fakeWindow, *fakeRenderer) {
	h := newHandler()
	p := newFakePlatform()
	h.install(p.Callbacks())
	w := newFakeWindow(800, 600)
	r := &fakeRenderer{}
	w.SetUserData(r)
	return h, p, w, r
}

func release(p *fakePlatform, w *fakeWindow, code key.Codes) {
	p.callbacks.Key(p, w, code, key.Press, 0)
	p.callbacks.Key(p, w, code, key.Release, 0)
}

func TestQuit(t *testing.T) {
	h, p, w, _ := setup()
	p.callbacks.Key(p, w, key.CodeF12, key.Release, 0)
	assert.False(t, h.quit)
	p.callbacks.Key(p, w, key.CodeF12, key.Press, 0)
	assert.True(t, h.quit)
}

func TestTextInput(t *testing.T) {
	h, p, w, _ := setup()
	release(p, w, key.CodeN)
	require.True(t, p.IsTextInput())

	// a decomposed e with a combining acute accent
	for _, r := range "cafe\u0301" {
		p.callbacks.Text(p, w, system.TextEvent(r))
	}
	assert.Equal(t, "cafe\u0301", string(h.message))

	// keys other than enter and escape are ignored while typing
	release(p, w, key.CodeN)
	release(p, w, key.CodeG)
	assert.Equal(t, float32(1), w.gamma)

	release(p, w, key.CodeEnter)
	assert.False(t, p.IsTextInput())
	assert.Empty(t, h.message)
	require.Len(t, h.messages, 1)
	assert.Equal(t, "caf\u00e9", h.messages[0])

	release(p, w, key.CodeN)
	p.callbacks.Text(p, w, "abc")
	release(p, w, key.CodeEscape)
	assert.False(t, p.IsTextInput())
	assert.Empty(t, h.message)
	assert.Len(t, h.messages, 1)
}

func TestTextInputFull(t *testing.T) {
	h, p, w, _ := setup()
	release(p, w, key.CodeN)

	p.callbacks.Text(p, w, strings.Repeat("a", MessageSize-3))
	assert.Len(t, h.message, MessageSize-3)

	// a two byte character still fits, leaving one byte free
	p.callbacks.Text(p, w, "é")
	assert.Len(t, h.message, MessageSize-1)

	p.callbacks.Text(p, w, "a")
	assert.Len(t, h.message, MessageSize-1, "a full message takes nothing more")

	h.message = h.message[:MessageSize-3]
	p.callbacks.Text(p, w, "€")
	assert.Len(t, h.message, MessageSize-3, "no partial characters are added")
}

func TestWindowKeys(t *testing.T) {
	h, p, w, _ := setup()

	release(p, w, key.CodeX)
	assert.Equal(t, [2]float64{400, 300}, w.mouse)

	release(p, w, key.CodeC)
	assert.Equal(t, events.ConfinedWindow, w.confine)
	release(p, w, key.CodeC)
	assert.Equal(t, events.ConfinedBox, w.confine)
	assert.Equal(t, image.Rect(380, 280, 420, 320), w.box)
	release(p, w, key.CodeC)
	assert.Equal(t, events.ConfinedNone, w.confine)

	release(p, w, key.CodeM)
	assert.False(t, h.useMouse)
	release(p, w, key.CodeM)
	assert.True(t, h.useMouse)

	release(p, w, key.CodeF4)
	assert.True(t, w.iconified)

	release(p, w, key.CodeG)
	assert.Equal(t, float32(0.5), w.Gamma())
	release(p, w, key.CodeG)
	assert.Equal(t, float32(1), w.Gamma())

	p.time = 12.5
	release(p, w, key.CodeT)
}

func TestMouseDrag(t *testing.T) {
	h, p, w, r := setup()

	p.callbacks.CursorPos(p, w, 100, 50)
	assert.Equal(t, [4]float64{}, r.position, "moving without a button does nothing")

	p.callbacks.MouseButton(p, w, events.Left, events.Press, 0)
	assert.True(t, h.leftDown)
	p.callbacks.CursorPos(p, w, 200, 100)
	assert.Equal(t, [4]float64{200, 500, 100, 550}, r.position)

	p.callbacks.MouseButton(p, w, events.Left, events.Release, 0)
	assert.False(t, h.leftDown)
	assert.Equal(t, [4]float64{400, 300, 400, 300}, r.position)

	// other buttons and joystick mode leave the shader alone
	r.position = [4]float64{}
	p.callbacks.MouseButton(p, w, events.Right, events.Press, 0)
	p.callbacks.CursorPos(p, w, 10, 10)
	assert.Equal(t, [4]float64{}, r.position)

	h.useMouse = false
	p.callbacks.MouseButton(p, w, events.Left, events.Press, 0)
	p.callbacks.CursorPos(p, w, 20, 20)
	assert.False(t, h.leftDown)
	assert.Equal(t, [4]float64{}, r.position)
}

func TestResize(t *testing.T) {
	_, p, w, r := setup()
	p.callbacks.Resize(p, w, 1024, 768)
	assert.Equal(t, image.Pt(1024, 768), r.size)
	assert.Equal(t, 1, w.current)

	w.SetUserData(nil)
	p.callbacks.Resize(p, w, 10, 10)
	assert.Equal(t, 1, r.resizes)
}

func TestJoyButtonRumble(t *testing.T) {
	_, p, w, _ := setup()
	js := p.joystick

	p.callbacks.JoyButton(p, w, events.JoyButton1, events.Press)
	p.callbacks.JoyButton(p, w, events.JoyButton1, events.Release)
	p.callbacks.JoyButton(p, w, events.JoyButtonFromIndex(6), events.Press)
	p.callbacks.JoyButton(p, w, events.JoyButtonFromIndex(10), events.Press)

	assert.Equal(t, []float32{0.1, 0.2}, js.power)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 200 * time.Millisecond}, js.rumble)
}

func TestRumbleFor(t *testing.T) {
	for i := 0; i < 10; i++ {
		s, d, ok := rumbleFor(events.JoyButtonFromIndex(i))
		require.True(t, ok, i)
		assert.InDelta(t, float32(i%5+1)/10, s, 1e-6)
		if i < 5 {
			assert.Equal(t, 500*time.Millisecond, d)
		} else {
			assert.Equal(t, 200*time.Millisecond, d)
		}
	}
	_, _, ok := rumbleFor(events.JoyButtonUnknown)
	assert.False(t, ok)
}

func TestDeadZone(t *testing.T) {
	assert.Equal(t, float32(0), applyDeadZone(0.05, 0.1))
	assert.Equal(t, float32(0), applyDeadZone(-0.1, 0.1))
	assert.Equal(t, float32(1), applyDeadZone(1, 0.1))
	assert.Equal(t, float32(-1), applyDeadZone(-1, 0.1))
	assert.InDelta(t, 0.5, applyDeadZone(0.55, 0.1), 1e-6)
	assert.InDelta(t, -0.5, applyDeadZone(-0.55, 0.1), 1e-6)
	assert.InDelta(t, 0.3, applyDeadZone(0.3, 0), 1e-6)
}

func TestSteer(t *testing.T) {
	w := newFakeWindow(800, 600)
	r := &fakeRenderer{}
	js := &fakeJoystick{axes: []float32{1, 0.05}}
	steer(w, r, js, 0.1)
	assert.Equal(t, [4]float64{800, 300, 400, 300}, r.position)

	js.axes = []float32{0, -1}
	steer(w, r, js, 0.1)
	assert.Equal(t, [4]float64{400, 600, 400, 300}, r.position)
}

func TestWindowOptions(t *testing.T) {
	p := newFakePlatform()
	cfg := DefaultConfig()
	opts := windowOptions(p, cfg)
	require.Len(t, opts, 2)
	assert.Equal(t, "Plasma", opts[0].Title)
	assert.Equal(t, image.Pt(40, 40), opts[0].Pos)
	assert.Equal(t, image.Pt(860, 40), opts[1].Pos)
	assert.False(t, opts[1].Fullscreen)

	cfg.Fullscreen = true
	opts = windowOptions(p, cfg)
	require.Len(t, opts, 1, "only one monitor")
	assert.True(t, opts[0].Fullscreen)
	assert.Equal(t, p.monitors[0], opts[0].Monitor)
	assert.Equal(t, system.Resolution{Width: 1920, Height: 1080, RefreshRate: 60}, opts[0].Resolution)
}


// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"testing"

	"bzflag.org/platform/events"
	"bzflag.org/platform/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyCode(t *testing.T) {
	assert.Equal(t, key.CodeA, KeyCode(glfw.KeyA))
	assert.Equal(t, key.Code9, KeyCode(glfw.Key9))
	assert.Equal(t, key.CodeMenu, KeyCode(glfw.KeyMenu))
	assert.Equal(t, key.CodeF25, KeyCode(glfw.KeyF25))
	assert.Equal(t, key.CodeKeypadEnter, KeyCode(glfw.KeyKPEnter))
	assert.Equal(t, key.CodeEscape, KeyCode(glfw.KeyEscape))
	assert.Equal(t, key.CodeUnknown, KeyCode(glfw.KeyUnknown))
	assert.Equal(t, key.CodeUnknown, KeyCode(glfw.Key(1000)))
}

func TestKeyCodesDistinct(t *testing.T) {
	seen := map[key.Codes]glfw.Key{}
	for k, c := range keyCodes {
		prev, dup := seen[c]
		assert.False(t, dup, "%v and %v both map to %v", k, prev, c)
		seen[c] = k
		assert.NotEqual(t, key.CodeUnknown, c)
	}
	// every code but unknown has a GLFW key
	assert.Len(t, seen, int(key.CodesN)-1)
}

func TestGlfwMods(t *testing.T) {
	assert.Equal(t, key.Modifiers(0), GlfwMods(0))
	m := GlfwMods(glfw.ModShift | glfw.ModSuper)
	assert.True(t, m.HasFlag(key.Shift))
	assert.True(t, m.HasFlag(key.Super))
	assert.False(t, m.HasFlag(key.Control))
	assert.False(t, m.HasFlag(key.Alt))
	assert.Equal(t, "Shift+Super", m.String())

	m = GlfwMods(glfw.ModControl | glfw.ModAlt | glfw.ModCapsLock | glfw.ModNumLock)
	assert.Equal(t, key.NewModifiers(key.Control, key.Alt, key.CapsLock, key.NumLock), m)
}

func TestActions(t *testing.T) {
	assert.Equal(t, key.Press, KeyAction(glfw.Press))
	assert.Equal(t, key.Release, KeyAction(glfw.Release))
	assert.Equal(t, key.Repeat, KeyAction(glfw.Repeat))

	assert.Equal(t, events.Press, ButtonAction(glfw.Press))
	assert.Equal(t, events.Release, ButtonAction(glfw.Release))
}

func TestMouseButton(t *testing.T) {
	assert.Equal(t, events.Left, MouseButton(glfw.MouseButtonLeft))
	assert.Equal(t, events.Right, MouseButton(glfw.MouseButton2))
	assert.Equal(t, events.Middle, MouseButton(glfw.MouseButton3))
	assert.Equal(t, events.Button8, MouseButton(glfw.MouseButtonLast))
	assert.Equal(t, events.ButtonUnknown, MouseButton(glfw.MouseButton(42)))
}

func TestHatDirection(t *testing.T) {
	assert.Equal(t, events.HatCentered, HatDirection(glfw.HatCentered))
	assert.Equal(t, events.HatLeftUp, HatDirection(glfw.HatLeftUp))
	assert.Equal(t, events.HatRightDown, HatDirection(glfw.HatRightDown))
	assert.Equal(t, events.HatCentered, HatDirection(glfw.HatUp|glfw.HatDown))
}

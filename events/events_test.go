// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoyButtons(t *testing.T) {
	assert.Equal(t, JoyButton1, JoyButtonFromIndex(0))
	assert.Equal(t, JoyButtons(32), JoyButtonFromIndex(31))
	assert.Equal(t, JoyButtonUnknown, JoyButtonFromIndex(32))
	assert.Equal(t, JoyButtonUnknown, JoyButtonFromIndex(-1))
	assert.Equal(t, 4, JoyButtonFromIndex(4).Index())
	assert.Equal(t, -1, JoyButtonUnknown.Index())
	assert.Equal(t, "Button3", JoyButtonFromIndex(2).String())
	assert.Equal(t, "Unknown", JoyButtonUnknown.String())
}

func TestJoyHats(t *testing.T) {
	assert.Equal(t, JoyHat1, JoyHatFromIndex(0))
	assert.Equal(t, JoyHatUnknown, JoyHatFromIndex(8))
	assert.Equal(t, "Hat8", JoyHatFromIndex(7).String())
	assert.Equal(t, "LeftUp", HatLeftUp.String())
	assert.Equal(t, "HatDirections(20)", HatDirections(20).String())
}

func TestButtons(t *testing.T) {
	assert.Equal(t, "Middle", Middle.String())
	assert.Equal(t, "Buttons(12)", Buttons(12).String())
	assert.Equal(t, "Press", Press.String())
	assert.Equal(t, "Release", Release.String())
}

func TestConfinementCycle(t *testing.T) {
	assert.Equal(t, ConfinedWindow, ConfinedNone.Next())
	assert.Equal(t, ConfinedBox, ConfinedWindow.Next())
	assert.Equal(t, ConfinedNone, ConfinedBox.Next())
	assert.Equal(t, "Box", ConfinedBox.String())
}

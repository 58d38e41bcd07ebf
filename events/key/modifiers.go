// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"strings"

	"bzflag.org/platform/base/bitflag"
)

// Modifiers is a bitflag representation of the set of modifier keys
// held down during a key or mouse event, with bit positions given by
// [Modifier].
type Modifiers int64

// Modifier is an ordinal bit position in [Modifiers].
type Modifier int32

const (
	// Shift is the shift modifier.
	Shift Modifier = iota

	// Control is the control modifier.
	Control

	// Alt is the alt (option on macOS) modifier.
	Alt

	// Super is the super modifier: the Windows key, or
	// command on macOS.
	Super

	// CapsLock is set when caps lock is on.
	CapsLock

	// NumLock is set when num lock is on.
	NumLock

	// ModifiersN is the number of modifiers.
	ModifiersN
)

var modifierNames = [...]string{"Shift", "Control", "Alt", "Super", "CapsLock", "NumLock"}

func (m Modifier) String() string {
	if m < 0 || m >= ModifiersN {
		return "Modifier(?)"
	}
	return modifierNames[m]
}

// NewModifiers returns [Modifiers] with the given flags set.
func NewModifiers(mods ...Modifier) Modifiers {
	return bitflag.Mask[Modifiers](mods...)
}

// HasFlag returns whether the given modifier is set.
func (m Modifiers) HasFlag(f Modifier) bool {
	return bitflag.Has(m, f)
}

// SetFlag sets the given modifiers to the given state.
func (m *Modifiers) SetFlag(on bool, f ...Modifier) {
	bitflag.SetState(m, on, f...)
}

// HasAnyModifier returns whether any of the given modifiers are set.
func (m Modifiers) HasAnyModifier(f ...Modifier) bool {
	return bitflag.HasAny(m, f...)
}

// String returns the set modifiers joined with "+", for example
// "Shift+Control", or "" if none are set.
func (m Modifiers) String() string {
	var names []string
	for f := Shift; f < ModifiersN; f++ {
		if m.HasFlag(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, "+")
}

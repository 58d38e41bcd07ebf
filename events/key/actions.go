// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

// Actions are the kinds of key event.
type Actions int32

const (
	// Release is sent when a key goes up.
	Release Actions = iota

	// Press is sent when a key goes down.
	Press

	// Repeat is sent while a key is held down.
	Repeat
)

func (a Actions) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	}
	return "Actions(?)"
}

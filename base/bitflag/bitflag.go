// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting, checking, and clearing
// methods that take bit position args as ordinal enum values (from const
// iota's) and do the bit shifting from there. Maintaining ordinal lists
// of bit positions is much easier than maintaining lists of masks.
package bitflag

// Integer is the constraint for bit set types and ordinal flag types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Mask makes a mask for checking multiple different flags
func Mask[B, F Integer](flags ...F) B {
	var mask B
	for _, f := range flags {
		mask |= B(1) << uint32(f)
	}
	return mask
}

// Set sets bit value(s) for ordinal bit position flags
func Set[B, F Integer](bits *B, flags ...F) {
	*bits |= Mask[B](flags...)
}

// Clear clears bit value(s) for ordinal bit position flags
func Clear[B, F Integer](bits *B, flags ...F) {
	*bits &^= Mask[B](flags...)
}

// SetState sets or clears bit value(s) depending on state (on / off) for
// ordinal bit position flags
func SetState[B, F Integer](bits *B, state bool, flags ...F) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// Toggle toggles state of bit value(s) for ordinal bit position flags
func Toggle[B, F Integer](bits *B, flags ...F) {
	*bits ^= Mask[B](flags...)
}

// Has checks if given bit value is set for ordinal bit position flag
func Has[B, F Integer](bits B, flag F) bool {
	return bits&(B(1)<<uint32(flag)) != 0
}

// HasAny checks if any of a set of flags are set for ordinal bit position flags (logical OR)
func HasAny[B, F Integer](bits B, flags ...F) bool {
	return bits&Mask[B](flags...) != 0
}

// HasAll checks if all of a set of flags are set for ordinal bit position flags (logical AND)
func HasAll[B, F Integer](bits B, flags ...F) bool {
	mask := Mask[B](flags...)
	return bits&mask == mask
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "bzflag.org/platform/base/utf8x"

// TextEventSize is the capacity in bytes of the buffer that one
// text input event is encoded into.
const TextEventSize = 32

// TextEvent returns the text delivered for a single character input
// event: the codepoint encoded into a fresh [TextEventSize] buffer.
// Invalid codepoints come through as U+FFFD.
func TextEvent(r rune) string {
	b := utf8x.NewBuffer(TextEventSize)
	b.AppendCodepoint(uint32(r))
	return b.String()
}

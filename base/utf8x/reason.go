// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8x

import "strconv"

// Reasons describes why a codepoint failed validation.
// [Validate] always substitutes [Invalid]; [Check] tells
// callers which rule was broken.
type Reasons int32

const (
	// Valid means the codepoint passed every check.
	Valid Reasons = iota

	// OutOfRange means the codepoint is above [MaxRune] or
	// above what its length class can hold.
	OutOfRange

	// Surrogate means the codepoint is in U+D800 to U+DFFF.
	Surrogate

	// Overlong means the codepoint was encoded with more
	// bytes than its value needs.
	Overlong

	// Malformed means the bytes were not a complete UTF-8 sequence:
	// a bad lead byte, a missing continuation byte, or truncation.
	Malformed
)

var reasonNames = [...]string{"Valid", "OutOfRange", "Surrogate", "Overlong", "Malformed"}

// String returns the name of the reason.
func (i Reasons) String() string {
	if i < 0 || int(i) >= len(reasonNames) {
		return "Reasons(" + strconv.Itoa(int(i)) + ")"
	}
	return reasonNames[i]
}

// Check applies the same rules as [Validate] to r decoded with the
// given length class, but reports the first rule that failed instead
// of substituting [Invalid].
func Check(r uint32, class int) Reasons {
	if !validClass(class) {
		class = 0
	}
	switch {
	case r > MaxRune:
		return OutOfRange
	case isSurrogate(r):
		return Surrogate
	case r < utfMin[class]:
		return Overlong
	case r > utfMax[class]:
		return OutOfRange
	}
	return Valid
}

// DecodeCheck decodes like [Decode] and also reports why the
// result is [Invalid], if it is. A literal U+FFFD in the input
// decodes as [Valid].
func DecodeCheck(p []byte, maxBytes int) (uint32, int, Reasons) {
	r, n := Decode(p, maxBytes)
	if n < 1 {
		return r, n, Malformed
	}
	raw, class := DecodeByte(p[0])
	if class < 1 || class > UTFSize || n < class {
		return r, n, Malformed
	}
	for i := 1; i < class; i++ {
		b, _ := DecodeByte(p[i])
		raw = raw<<6 | b
	}
	return r, n, Check(raw, class)
}

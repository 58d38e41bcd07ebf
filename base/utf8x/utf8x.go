// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8x provides a table-driven UTF-8 codec that validates
// codepoints against the Unicode range, the surrogate range, and
// the minimum encoding length, substituting [Invalid] for anything
// malformed instead of reporting an error. It also provides [Buffer],
// a fixed-capacity accumulator that text input events are encoded into.
package utf8x

const (
	// UTFSize is the maximum number of bytes in one encoded codepoint.
	UTFSize = 4

	// Invalid is the Unicode replacement character, which is
	// substituted for any codepoint that fails validation.
	Invalid = 0xFFFD

	// MaxRune is the largest Unicode scalar value.
	MaxRune = 0x10FFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// The tables below are indexed by length class. Class 0 is the
// continuation byte (10xxxxxx); classes 1 to 4 are lead bytes of
// sequences with that many bytes. They are never modified.
var (
	// utfByte is the bit pattern each class must match after masking.
	utfByte = [UTFSize + 1]byte{0x80, 0, 0xC0, 0xE0, 0xF0}

	// utfMask selects the prefix bits of each class.
	utfMask = [UTFSize + 1]byte{0xC0, 0x80, 0xE0, 0xF0, 0xF8}

	// utfMin is the smallest codepoint that needs each class;
	// anything smaller is an overlong encoding.
	utfMin = [UTFSize + 1]uint32{0, 0, 0x80, 0x800, 0x10000}

	// utfMax is the largest codepoint each class can hold.
	utfMax = [UTFSize + 1]uint32{MaxRune, 0x7F, 0x7FF, 0xFFFF, MaxRune}
)

// InvalidClass is the class returned by [DecodeByte] for a byte
// that matches none of the patterns (0xF8 to 0xFF).
const InvalidClass = UTFSize + 1

func isSurrogate(r uint32) bool {
	return r >= surrogateMin && r <= surrogateMax
}

// validClass reports whether class indexes the tables.
func validClass(class int) bool {
	return class >= 0 && class <= UTFSize
}

// DecodeByte classifies a single byte. It returns the payload bits of
// the byte and the length class whose pattern it matched, where 0 is a
// continuation byte and 1 to 4 are lead bytes. A byte that matches no
// pattern returns 0 and [InvalidClass].
func DecodeByte(c byte) (uint32, int) {
	for i := range utfMask {
		if c&utfMask[i] == utfByte[i] {
			return uint32(c &^ utfMask[i]), i
		}
	}
	return 0, InvalidClass
}

// Decode decodes the first codepoint in at most maxBytes bytes of p.
// It returns the codepoint and the number of bytes consumed:
//   - an invalid lead byte consumes 1 byte and returns [Invalid];
//   - a lead byte followed by a non-continuation byte returns [Invalid]
//     and the index of the offending byte;
//   - a sequence truncated by maxBytes returns [Invalid] and 0;
//   - a complete sequence is passed through [Validate], so overlong,
//     surrogate and out of range values come back as [Invalid] with
//     the full sequence length consumed.
func Decode(p []byte, maxBytes int) (uint32, int) {
	if maxBytes > len(p) {
		maxBytes = len(p)
	}
	if maxBytes <= 0 {
		return Invalid, 0
	}
	r, n := DecodeByte(p[0])
	if n < 1 || n > UTFSize {
		return Invalid, 1
	}
	i := 1
	for ; i < maxBytes && i < n; i++ {
		b, class := DecodeByte(p[i])
		if class != 0 {
			return Invalid, i
		}
		r = r<<6 | b
	}
	if i < n {
		return Invalid, 0
	}
	r, _ = Validate(r, n)
	return r, n
}

// Validate checks r against the range allowed for the given length
// class and against the surrogate range, replacing it with [Invalid]
// when either check fails. Class 0 accepts any Unicode scalar value.
// It returns the possibly replaced codepoint and its canonical
// (shortest) length class.
func Validate(r uint32, class int) (uint32, int) {
	if !validClass(class) {
		class = 0
	}
	if r < utfMin[class] || r > utfMax[class] || isSurrogate(r) {
		r = Invalid
	}
	i := 1
	for r > utfMax[i] {
		i++
	}
	return r, i
}

// EncodeByte returns the byte for class carrying the low payload bits
// of r: the class pattern in the prefix and the bits of r below it.
func EncodeByte(r uint32, class int) byte {
	return utfByte[class] | (byte(r) &^ utfMask[class])
}

// Encode writes the UTF-8 encoding of r into p and returns the number
// of bytes written. Codepoints that are not Unicode scalar values are
// encoded as [Invalid]. Nothing is written and 0 is returned if p is
// too small to hold the whole encoding.
func Encode(r uint32, p []byte) int {
	r, n := Validate(r, 0)
	if len(p) < n {
		return 0
	}
	for i := n - 1; i != 0; i-- {
		p[i] = EncodeByte(r, 0)
		r >>= 6
	}
	p[0] = EncodeByte(r, n)
	return n
}

// EncodeRune returns the UTF-8 encoding of r as a new slice.
func EncodeRune(r uint32) []byte {
	var glyph [UTFSize]byte
	n := Encode(r, glyph[:])
	return glyph[:n:n]
}

// Len returns the number of bytes needed to encode r,
// after any substitution of [Invalid].
func Len(r uint32) int {
	_, n := Validate(r, 0)
	return n
}

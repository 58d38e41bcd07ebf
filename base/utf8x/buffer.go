// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8x

// Buffer is a fixed-capacity byte accumulator for encoded codepoints.
// It never grows past the capacity given to [NewBuffer]; codepoints that
// do not fit are dropped whole, never partially written. As with a
// NUL-terminated C buffer, the last byte of capacity is never used,
// so a Buffer of capacity n holds at most n-1 bytes.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty [Buffer] with the given capacity in bytes.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, max(capacity, 0))}
}

// Len returns the number of bytes currently in the buffer.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the fixed capacity of the buffer.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Available returns the number of bytes that can still be appended.
func (b *Buffer) Available() int { return max(cap(b.buf)-len(b.buf)-1, 0) }

// Bytes returns the buffered bytes. The slice aliases the buffer
// and is only valid until the next modification.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns the buffered bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	clear(b.buf[:cap(b.buf)])
	b.buf = b.buf[:0]
}

// AppendCodepoint normalizes r by encoding and decoding it, so that
// invalid codepoints become [Invalid], and appends the result if it
// fits in the remaining capacity. It reports whether anything was
// appended; a codepoint that does not fit leaves the buffer unchanged.
func (b *Buffer) AppendCodepoint(r uint32) bool {
	n := len(b.buf)
	b.buf = AppendCodepoint(b.buf, r, cap(b.buf))
	return len(b.buf) > n
}

// AppendCodepoint is the slice form of [Buffer.AppendCodepoint]: it
// appends the normalized encoding of r to dst only if the result stays
// strictly below capacity bytes, and returns dst unchanged otherwise.
// It never grows dst beyond capacity.
func AppendCodepoint(dst []byte, r uint32, capacity int) []byte {
	var glyph [UTFSize]byte
	Encode(r, glyph[:])
	u, n := Decode(glyph[:], UTFSize)
	if n == 0 || len(dst)+n >= capacity {
		return dst
	}
	if cap(dst) < len(dst)+n {
		grown := make([]byte, len(dst), capacity)
		copy(grown, dst)
		dst = grown
	}
	m := Encode(u, dst[len(dst):len(dst)+n])
	return dst[:len(dst)+m]
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8x

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferAppend(t *testing.T) {
	b := NewBuffer(32)
	assert.True(t, b.AppendCodepoint('A'))
	assert.Equal(t, "A", b.String())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 32, b.Cap())

	assert.True(t, b.AppendCodepoint(0x20AC))
	assert.Equal(t, "A€", b.String())
	assert.Equal(t, 27, b.Available())
}

func TestBufferReplacesInvalid(t *testing.T) {
	b := NewBuffer(32)
	assert.True(t, b.AppendCodepoint(0xD800))
	assert.Equal(t, "�", b.String())

	b.Reset()
	assert.True(t, b.AppendCodepoint(0x7FFFFFFF))
	assert.Equal(t, "�", b.String())
}

func TestBufferAllOrNothing(t *testing.T) {
	b := NewBuffer(32)
	for i := 0; i < 31; i++ {
		assert.True(t, b.AppendCodepoint('x'))
	}
	before := b.String()
	assert.False(t, b.AppendCodepoint(0x20AC))
	assert.Equal(t, before, b.String())
	assert.False(t, b.AppendCodepoint('y'))
	assert.Equal(t, 31, b.Len())
}

func TestBufferNearBoundary(t *testing.T) {
	b := NewBuffer(8)
	for i := 0; i < 4; i++ {
		assert.True(t, b.AppendCodepoint('x'))
	}
	// 4 + 3 < 8 fits, 7 + 1 does not
	assert.True(t, b.AppendCodepoint(0x20AC))
	assert.False(t, b.AppendCodepoint('x'))
	assert.Equal(t, "xxxx€", b.String())
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(4)
	b.AppendCodepoint('a')
	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, "", b.String())
}

func TestAppendCodepointSlice(t *testing.T) {
	dst := AppendCodepoint(nil, 0x20AC, 32)
	assert.Equal(t, []byte{0xE2, 0x82, 0xAC}, dst)
	assert.LessOrEqual(t, cap(dst), 32)

	full := []byte(strings.Repeat("z", 31))
	assert.Equal(t, full, AppendCodepoint(full, 'A', 32))

	assert.Empty(t, AppendCodepoint(nil, 'A', 0))
}

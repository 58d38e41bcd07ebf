// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testFlags int32

const (
	flagA testFlags = iota
	flagB
	flagC
)

func TestBitFlags(t *testing.T) {
	var bits int64
	Set(&bits, flagA, flagC)
	assert.Equal(t, int64(5), bits)
	assert.True(t, Has(bits, flagA))
	assert.False(t, Has(bits, flagB))
	assert.True(t, HasAny(bits, flagB, flagC))
	assert.False(t, HasAll(bits, flagB, flagC))
	assert.True(t, HasAll(bits, flagA, flagC))

	Clear(&bits, flagA)
	assert.Equal(t, int64(4), bits)

	SetState(&bits, true, flagB)
	assert.Equal(t, int64(6), bits)
	SetState(&bits, false, flagB, flagC)
	assert.Equal(t, int64(0), bits)

	Toggle(&bits, flagA, flagB)
	assert.Equal(t, int64(3), bits)
	Toggle(&bits, flagA)
	assert.Equal(t, int64(2), bits)
	assert.Equal(t, uint8(7), Mask[uint8](flagA, flagB, flagC))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string   `yaml:"name"`
	Width int      `yaml:"width"`
	Tags  []string `yaml:"tags"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.yaml")
	in := testStruct{Name: "window", Width: 800, Tags: []string{"a", "b"}}
	require.NoError(t, Save(&in, fn))

	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestRead(t *testing.T) {
	out := testStruct{Name: "keep"}
	require.NoError(t, ReadBytes(&out, nil))
	assert.Equal(t, "keep", out.Name)

	require.NoError(t, ReadBytes(&out, []byte("width: 12\n")))
	assert.Equal(t, 12, out.Width)
	assert.Equal(t, "keep", out.Name)

	assert.Error(t, ReadBytes(&out, []byte("bogus: 1\n")))
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadertoy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	body := "void mainImage(out vec4 c, in vec2 p) { c = vec4(100%2); }"
	src := Source(body)
	assert.True(t, strings.HasPrefix(src, "#version 410 core\n"))
	assert.Contains(t, src, body)
	for _, u := range []string{"iResolution", "iTime", "iChannelTime", "iMouse", "iDate", "iSampleRate", "iChannelResolution", "iChannel0", "iChannel3"} {
		assert.Contains(t, src, "uniform", u)
		assert.Contains(t, src, " "+u, u)
	}
	assert.Less(t, strings.Index(src, body), strings.Index(src, "void main()"))
}

func TestFindBuiltin(t *testing.T) {
	chdir(t, t.TempDir())
	names := Builtin()
	require.Contains(t, names, "plasma.frag")
	require.Contains(t, names, "rings.frag")

	sh, err := Find("plasma.frag")
	require.NoError(t, err)
	assert.Equal(t, "plasma.frag", sh.Name)
	assert.Empty(t, sh.Path)
	assert.Contains(t, sh.Body, "mainImage")

	_, err = Find("missing.frag")
	assert.Error(t, err)
}

func TestFindSearchDirs(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "shaders", "plasma.frag"), []byte("// two up"), 0o644))
	chdir(t, deep)

	sh, err := Find("plasma.frag")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("..", "..", "shaders", "plasma.frag"), sh.Path)
	assert.Equal(t, "// two up", sh.Body)

	// a nearer directory wins
	require.NoError(t, os.MkdirAll(filepath.Join(deep, "shaders"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(deep, "shaders", "plasma.frag"), []byte("// here"), 0o644))
	sh, err = Find("plasma.frag")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("shaders", "plasma.frag"), sh.Path)
	assert.Equal(t, "// here", sh.Body)
}

func TestDate(t *testing.T) {
	d := Date(time.Date(2024, time.March, 5, 1, 2, 3, 0, time.UTC))
	assert.Equal(t, [4]float32{2024, 2, 5, 3723}, d)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

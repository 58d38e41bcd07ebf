// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/4+y/4)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{0xff, 0, 0, 0xff})
			} else {
				img.SetRGBA(x, y, color.RGBA{0, 0, 0xff, 0xff})
			}
		}
	}
	return img
}

func TestFormatFromExt(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".gif": GIF, ".tif": TIFF, "tiff": TIFF, ".BMP": BMP} {
		f, err := FormatFromExt(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := FormatFromExt("")
	assert.Error(t, err)
	_, err = FormatFromExt(".xcf")
	assert.Error(t, err)
	assert.Equal(t, "TIFF", TIFF.String())
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	src := checker(16)
	for _, f := range []Formats{PNG, TIFF, BMP} {
		path := filepath.Join(dir, fmt.Sprintf("icon.%s", f))
		require.NoError(t, Save(src, path))
		img, got, err := Open(path)
		require.NoError(t, err, f)
		assert.Equal(t, f, got)
		assert.Equal(t, src.Bounds(), img.Bounds())
		assert.Equal(t, src.RGBAAt(5, 1), AsRGBA(img).RGBAAt(5, 1), f)
	}
	_, _, err := Open(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	var b bytes.Buffer
	assert.Error(t, Write(src, &b, None))
	_, _, err = Read(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestOpenFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(checker(8), filepath.Join(dir, "a.png")))
	img, f, err := OpenFS(os.DirFS(dir), "a.png")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestIcons(t *testing.T) {
	imgs := Icons(checker(64), 16, 32)
	require.Len(t, imgs, 2)
	assert.Equal(t, image.Rect(0, 0, 16, 16), imgs[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())
}

type recorder struct{ errs []string }

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	chdir(t, t.TempDir())
	rec := &recorder{}
	Assert(rec, checker(8), "checker")
	assert.Empty(t, rec.errs)
	assert.FileExists(t, filepath.Join("testdata", "checker.png"))

	Assert(rec, checker(8), "checker")
	assert.Empty(t, rec.errs)

	other := checker(8)
	other.SetRGBA(0, 0, color.RGBA{0, 0xff, 0, 0xff})
	Assert(rec, other, "checker")
	assert.Len(t, rec.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", "checker.fail.png"))
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

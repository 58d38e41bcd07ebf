// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"bzflag.org/platform/base/errors"
)

// TestingT is the part of [testing.T] used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] save the images it is given instead
// of comparing against them. It is set by the environment variable
// UPDATE_TESTDATA=true.
var UpdateTestImages = os.Getenv("UPDATE_TESTDATA") == "true"

// closeColors returns whether each channel of the colors
// differs by at most tol.
func closeColors(a, b color.RGBA, tol int) bool {
	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

// Assert fails the test unless img matches the image saved in the
// testdata directory under the given name, with ".png" added if it
// has no extension. The image is saved if there is none yet. A
// mismatching image is saved next to it with ".fail" before the
// extension.
func Assert(t TestingT, img image.Image, name string) {
	filename := filepath.Join("testdata", name)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext

	if err := os.MkdirAll(filepath.Dir(filename), 0o750); err != nil {
		t.Errorf("imagex.Assert: making testdata directory: %v", err)
		return
	}
	want, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", filename, err)
		}
		os.Remove(failFilename)
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", filename, err)
		return
	}

	if !sameImage(t, img, want, filename) {
		if err := Save(img, failFilename); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", failFilename, err)
		}
		return
	}
	os.Remove(failFilename)
}

func sameImage(t TestingT, img, want image.Image, filename string) bool {
	if img.Bounds() != want.Bounds() {
		t.Errorf("imagex.Assert: %s has bounds %v, but got %v", filename, want.Bounds(), img.Bounds())
		return false
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			exp := color.RGBAModel.Convert(want.At(x, y)).(color.RGBA)
			if !closeColors(got, exp, 1) {
				t.Errorf("imagex.Assert: %s has %v at (%d, %d), but got %v", filename, exp, x, y, got)
				return false
			}
		}
	}
	return true
}

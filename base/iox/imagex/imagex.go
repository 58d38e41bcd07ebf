// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex reads and writes images in the common file formats
// and prepares them for use as window icons.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"bzflag.org/platform/base/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Formats are the supported image file formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
)

var formatNames = [...]string{"None", "PNG", "JPEG", "GIF", "TIFF", "BMP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int(f))
	}
	return formatNames[f]
}

// FormatFromExt returns the format for a file name extension,
// with or without the leading dot.
func FormatFromExt(ext string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "":
		return None, errors.New("imagex: empty extension")
	}
	return None, fmt.Errorf("imagex: extension %q not recognized", ext)
}

// Open opens the image in the given file, detecting its format.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// OpenFS opens the image in the given file of fsys, detecting its format.
func OpenFS(fsys fs.FS, filename string) (image.Image, Formats, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from r, detecting its format.
func Read(r io.Reader) (image.Image, Formats, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, None, fmt.Errorf("imagex: decoding: %w", err)
	}
	f, err := FormatFromExt(name)
	return img, f, err
}

// Save writes the image to the given file, in the format
// given by the file name extension.
func Save(img image.Image, filename string) error {
	f, err := FormatFromExt(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	err = Write(img, bw, f)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write encodes the image to w in the given format.
func Write(img image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, img, nil)
	case TIFF:
		return tiff.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("imagex: cannot write format %v", f)
}

// AsRGBA returns the image as an [image.RGBA], converting it if needed.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	img := image.NewRGBA(b)
	draw.Draw(img, b, src, b.Min, draw.Src)
	return img
}

// Icons returns square copies of src scaled to each of the given
// sizes in pixels, as window icons need.
func Icons(src image.Image, sizes ...int) []image.Image {
	imgs := make([]image.Image, len(sizes))
	for i, sz := range sizes {
		dst := image.NewRGBA(image.Rect(0, 0, sz, sz))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		imgs[i] = dst
	}
	return imgs
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"bzflag.org/platform/base/iox/imagex"
	"github.com/mitchellh/go-homedir"
)

// iconSizes are the sizes of the window icons, in pixels.
var iconSizes = []int{16, 32, 48}

// icons returns the window icon at each of [iconSizes], read from the
// given file or drawn if it is empty.
func icons(filename string) ([]image.Image, error) {
	if filename == "" {
		return imagex.Icons(drawIcon(128), iconSizes...), nil
	}
	path, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	src, _, err := imagex.Open(path)
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", path, err)
	}
	return imagex.Icons(src, iconSizes...), nil
}

// drawIcon draws a target of rings on a transparent background.
func drawIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	colors := []color.RGBA{
		{0xd0, 0x30, 0x20, 0xff},
		{0xf0, 0xe0, 0xc0, 0xff},
	}
	c := float64(size) / 2
	for y := range size {
		for x := range size {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			d2 := dx*dx + dy*dy
			if d2 > c*c {
				continue
			}
			ring := int(math.Sqrt(d2) / (c / 4))
			img.SetRGBA(x, y, colors[ring%2])
		}
	}
	return img
}

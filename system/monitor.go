// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "fmt"

// Monitor is a connected display.
type Monitor interface {

	// Name returns the human-readable name of the monitor.
	Name() string
}

// Resolution is a video mode.
type Resolution struct {
	Width       int
	Height      int
	RefreshRate int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d@%dHz", r.Width, r.Height, r.RefreshRate)
}

// GLProfiles are the kinds of OpenGL context.
type GLProfiles int32

const (
	// GLCore is a desktop OpenGL core profile.
	GLCore GLProfiles = iota

	// GLCompat is a desktop OpenGL compatibility profile.
	GLCompat

	// GLES is OpenGL ES.
	GLES
)

func (p GLProfiles) String() string {
	switch p {
	case GLCore:
		return "Core"
	case GLCompat:
		return "Compat"
	case GLES:
		return "ES"
	}
	return fmt.Sprintf("GLProfiles(%d)", int(p))
}

// GLVersion is a requested OpenGL profile and version.
type GLVersion struct {
	Profile GLProfiles
	Major   int
	Minor   int
}

func (v GLVersion) String() string {
	return fmt.Sprintf("OpenGL %v %d.%d", v.Profile, v.Major, v.Minor)
}

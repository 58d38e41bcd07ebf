// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shadertoy renders Shadertoy style fragment shaders into the
// current OpenGL context. A shader body defines
//
//	void mainImage(out vec4 fragColor, in vec2 fragCoord)
//
// and can use the standard Shadertoy uniforms such as iResolution,
// iTime and iMouse.
package shadertoy

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"bzflag.org/platform/base/errors"
)

//go:embed shaders/*.frag
var embedded embed.FS

// vertexSource draws the full window quad.
const vertexSource = `#version 410 core

in vec2 iPosition;

void main() {
	gl_Position = vec4(iPosition, 0.0, 1.0);
}
`

const fragmentTemplate = `#version 410 core

uniform vec3 iResolution;
uniform float iTime;
uniform float iChannelTime[4];
uniform vec4 iMouse;
uniform vec4 iDate;
uniform float iSampleRate;
uniform vec3 iChannelResolution[4];
uniform sampler2D iChannel0;
uniform sampler2D iChannel1;
uniform sampler2D iChannel2;
uniform sampler2D iChannel3;

out vec4 shadertoyColor;

%s

void main() {
	mainImage(shadertoyColor, gl_FragCoord.xy);
}
`

// Source returns the complete fragment shader for the given
// mainImage body.
func Source(body string) string {
	return fmt.Sprintf(fragmentTemplate, body)
}

// SearchDirs are the directories, relative to the working directory,
// that [Find] looks for shader files in, in order.
var SearchDirs = []string{
	"shaders",
	filepath.Join("..", "shaders"),
	filepath.Join("..", "..", "shaders"),
}

// Shader is a shader body and where it was found.
type Shader struct {

	// Name is the file name of the shader, such as "plasma.frag".
	Name string

	// Path is the file the shader was read from, or ""
	// if it is one of the built-in shaders.
	Path string

	// Body is the mainImage source.
	Body string
}

// Find returns the shader with the given file name from the first of
// [SearchDirs] that has it, falling back on the built-in shaders.
func Find(name string) (*Shader, error) {
	for _, dir := range SearchDirs {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err == nil {
			return &Shader{Name: name, Path: path, Body: string(b)}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("shadertoy: reading %s: %w", path, err)
		}
	}
	b, err := embedded.ReadFile("shaders/" + name)
	if err != nil {
		return nil, fmt.Errorf("shadertoy: shader %q not found in %v", name, SearchDirs)
	}
	return &Shader{Name: name, Body: string(b)}, nil
}

// Builtin returns the names of the built-in shaders.
func Builtin() []string {
	ents, err := embedded.ReadDir("shaders")
	if errors.Log(err) != nil {
		return nil
	}
	names := make([]string, len(ents))
	for i, e := range ents {
		names[i] = e.Name()
	}
	return names
}

// Date returns the iDate uniform for the given time: the year, the
// month from 0, the day of the month and the seconds since midnight.
func Date(t time.Time) [4]float32 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return [4]float32{
		float32(t.Year()),
		float32(t.Month() - 1),
		float32(t.Day()),
		float32(t.Sub(midnight).Seconds()),
	}
}

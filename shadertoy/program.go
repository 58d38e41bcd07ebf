// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadertoy

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var glInitialized bool

// initGL loads the OpenGL functions; a context must be current.
func initGL() error {
	if glInitialized {
		return nil
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("shadertoy: initializing OpenGL: %w", err)
	}
	glInitialized = true
	slog.Info("OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// quad is the full window triangle strip.
var quad = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

// Program is a linked Shadertoy shader program with its quad. All
// methods must be called with the OpenGL context it was created in
// current.
type Program struct {
	handle uint32
	vao    uint32
	vbo    uint32
	width  int
	height int

	resolution  int32
	time        int32
	channelTime int32
	channelRes  int32
	mouse       int32
	date        int32
	sampleRate  int32
	channels    [4]int32
}

// NewProgram compiles the given mainImage body into a program that
// draws into a framebuffer of the given size.
func NewProgram(body string, width, height int) (*Program, error) {
	if err := initGL(); err != nil {
		return nil, err
	}
	pr := &Program{}
	if err := pr.link(body); err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &pr.vao)
	gl.BindVertexArray(pr.vao)
	gl.GenBuffers(1, &pr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, pr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	pr.bindQuad()

	pr.Resize(width, height)
	return pr, nil
}

// link builds the program and replaces the current one,
// which is kept when building fails.
func (pr *Program) link(body string) error {
	vtx, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vtx)
	frag, err := compileShader(gl.FRAGMENT_SHADER, Source(body))
	if err != nil {
		return err
	}
	defer gl.DeleteShader(frag)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vtx)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(handle, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(handle)
		return fmt.Errorf("shadertoy: linking program: %s", msg)
	}

	if pr.handle != 0 {
		gl.DeleteProgram(pr.handle)
	}
	pr.handle = handle
	gl.UseProgram(handle)

	pr.resolution = pr.uniform("iResolution")
	pr.time = pr.uniform("iTime")
	pr.channelTime = pr.uniform("iChannelTime")
	pr.channelRes = pr.uniform("iChannelResolution")
	pr.mouse = pr.uniform("iMouse")
	pr.date = pr.uniform("iDate")
	pr.sampleRate = pr.uniform("iSampleRate")
	for i := range pr.channels {
		pr.channels[i] = pr.uniform(fmt.Sprintf("iChannel%d", i))
		if pr.channels[i] >= 0 {
			gl.Uniform1i(pr.channels[i], int32(i))
		}
	}
	if pr.sampleRate >= 0 {
		gl.Uniform1f(pr.sampleRate, 44100)
	}
	return nil
}

func (pr *Program) uniform(name string) int32 {
	return gl.GetUniformLocation(pr.handle, gl.Str(name+"\x00"))
}

// bindQuad points the iPosition attribute of the program at the quad.
func (pr *Program) bindQuad() {
	gl.BindVertexArray(pr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, pr.vbo)
	pos := gl.GetAttribLocation(pr.handle, gl.Str("iPosition\x00"))
	if pos < 0 {
		return
	}
	gl.EnableVertexAttribArray(uint32(pos))
	gl.VertexAttribPointerWithOffset(uint32(pos), 2, gl.FLOAT, false, 0, 0)
}

func compileShader(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(handle, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("shadertoy: compiling shader: %s", msg)
	}
	return handle, nil
}

func infoLog(handle uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var length int32
	getiv(handle, gl.INFO_LOG_LENGTH, &length)
	if length <= 1 {
		return "no info log"
	}
	msg := strings.Repeat("\x00", int(length+1))
	getLog(handle, length, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00\n")
}

// Reload replaces the program with one built from the given body.
// The current program stays in use if the new one fails to build.
func (pr *Program) Reload(body string) error {
	if err := pr.link(body); err != nil {
		return err
	}
	pr.bindQuad()
	pr.Resize(pr.width, pr.height)
	return nil
}

// Resize sets the resolution and viewport to the given framebuffer
// size and centers the mouse.
func (pr *Program) Resize(width, height int) {
	pr.width, pr.height = width, height
	gl.UseProgram(pr.handle)
	gl.Uniform3f(pr.resolution, float32(width), float32(height), 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	cx, cy := float64(width/2), float64(height/2)
	pr.SetPosition(cx, cy, cx, cy)
}

// Size returns the framebuffer size set by the last Resize.
func (pr *Program) Size() (width, height int) {
	return pr.width, pr.height
}

// SetPosition sets iMouse to the given cursor and click positions, in
// framebuffer coordinates with y up.
func (pr *Program) SetPosition(curX, curY, clickX, clickY float64) {
	gl.UseProgram(pr.handle)
	gl.Uniform4f(pr.mouse, float32(curX), float32(curY), float32(clickX), float32(clickY))
}

// DrawFrame draws the shader at the given time in seconds.
func (pr *Program) DrawFrame(t float64) {
	gl.UseProgram(pr.handle)
	if pr.time >= 0 {
		gl.Uniform1f(pr.time, float32(t))
	}
	if pr.date >= 0 {
		d := Date(time.Now())
		gl.Uniform4f(pr.date, d[0], d[1], d[2], d[3])
	}
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.BindVertexArray(pr.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// Delete frees the OpenGL objects of the program.
func (pr *Program) Delete() {
	if pr.handle != 0 {
		gl.DeleteProgram(pr.handle)
		pr.handle = 0
	}
	if pr.vbo != 0 {
		gl.DeleteBuffers(1, &pr.vbo)
		pr.vbo = 0
	}
	if pr.vao != 0 {
		gl.DeleteVertexArrays(1, &pr.vao)
		pr.vao = 0
	}
}

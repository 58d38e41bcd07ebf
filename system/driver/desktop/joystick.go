// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"fmt"
	"log/slog"
	"time"

	"bzflag.org/platform/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Joystick is the [system.Joystick] implementation for the desktop.
// GLFW reports joysticks only by polling; see [Platform.PollEvents].
type Joystick struct {
	id int
}

func newJoystick() *Joystick {
	return &Joystick{id: -1}
}

// glfwJoystick returns the open joystick if it is still connected.
func (j *Joystick) glfwJoystick() (glfw.Joystick, bool) {
	if j.id < 0 {
		return 0, false
	}
	js := glfw.Joystick(j.id)
	return js, js.Present()
}

func (j *Joystick) Joysticks() []system.JoystickInfo {
	var infos []system.JoystickInfo
	for id := glfw.Joystick1; id <= glfw.JoystickLast; id++ {
		if !id.Present() {
			continue
		}
		infos = append(infos, system.JoystickInfo{
			ID:               int(id),
			GUID:             id.GetGUID(),
			Name:             id.GetName(),
			Axes:             len(id.GetAxes()),
			Hats:             len(id.GetHats()),
			Buttons:          len(id.GetButtons()),
			IsGameController: id.IsGamepad(),
		})
	}
	return infos
}

func (j *Joystick) Open(id int) error {
	if id < int(glfw.Joystick1) || id > int(glfw.JoystickLast) || !glfw.Joystick(id).Present() {
		j.id = -1
		return fmt.Errorf("desktop: joystick %d is not connected", id)
	}
	j.id = id
	slog.Debug("desktop: opened joystick", "id", id, "name", glfw.Joystick(id).GetName())
	return nil
}

func (j *Joystick) Close() { j.id = -1 }

func (j *Joystick) ID() int { return j.id }

func (j *Joystick) Name() string {
	if js, ok := j.glfwJoystick(); ok {
		return js.GetName()
	}
	return ""
}

func (j *Joystick) NumAxes() int {
	if js, ok := j.glfwJoystick(); ok {
		return len(js.GetAxes())
	}
	return 0
}

func (j *Joystick) NumHats() int {
	if js, ok := j.glfwJoystick(); ok {
		return len(js.GetHats())
	}
	return 0
}

func (j *Joystick) NumButtons() int {
	if js, ok := j.glfwJoystick(); ok {
		return len(js.GetButtons())
	}
	return 0
}

// IsRumbleSupported returns false; GLFW has no force feedback.
func (j *Joystick) IsRumbleSupported() bool { return false }

// Rumble does nothing; GLFW has no force feedback.
func (j *Joystick) Rumble(strength float32, duration time.Duration) {}

func (j *Joystick) Axis(axis int) float32 {
	js, ok := j.glfwJoystick()
	if !ok {
		return 0
	}
	axes := js.GetAxes()
	if axis < 0 || axis >= len(axes) {
		return 0
	}
	return axes[axis]
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"bzflag.org/platform/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Monitor is the [system.Monitor] implementation for the desktop.
type Monitor struct {
	glm  *glfw.Monitor
	name string
}

func newMonitor(glm *glfw.Monitor) *Monitor {
	m := &Monitor{glm: glm}
	if glm != nil {
		m.name = glm.GetName()
	}
	return m
}

func (m *Monitor) Name() string { return m.name }

// glfwMonitor returns the GLFW monitor of the given monitor,
// or the primary monitor if it has none.
func glfwMonitor(mon system.Monitor) *glfw.Monitor {
	if m, ok := mon.(*Monitor); ok && m != nil && m.glm != nil {
		return m.glm
	}
	return glfw.GetPrimaryMonitor()
}

func resolution(vm *glfw.VidMode) system.Resolution {
	return system.Resolution{Width: vm.Width, Height: vm.Height, RefreshRate: vm.RefreshRate}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// WindowPosition returns the screen position for a windowed window of
// the given size, where pos is relative to a monitor at monitorPos with
// a current video mode of monitorSize. A negative coordinate of pos
// centers the window on that axis of the monitor.
func WindowPosition(pos, size, monitorPos, monitorSize image.Point) image.Point {
	if pos.X < 0 {
		pos.X = monitorSize.X/2 - size.X/2
	}
	if pos.Y < 0 {
		pos.Y = monitorSize.Y/2 - size.Y/2
	}
	return pos.Add(monitorPos)
}

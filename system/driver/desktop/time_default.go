// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package desktop

// startTime is the initial value of the GLFW timer, in seconds.
const startTime = 0.0

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package desktop

// startTime starts debug builds 184 days into the game, so that
// precision problems of long running games show up right away.
const startTime = 60 * 60 * 24 * 184.0

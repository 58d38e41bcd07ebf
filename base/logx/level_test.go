// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"testing"
)

func TestLevelFromFlags(t *testing.T) {
	l := LevelFromFlags(true, false, false)
	if l != slog.LevelDebug {
		t.Errorf("expected LevelFromFlags(true, false, false) = %v, but got %v", slog.LevelDebug, l)
	}
	l = LevelFromFlags(false, true, true)
	if l != slog.LevelInfo {
		t.Errorf("expected LevelFromFlags(false, true, true) = %v, but got %v", slog.LevelInfo, l)
	}
	l = LevelFromFlags(false, false, true)
	if l != slog.LevelError {
		t.Errorf("expected LevelFromFlags(false, false, true) = %v, but got %v", slog.LevelError, l)
	}
	l = LevelFromFlags(false, false, false)
	if l != slog.LevelWarn {
		t.Errorf("expected LevelFromFlags(false, false, false) = %v, but got %v", slog.LevelWarn, l)
	}
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("debug")
	if !ok || l != slog.LevelDebug {
		t.Errorf("expected ParseLevel(debug) = %v, true but got %v, %v", slog.LevelDebug, l, ok)
	}
	l, ok = ParseLevel("WARN")
	if !ok || l != slog.LevelWarn {
		t.Errorf("expected ParseLevel(WARN) = %v, true but got %v, %v", slog.LevelWarn, l, ok)
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Error("expected ParseLevel(loud) to fail")
	}
}

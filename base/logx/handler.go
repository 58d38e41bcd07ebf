// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored for the terminal it writes to.
// Only records at or above [UserLevel] are written.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler
	mu    *sync.Mutex

	// attrs are the preformatted attributes added through WithAttrs.
	attrs string

	// group is the dotted key prefix added through WithGroup.
	group string
}

// NewHandler returns a new [Handler] writing to w. Colors are
// only used when w is a terminal that supports them.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		out:   termenv.NewOutput(w),
		level: userLeveler{},
		mu:    &sync.Mutex{},
	}
}

// SetDefaultLogger sets the default [slog] logger to one
// using a [Handler] that writes to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		h.appendAttr(&b, h.group, a)
	}
	nh := *h
	nh.attrs = b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = joinKey(h.group, name)
	return &nh
}

func (h *Handler) appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gattrs := a.Value.Group()
		gprefix := prefix
		if a.Key != "" {
			gprefix = joinKey(prefix, a.Key)
		}
		for _, ga := range gattrs {
			h.appendAttr(b, gprefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(joinKey(prefix, a.Key))
	b.WriteByte('=')
	v := a.Value.String()
	if strings.ContainsAny(v, " \t\n\"=") {
		v = quote(v)
	}
	b.WriteString(v)
}

// levelString returns the level name styled for the output.
func (h *Handler) levelString(level slog.Level) string {
	name := level.String()
	if h.out.EnvColorProfile() == termenv.Ascii {
		return name
	}
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIBrightRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIBrightYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSIBrightCyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return h.out.String(name).Foreground(c).Bold().String()
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

var _ slog.Handler = (*Handler)(nil)

// levels lists the levels in increasing order of severity,
// for [ParseLevel].
var levels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

// ParseLevel returns the level with the given case-insensitive name
// (debug, info, warn or error) and whether it was found.
func ParseLevel(name string) (slog.Level, bool) {
	i := slices.IndexFunc(levels, func(l slog.Level) bool {
		return strings.EqualFold(l.String(), name)
	})
	if i < 0 {
		return UserLevel, false
	}
	return levels[i], true
}

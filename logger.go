// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package nativesurface

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled reports
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. It is read on every surface request
// and swapped atomically so SetLogger may run concurrently with surface
// creation on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by nativesurface.
// By default the package produces no output. Pass nil to restore the
// silent default. SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: every surface request (source kind)
//   - [slog.LevelWarn]: surface requested on a build without native support,
//     or a HAL instance that rejected the surface handles
//
// Example:
//
//	nativesurface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

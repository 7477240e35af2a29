// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the structured logger used by the
// standings command.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with key/value convenience methods.
type Logger struct {
	zl zerolog.Logger
}

var global = New(os.Stderr, "info", "console")

// New returns a logger writing to w at the given level ("debug",
// "info", ...). Format "json" writes one JSON object per line;
// "console" and "pretty" write human-readable lines. An unknown level
// falls back to info.
func New(w io.Writer, level, format string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if format == "console" || format == "pretty" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return &Logger{
		zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

// SetGlobal sets the process-wide logger.
func SetGlobal(l *Logger) {
	global = l
}

// Global returns the process-wide logger.
func Global() *Logger {
	return global
}

// With returns a child logger that adds the given key/value pairs to
// every entry.
func (l *Logger) With(kv ...interface{}) *Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(kv); i += 2 {
		ctx = ctx.Interface(key(kv[i]), kv[i+1])
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Debug(msg string, kv ...interface{}) { l.log(l.zl.Debug(), msg, kv) }
func (l *Logger) Info(msg string, kv ...interface{})  { l.log(l.zl.Info(), msg, kv) }
func (l *Logger) Warn(msg string, kv ...interface{})  { l.log(l.zl.Warn(), msg, kv) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.log(l.zl.Error(), msg, kv) }

func (l *Logger) log(e *zerolog.Event, msg string, kv []interface{}) {
	if e == nil {
		// Level disabled.
		return
	}
	for i := 0; i+1 < len(kv); i += 2 {
		k, v := key(kv[i]), kv[i+1]
		if err, ok := v.(error); ok {
			e = e.AnErr(k, err)
			continue
		}
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}

func key(k interface{}) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// Debug logs msg at debug level on the process-wide logger.
func Debug(msg string, kv ...interface{}) { global.Debug(msg, kv...) }

// SPDX-License-Identifier: MIT

// Package logger builds the zap logger used by the command-line tools. The
// library packages never log.
package logger

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a textual log level as given on the command line or in the
// environment.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) String() string { return string(l) }

// Zap maps l onto a zap level. Unknown names fall back to warn so a typo
// never silences errors.
func (l Level) Zap() zap.AtomicLevel {
	switch Level(strings.ToLower(strings.TrimSpace(string(l)))) {
	case LevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LevelWarn, "warning", "":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case LevelError:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	}
}

// New returns a console logger writing to out at the given level.
func New(level Level, out zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), out, level.Zap())
	return zap.New(core)
}

var current atomic.Pointer[zap.Logger]

// Set replaces the process logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// L returns the process logger; a no-op logger until Set is called.
func L() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sugar returns the sugared form of L.
func Sugar() *zap.SugaredLogger { return L().Sugar() }

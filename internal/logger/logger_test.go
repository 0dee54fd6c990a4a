// SPDX-License-Identifier: MIT
package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/linalg/internal/logger"
)

func TestLevel_Zap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   logger.Level
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"TRACE", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{" notice ", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.WarnLevel},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.in.Zap().Level(), "level %q", tc.in)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New(logger.LevelInfo, zapcore.AddSync(&buf))
	l.Debug("hidden")
	l.Info("loaded", zap.Int("rows", 3))
	require.NoError(t, l.Sync())

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "loaded")
	require.Contains(t, out, `"rows": 3`)
}

func TestSetAndSugar(t *testing.T) {
	var buf bytes.Buffer
	logger.Set(logger.New(logger.LevelDebug, zapcore.AddSync(&buf)))
	t.Cleanup(func() { logger.Set(nil) })

	logger.Sugar().Debugf("read %d files", 2)
	require.Contains(t, buf.String(), "read 2 files")
}

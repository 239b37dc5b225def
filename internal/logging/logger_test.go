package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "inspector", LevelInfo)

	l.Info("cycle done", "status", "PASS", "mean", 130.5, "dangling")
	out := buf.String()
	require.Contains(t, out, "[inspector] ")
	require.Contains(t, out, "[INFO] cycle done status=PASS mean=130.5")
	require.NotContains(t, out, "dangling")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "inspector", LevelWarn)

	l.Debug("debug")
	l.Info("info")
	require.Empty(t, buf.String())

	l.Warn("warn")
	l.Error("error")
	require.Contains(t, buf.String(), "[WARN] warn")
	require.Contains(t, buf.String(), "[ERROR] error")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelInfo, ParseLevel(""))
}

func TestNilAndNop(t *testing.T) {
	var l *Logger
	l.Info("nothing")
	Nop().Error("nothing")
}

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_TextConsole(t *testing.T) {
	var buf bytes.Buffer
	l, c := New(&buf, Options{Level: "info"})
	defer c.Close()

	l.Debug("hidden")
	l.Info("shown", "edges", 4)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "edges=4")
}

func TestNew_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	l, c := New(&buf, Options{Level: "debug", Format: "json"})
	defer c.Close()

	l.Debug("probe", "n", 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "probe", rec["msg"])
}

func TestNew_FileFanout(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "sketchgeom.log")
	l, c := New(&buf, Options{Level: "info", File: path})

	l.With("component", "cli").Info("written")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written"`)
	assert.Contains(t, string(data), `"component":"cli"`)
	assert.Contains(t, buf.String(), "written")
}

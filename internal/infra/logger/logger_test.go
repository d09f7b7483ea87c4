package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		"":        zerolog.InfoLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel, false, true)

	l.Debug().Msg("hidden")
	l.Info().Str("session", "abc").Msg("session opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session opened", entry["message"])
	assert.Equal(t, "abc", entry["session"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel, true, true)
	l.Warn().Msg("engine failure")
	assert.Contains(t, buf.String(), "engine failure")
	assert.Contains(t, buf.String(), "WRN")
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	require.NoError(t, Init(Config{Output: path, Level: "debug"}))
	t.Cleanup(func() {
		_ = Init(Config{Output: "stderr", Level: "info", NoColor: true})
	})

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestInit_BadFile(t *testing.T) {
	err := Init(Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}

func TestShortCaller(t *testing.T) {
	got := shortCaller(0, filepath.Join("a", "b", "playback", "controller.go"), 42)
	assert.Equal(t, filepath.Join("playback", "controller.go")+":42", got)
}

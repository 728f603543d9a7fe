package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"Error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"info":    zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "horizon.log")
	log, closer, err := Setup("debug", path)
	require.NoError(t, err)

	log.Debug().Str("component", "test").Msg("hello")
	Phase(log, "stage", map[string]any{"id": 3})
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "component=test")
	assert.Contains(t, string(data), "phase=stage")
}

func TestCaptureCrash(t *testing.T) {
	dir := t.TempDir()

	assert.PanicsWithValue(t, "boom", func() {
		defer CaptureCrash(zerolog.Nop(), dir)
		panic("boom")
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "panic: boom")
	assert.Contains(t, string(data), Session.String())
	assert.Contains(t, string(data), "goroutine")
}

func TestCaptureCrashInGoroutine(t *testing.T) {
	dir := t.TempDir()
	recovered := make(chan any, 1)

	go func() {
		defer func() { recovered <- recover() }()
		defer CaptureCrash(zerolog.Nop(), dir)
		panic(errors.New("draw failed"))
	}()

	perr, ok := (<-recovered).(error)
	require.True(t, ok)
	assert.EqualError(t, perr, "draw failed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "panic: draw failed")
}

func TestCaptureCrashNoPanic(t *testing.T) {
	dir := t.TempDir()
	assert.NotPanics(t, func() {
		defer CaptureCrash(zerolog.Nop(), dir)
	})
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package config

import (
	"bytes"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(log.NewNopLogger(), filepath.Join(t.TempDir(), "missing.env"))

	require.Nil(t, err)
	assert.Equal(t, "", cfg.SeedFile)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
	assert.Equal(t, int64(0), cfg.Drift.Seed)
	assert.Equal(t, 0.05, cfg.Drift.Band)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TERMINAL_LOG_LEVEL", "debug")
	t.Setenv("TERMINAL_LOG_FORMAT", "json")
	t.Setenv("TERMINAL_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("TERMINAL_DRIFT_BAND", "0.1")

	cfg, err := Load(log.NewNopLogger(), filepath.Join(t.TempDir(), "missing.env"))

	require.Nil(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 0.1, cfg.Drift.Band)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Cleanup(func() { _ = os.Unsetenv("TERMINAL_DRIFT_SEED") })
	path := writeTempFile(t, ".env", "TERMINAL_DRIFT_SEED=1234\n")

	cfg, err := Load(log.NewNopLogger(), path)

	require.Nil(t, err)
	assert.Equal(t, int64(1234), cfg.Drift.Seed)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown level", "TERMINAL_LOG_LEVEL", "verbose"},
		{"unknown format", "TERMINAL_LOG_FORMAT", "xml"},
		{"band too wide", "TERMINAL_DRIFT_BAND", "1.5"},
		{"band not a number", "TERMINAL_DRIFT_BAND", "abc"},
		{"seed not a number", "TERMINAL_DRIFT_SEED", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load(log.NewNopLogger(), filepath.Join(t.TempDir(), "missing.env"))

			assert.NotNil(t, err)
		})
	}
}

func TestLogConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "logfmt"}.Logger(&buf)

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "msg=shown"))
	assert.True(t, strings.Contains(out, "level=warn"))
}

func TestLogConfig_LoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "debug", Format: "json"}.Logger(&buf)

	level.Debug(logger).Log("msg", "hello")

	assert.True(t, strings.Contains(buf.String(), `"msg":"hello"`))
}

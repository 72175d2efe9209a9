package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestInitDirWritesFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitDir(dir, "warn")
	require.NoError(t, err)

	slog.Info("dropped below level")
	slog.Warn("kept", "kind", "laboratory")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "astrolab.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=kept kind=laboratory")
	assert.NotContains(t, string(data), "dropped below level")
}

package actionlog

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"notice", LevelNotice},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.level, l)
		})
	}

	t.Run("slog notation", func(t *testing.T) {
		l, err := ParseLevel("WARN+2")
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn+2, l)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseLevel("loud")
		require.Error(t, err)
	})
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "trace", LevelString(LevelTrace))
	assert.Equal(t, "notice", LevelString(LevelNotice))
	assert.Equal(t, "warning", LevelString(LevelWarning))
	assert.Equal(t, "critical", LevelString(LevelCritical))
	assert.Equal(t, "info+1", LevelString(slog.LevelInfo+1))
}

func TestCommandForLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		cmd   string
	}{
		{LevelTrace, "debug"},
		{LevelDebug, "debug"},
		{LevelInfo, "debug"},
		{LevelNotice, "debug"},
		{LevelWarning, "warning"},
		{LevelError, "error"},
		{LevelCritical, "error"},
		{LevelWarning + 1, "warning"},
		{LevelError + 100, "error"},
		{LevelTrace - 4, "debug"},
	}
	for _, tt := range tests {
		t.Run(LevelString(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.cmd, commandForLevel(tt.level))
		})
	}
}

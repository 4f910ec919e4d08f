package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_Levels(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"bogus", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.NoError(t, Configure(tt.input, "", false))
			assert.Equal(t, tt.expected, Logger.GetLevel())
		})
	}
}

func TestConfigure_EnvFallback(t *testing.T) {
	t.Setenv("CALCHUB_LOG_LEVEL", "DEBUG")
	require.NoError(t, Configure("", "", false))
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}

func TestConfigure_TestModePinsInfo(t *testing.T) {
	require.NoError(t, Configure("debug", "", true))
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())
}

func TestConfigure_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calchub.log")
	require.NoError(t, Configure("info", path, false))
	Info("hello", "k", "v")
	assert.FileExists(t, path)
}

func TestNewStyledLogger_MatchesGlobalLevel(t *testing.T) {
	require.NoError(t, Configure("warn", "", false))
	var buf bytes.Buffer
	SetOutput(&buf)

	l := NewStyledLogger("Keypad")
	assert.Equal(t, log.WarnLevel, l.GetLevel())
	assert.Equal(t, "Keypad ", l.GetPrefix())
}

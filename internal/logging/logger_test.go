package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerBeforeInit(t *testing.T) {
	Shutdown()
	l := Logger()
	require.NotNil(t, l)
	l.Info("discarded")
}

func TestInitDiscardsWithoutDirOrDebug(t *testing.T) {
	defer Shutdown()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	Init(Config{})
	Logger().Error("dropped")

	_, err = os.Stat(filepath.Join(dir, LogFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestInitWritesRotatedFile(t *testing.T) {
	defer Shutdown()
	dir := t.TempDir()
	Init(Config{LogDir: dir, Level: "debug", Format: "text"})

	ForComponent(CompUI).Debug("popconfirm_opened", slog.String("id", "row-1"))
	Shutdown()

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "popconfirm_opened")
	assert.Contains(t, string(data), "component=ui")
}

func TestInitWriterJSON(t *testing.T) {
	defer Shutdown()
	var buf bytes.Buffer
	InitWriter(&buf, "json", slog.LevelInfo)

	ForComponent(CompLocale).Info("bundle_loaded", slog.String("locale", "de_DE"))
	ForComponent(CompLocale).Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"component":"locale"`)
	assert.Contains(t, out, `"locale":"de_DE"`)
	assert.NotContains(t, out, "hidden")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.name), tt.name)
	}
}

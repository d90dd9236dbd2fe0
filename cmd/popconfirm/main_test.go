package main

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjoeboo/popconfirm/internal/config"
	"github.com/sjoeboo/popconfirm/internal/logging"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-locale", "de", "-trigger", "hover", "-placement", "bottomLeft", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "de", o.localeName)
	assert.Equal(t, "hover", o.trigger)
	assert.Equal(t, "bottomLeft", o.placement)
	assert.True(t, o.debug)
	assert.False(t, o.version)
}

func TestParseFlagsHelp(t *testing.T) {
	_, err := parseFlags([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestParseFlagsUnknown(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestApplyFlagsOverridesConfig(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, options{localeName: "ja", theme: "light", trigger: "focus", debug: true})

	assert.Equal(t, "ja", cfg.Locale.Name)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "focus", cfg.Popconfirm.Trigger)
	assert.Equal(t, "top", cfg.Popconfirm.Placement, "unset flags keep config values")
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoadConfigExplicitMissingPath(t *testing.T) {
	cfg, err := loadConfig(t.TempDir() + "/missing.toml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfigDefaultPathReturnsCopy(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())
	_, err := config.Reload()
	require.NoError(t, err)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	applyFlags(cfg, options{theme: "light", trigger: "hover"})

	again, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "dark", again.Theme, "flags must not leak into the cached config")
	assert.Equal(t, "click", again.Popconfirm.Trigger)
}

func TestReportConfigLogsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[popconfirm]\ntrigger = \"bogus\"\nplacement = \"sideways\"\n"), 0o644))

	cfg, cfgErr := loadConfig(path)
	require.NoError(t, cfgErr)

	var buf bytes.Buffer
	logging.InitWriter(&buf, "text", slog.LevelInfo)
	defer logging.Shutdown()
	reportConfig(logging.ForComponent(logging.CompMain), cfg, cfgErr)

	out := buf.String()
	assert.Contains(t, out, "config_invalid_value")
	assert.Contains(t, out, "popconfirm.trigger")
	assert.Contains(t, out, "bogus")
	assert.Contains(t, out, "popconfirm.placement")
	assert.Equal(t, "click", cfg.Popconfirm.Trigger)
	assert.Equal(t, "top", cfg.Popconfirm.Placement)
}

func TestReportConfigLogsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme = "), 0o644))

	cfg, cfgErr := loadConfig(path)
	require.Error(t, cfgErr)

	var buf bytes.Buffer
	logging.InitWriter(&buf, "text", slog.LevelInfo)
	defer logging.Shutdown()
	reportConfig(logging.ForComponent(logging.CompMain), cfg, cfgErr)

	assert.Contains(t, buf.String(), "config_parse_failed")
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveTheme(t *testing.T) {
	dark := func() (bool, error) { return true, nil }
	light := func() (bool, error) { return false, nil }
	broken := func() (bool, error) { return false, errors.New("no dbus") }

	tests := []struct {
		name    string
		theme   string
		detect  func() (bool, error)
		want    string
		wantErr bool
	}{
		{"explicit light", "light", broken, "light", false},
		{"explicit dark", "dark", light, "dark", false},
		{"auto dark", "auto", dark, "dark", false},
		{"auto light", "auto", light, "light", false},
		{"auto detection fails", "auto", broken, "dark", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTheme(tt.theme, tt.detect)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestColorProfile(t *testing.T) {
	p, ok := colorProfile("TrueColor")
	require.True(t, ok)
	assert.Equal(t, termenv.TrueColor, p)

	p, ok = colorProfile("none")
	require.True(t, ok)
	assert.Equal(t, termenv.Ascii, p)

	_, ok = colorProfile("")
	assert.False(t, ok)
}

// Package config loads user preferences for the popconfirm demo from
// ~/.popconfirm/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileName is the TOML config file for user preferences
const FileName = "config.toml"

// HomeEnv overrides the config directory.
const HomeEnv = "POPCONFIRM_HOME"

// Config represents user-facing configuration in TOML format
type Config struct {
	// Theme is "dark" (default), "light" or "auto" (follow the OS appearance)
	Theme string `toml:"theme"`

	// Popconfirm holds defaults applied to every demo popconfirm
	Popconfirm PopconfirmSettings `toml:"popconfirm"`

	// Locale selects and extends the language bundles
	Locale LocaleSettings `toml:"locale"`

	// Logs defines debug log settings
	Logs LogSettings `toml:"logs"`
}

// PopconfirmSettings defines default widget options
type PopconfirmSettings struct {
	// Trigger is "click" (default), "hover", "focus" or "contextmenu"
	Trigger string `toml:"trigger"`

	// Placement is one of the twelve placements, default "top"
	Placement string `toml:"placement"`

	// OKType is the confirm button type, default "primary"
	OKType string `toml:"ok_type"`

	// TransitionName is "zoom-big" (default), "slide-up" or "" for none
	TransitionName *string `toml:"transition_name"`

	// AutoAdjustOverflow flips the popup when it does not fit (default: true)
	AutoAdjustOverflow *bool `toml:"auto_adjust_overflow"`
}

// LocaleSettings defines language configuration
type LocaleSettings struct {
	// Name is the active locale, e.g. "en_US" (default) or "de"
	Name string `toml:"name"`

	// Dir holds extra *.toml bundles, registered on startup
	Dir string `toml:"dir"`

	// Watch reloads the active bundle file from Dir when it changes
	Watch bool `toml:"watch"`
}

// LogSettings defines log file configuration
type LogSettings struct {
	// Level is "debug", "info" (default), "warn" or "error"
	Level string `toml:"level"`

	// Format is "json" (default) or "text"
	Format string `toml:"format"`

	// Dir overrides the log directory (default: config directory when debugging)
	Dir string `toml:"dir"`

	// MaxSizeMB is the max size before rotation (default: 10)
	MaxSizeMB int `toml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept (default: 5)
	MaxBackups int `toml:"max_backups"`
}

// Valid option values.
var (
	validThemes     = []string{"dark", "light", "auto"}
	validTriggers   = []string{"click", "hover", "focus", "contextmenu"}
	validOKTypes    = []string{"default", "primary", "dashed", "danger", "link"}
	validPlacements = []string{
		"top", "left", "right", "bottom",
		"topLeft", "topRight", "bottomLeft", "bottomRight",
		"leftTop", "leftBottom", "rightTop", "rightBottom",
	}
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: "dark",
		Popconfirm: PopconfirmSettings{
			Trigger:   "click",
			Placement: "top",
			OKType:    "primary",
		},
		Locale: LocaleSettings{Name: "en_US"},
		Logs:   LogSettings{Level: "info", Format: "json"},
	}
}

// Validate replaces unknown enum values with their defaults and returns one
// problem description per replaced value.
func (c *Config) Validate() []string {
	def := Default()
	var problems []string
	check := func(field string, value *string, valid []string, fallback string) {
		if *value == "" {
			*value = fallback
			return
		}
		for _, v := range valid {
			if *value == v {
				return
			}
		}
		problems = append(problems, fmt.Sprintf("%s: unknown value %q, using %q", field, *value, fallback))
		*value = fallback
	}
	check("theme", &c.Theme, validThemes, def.Theme)
	check("popconfirm.trigger", &c.Popconfirm.Trigger, validTriggers, def.Popconfirm.Trigger)
	check("popconfirm.placement", &c.Popconfirm.Placement, validPlacements, def.Popconfirm.Placement)
	check("popconfirm.ok_type", &c.Popconfirm.OKType, validOKTypes, def.Popconfirm.OKType)
	if c.Locale.Name == "" {
		c.Locale.Name = def.Locale.Name
	}
	return problems
}

// TransitionNameOrDefault returns the configured transition, "zoom-big" when
// unset. An explicit empty string disables the transition.
func (s PopconfirmSettings) TransitionNameOrDefault() string {
	if s.TransitionName == nil {
		return "zoom-big"
	}
	return *s.TransitionName
}

// AutoAdjustOverflowOrDefault returns the configured value, true when unset.
func (s PopconfirmSettings) AutoAdjustOverflowOrDefault() bool {
	if s.AutoAdjustOverflow == nil {
		return true
	}
	return *s.AutoAdjustOverflow
}

// Cache for config (loaded once per process)
var (
	configCache   *Config
	configErr     error
	configCacheMu sync.RWMutex
)

// Dir returns the popconfirm config directory.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".popconfirm"), nil
}

// Path returns the path to the config file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// LoadFile reads a config file over the defaults. A missing file yields the
// defaults; a parse error is returned alongside the defaults. Values are not
// validated, so the caller can report what Validate replaces.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load returns a copy of the user configuration, read from the default path
// once per process. A parse error from that read is returned on every call
// together with the defaults, so a bad file never prevents startup.
func Load() (*Config, error) {
	configCacheMu.RLock()
	if configCache != nil {
		defer configCacheMu.RUnlock()
		return configCache.Clone(), configErr
	}
	configCacheMu.RUnlock()

	configCacheMu.Lock()
	defer configCacheMu.Unlock()

	// Double-check after acquiring write lock
	if configCache != nil {
		return configCache.Clone(), configErr
	}

	path, err := Path()
	if err != nil {
		configCache, configErr = Default(), err
		return configCache.Clone(), configErr
	}
	configCache, configErr = LoadFile(path)
	return configCache.Clone(), configErr
}

// Reload forces a reload of the config
func Reload() (*Config, error) {
	configCacheMu.Lock()
	configCache = nil
	configErr = nil
	configCacheMu.Unlock()
	return Load()
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	if c.Popconfirm.TransitionName != nil {
		name := *c.Popconfirm.TransitionName
		out.Popconfirm.TransitionName = &name
	}
	if c.Popconfirm.AutoAdjustOverflow != nil {
		adjust := *c.Popconfirm.AutoAdjustOverflow
		out.Popconfirm.AutoAdjustOverflow = &adjust
	}
	return &out
}

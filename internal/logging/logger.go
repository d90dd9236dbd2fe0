package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Components tagged on sub-loggers.
const (
	CompUI     = "ui"
	CompLocale = "locale"
	CompConfig = "config"
	CompMain   = "main"
)

// LogFileName is the name of the rotated log file inside LogDir.
const LogFileName = "popconfirm.log"

// Config selects where logs go and how they rotate. Zero rotation values
// fall back to 10 MB, 5 backups and 10 days.
type Config struct {
	LogDir string // e.g. ~/.popconfirm
	Level  string // debug, info, warn or error
	Format string // json unless "text"

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	// Debug enables logging without a LogDir, into the working directory,
	// at debug level unless Level says otherwise
	Debug bool
}

var (
	globalLogger *slog.Logger
	globalMu     sync.RWMutex
	lumberjackW  *lumberjack.Logger
)

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init replaces the global logger. Output is discarded unless Debug is set
// or LogDir is given.
func Init(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 10
	}

	if lumberjackW != nil {
		lumberjackW.Close()
		lumberjackW = nil
	}

	if !cfg.Debug && cfg.LogDir == "" {
		globalLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return
	}

	level := ParseLevel(cfg.Level)
	if cfg.Debug && cfg.Level == "" {
		level = slog.LevelDebug
	}

	dir := cfg.LogDir
	if dir == "" {
		dir = "."
	}
	lumberjackW = &lumberjack.Logger{
		Filename:   filepath.Join(dir, LogFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	globalLogger = slog.New(newHandler(lumberjackW, cfg.Format, level))
}

// InitWriter points the global logger at an arbitrary writer. Used by tests
// and by callers that want logs on stderr instead of a rotated file.
func InitWriter(w io.Writer, format string, level slog.Level) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = slog.New(newHandler(w, format, level))
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// Logger returns the global logger, or a discarding one before Init.
func Logger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return globalLogger
}

// ForComponent tags Logger() with a component attribute.
func ForComponent(name string) *slog.Logger {
	return Logger().With(slog.String("component", name))
}

// Shutdown closes writers.
func Shutdown() {
	globalMu.Lock()
	defer globalMu.Unlock()

	if lumberjackW != nil {
		lumberjackW.Close()
		lumberjackW = nil
	}
	globalLogger = nil
}

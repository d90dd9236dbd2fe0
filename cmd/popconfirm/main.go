package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	darkmode "github.com/thiagokokada/dark-mode-go"
	"golang.org/x/term"

	"github.com/sjoeboo/popconfirm/internal/config"
	"github.com/sjoeboo/popconfirm/internal/locale"
	"github.com/sjoeboo/popconfirm/internal/logging"
	"github.com/sjoeboo/popconfirm/internal/ui"
)

const Version = "0.1.0"

// ColorEnv overrides color detection: truecolor, 256, 16, none
const ColorEnv = "POPCONFIRM_COLOR"

var colorProfiles = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"256":       termenv.ANSI256,
	"16":        termenv.ANSI,
	"none":      termenv.Ascii,
}

// colorProfile returns the profile named by a ColorEnv value.
func colorProfile(name string) (termenv.Profile, bool) {
	p, ok := colorProfiles[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// initColorProfile applies ColorEnv, or what termenv detects from the
// environment (NO_COLOR and CLICOLOR_FORCE included).
func initColorProfile() {
	if p, ok := colorProfile(os.Getenv(ColorEnv)); ok {
		lipgloss.SetColorProfile(p)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// resolveTheme maps the "auto" theme to the OS appearance reported by
// detect. Other names pass through. A failed detection yields "dark" and
// the error.
func resolveTheme(theme string, detect func() (bool, error)) (string, error) {
	if theme != "auto" {
		return theme, nil
	}
	isDark, err := detect()
	if err != nil {
		return "dark", fmt.Errorf("detect OS appearance: %w", err)
	}
	if isDark {
		return "dark", nil
	}
	return "light", nil
}

type options struct {
	configPath string
	localeName string
	theme      string
	trigger    string
	placement  string
	debug      bool
	version    bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("popconfirm", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "Path to config.toml (default: ~/.popconfirm/config.toml)")
	fs.StringVar(&o.localeName, "locale", "", "Locale for button labels, e.g. en_US, de, zh-CN")
	fs.StringVar(&o.theme, "theme", "", "Color theme: dark, light or auto")
	fs.StringVar(&o.trigger, "trigger", "", "Default trigger: click, hover, focus or contextmenu")
	fs.StringVar(&o.placement, "placement", "", "Default placement, e.g. top, bottomLeft, rightTop")
	fs.BoolVar(&o.debug, "debug", false, "Write debug logs to the config directory")
	fs.BoolVar(&o.version, "version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: popconfirm [options]")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Interactive demo of the popconfirm widget.")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if o.version {
		fmt.Printf("popconfirm v%s\n", Version)
		return
	}

	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("popconfirm needs an interactive terminal")
	}
	initColorProfile()

	cfg, cfgErr := loadConfig(o.configPath)
	applyFlags(cfg, o)

	logDir := cfg.Logs.Dir
	if logDir == "" && o.debug {
		logDir, _ = config.Dir()
	}
	logging.Init(logging.Config{
		LogDir:     logDir,
		Level:      cfg.Logs.Level,
		Format:     cfg.Logs.Format,
		MaxSizeMB:  cfg.Logs.MaxSizeMB,
		MaxBackups: cfg.Logs.MaxBackups,
		Debug:      o.debug,
	})
	defer logging.Shutdown()

	log := logging.ForComponent(logging.CompMain)
	reportConfig(log, cfg, cfgErr)

	theme, err := resolveTheme(cfg.Theme, darkmode.IsDarkMode)
	if err != nil {
		log.Warn("theme_detect_failed", "fallback", theme, "error", err)
	}
	ui.InitTheme(theme)

	registry := locale.NewRegistry()
	if n, err := registry.LoadDir(cfg.Locale.Dir); err != nil {
		log.Warn("locale_dir_partial", "dir", cfg.Locale.Dir, "loaded", n, "error", err)
	} else if n > 0 {
		log.Info("locale_dir_loaded", "dir", cfg.Locale.Dir, "loaded", n)
	}
	bundle, err := registry.Lookup(cfg.Locale.Name)
	if err != nil {
		return err
	}

	var watcher *locale.Watcher
	if cfg.Locale.Watch && cfg.Locale.Dir != "" {
		path := filepath.Join(cfg.Locale.Dir, bundle.Locale+".toml")
		watcher, err = locale.NewWatcher(path)
		if err != nil {
			log.Warn("locale_watch_disabled", "path", path, "error", err)
		} else {
			watcher.Start()
			defer watcher.Close()
		}
	}

	transition := cfg.Popconfirm.TransitionNameOrDefault()
	if transition == "" {
		transition = ui.TransitionNone
	}

	home := ui.NewHome(ui.HomeOptions{
		Trigger:           ui.Trigger(cfg.Popconfirm.Trigger),
		Placement:         ui.Placement(cfg.Popconfirm.Placement),
		OKType:            ui.ButtonType(cfg.Popconfirm.OKType),
		TransitionName:    transition,
		DisableAutoAdjust: !cfg.Popconfirm.AutoAdjustOverflowOrDefault(),
		Locale:            bundle,
		LocaleName:        bundle.Locale,
		Watcher:           watcher,
		Registry:          registry,
	})

	p := tea.NewProgram(home, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// loadConfig reads the config from path, or the default location when empty.
// The result is the caller's own copy and is not validated yet.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// reportConfig logs a config parse error and normalizes cfg, logging each
// value Validate replaced. Call it once logging is initialized.
func reportConfig(log *slog.Logger, cfg *config.Config, cfgErr error) {
	if cfgErr != nil {
		log.Warn("config_parse_failed", "error", cfgErr)
	}
	for _, p := range cfg.Validate() {
		log.Warn("config_invalid_value", "problem", p)
	}
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cfg *config.Config, o options) {
	if o.localeName != "" {
		cfg.Locale.Name = o.localeName
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	if o.trigger != "" {
		cfg.Popconfirm.Trigger = o.trigger
	}
	if o.placement != "" {
		cfg.Popconfirm.Placement = o.placement
	}
	if o.debug {
		cfg.Logs.Level = "debug"
	}
}

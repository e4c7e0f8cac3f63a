package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/wirecalc/internal/app"
	"github.com/atomicstack/wirecalc/internal/layout"
	"github.com/atomicstack/wirecalc/internal/panel"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile  = "WIRECALC_CONFIG"
	envPanel       = "WIRECALC_PANEL"
	envTitle       = "WIRECALC_TITLE"
	envWidth       = "WIRECALC_WIDTH"
	envHeight      = "WIRECALC_HEIGHT"
	envBreakpoint  = "WIRECALC_BREAKPOINT"
	envDrawerWidth = "WIRECALC_DRAWER_WIDTH"
	envShowFooter  = "WIRECALC_FOOTER"
	envWatch       = "WIRECALC_WATCH"
	envTrace       = "WIRECALC_TRACE"
	envLogFile     = "WIRECALC_LOG_FILE"
)

// Keys understood in the TOML config file.
const (
	keyPanel       = "panel"
	keyTitle       = "title"
	keyWidth       = "width"
	keyHeight      = "height"
	keyBreakpoint  = "breakpoint"
	keyDrawerWidth = "drawer-width"
	keyShowFooter  = "footer"
	keyWatch       = "watch"
	keyTrace       = "trace"
	keyLogFile     = "log-file"
)

// Load parses configuration from CLI arguments, environment variables and
// the config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// flag first, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := configPath(args, env)
	file, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("wirecalc", flag.ContinueOnError)
	fset.SetOutput(new(strings.Builder))

	configFile := fset.String("config", path, "path to the TOML config file")
	panelID := fset.String("panel", envOrDefault(env, envPanel, file.GetString(keyPanel)), "panel shown at startup")
	title := fset.String("title", envOrDefault(env, envTitle, file.GetString(keyTitle)), "title shown in the top bar")
	width := fset.Int("width", envOrInt(env, envWidth, file.GetInt(keyWidth)), "desired viewport width in cells (0 uses terminal width)")
	height := fset.Int("height", envOrInt(env, envHeight, file.GetInt(keyHeight)), "desired viewport height in rows (0 uses terminal height)")
	breakpoint := fset.Int("breakpoint", envOrInt(env, envBreakpoint, file.GetInt(keyBreakpoint)), "width in cells at which the drawer becomes permanent")
	drawerWidth := fset.Int("drawer-width", envOrInt(env, envDrawerWidth, file.GetInt(keyDrawerWidth)), "width in cells of the navigation drawer")
	footer := fset.Bool("footer", envOrBool(env, envShowFooter, file.GetBool(keyShowFooter)), "show the key help footer")
	watch := fset.Bool("watch", envOrBool(env, envWatch, file.GetBool(keyWatch)), "reload layout preferences when the config file changes")
	trace := fset.Bool("trace", envOrBool(env, envTrace, file.GetBool(keyTrace)), "enable verbose JSON trace logging")
	logFile := fset.String("log-file", envOrDefault(env, envLogFile, file.GetString(keyLogFile)), "path to the log file")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Panel:       *panelID,
			Title:       *title,
			Breakpoint:  *breakpoint,
			DrawerWidth: *drawerWidth,
			ConfigFile:  *configFile,
			Watch:       *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":      *configFile,
			"panel":       *panelID,
			"title":       *title,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"breakpoint":  strconv.Itoa(*breakpoint),
			"drawerWidth": strconv.Itoa(*drawerWidth),
			"footer":      strconv.FormatBool(*footer),
			"watch":       strconv.FormatBool(*watch),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// DefaultPath is the config file used when neither -config nor
// WIRECALC_CONFIG is set.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "wirecalc", "config.toml")
}

// configPath finds the config file before flags are parsed, since the file
// supplies the flag defaults. explicit is false for the default location,
// which may be absent.
func configPath(args []string, env map[string]string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	if v := strings.TrimSpace(env[envConfigFile]); v != "" {
		return v, true
	}
	return DefaultPath(), false
}

func readFile(path string, explicit bool) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyPanel, panel.DefaultID)
	v.SetDefault(keyBreakpoint, layout.DefaultBreakpoint)
	v.SetDefault(keyDrawerWidth, layout.DefaultDrawerWidth)
	v.SetConfigType("toml")
	if path == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
		if missing && !explicit {
			return v, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that depend on each other or on the panel registry.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be > 0 (got %d)", a.Breakpoint)
	}
	if a.DrawerWidth <= 0 {
		return fmt.Errorf("drawer-width must be > 0 (got %d)", a.DrawerWidth)
	}
	if a.Breakpoint <= a.DrawerWidth {
		return fmt.Errorf("breakpoint (%d) must exceed drawer-width (%d)", a.Breakpoint, a.DrawerWidth)
	}
	if !panel.Default().Contains(a.Panel) {
		return fmt.Errorf("panel %q: %w", a.Panel, panel.ErrUnknownPanel)
	}
	if a.Watch {
		if a.ConfigFile == "" {
			return errors.New("watch requires a config file")
		}
		dir := filepath.Dir(a.ConfigFile)
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("watch: config directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("watch: %s is not a directory", dir)
		}
	}
	return nil
}

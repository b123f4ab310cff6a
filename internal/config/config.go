package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/grid-menu/internal/app"
	"github.com/atomicstack/grid-menu/internal/menu"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envLayout     = "GRID_MENU_LAYOUT"
	envPages      = "GRID_MENU_PAGES"
	envRows       = "GRID_MENU_ROWS"
	envName       = "GRID_MENU_NAME"
	envNumbering  = "GRID_MENU_NUMBERING"
	envUser       = "GRID_MENU_USER"
	envWidth      = "GRID_MENU_WIDTH"
	envHeight     = "GRID_MENU_HEIGHT"
	envShowFooter = "GRID_MENU_FOOTER"
	envVerbose    = "GRID_MENU_VERBOSE"
	envTrace      = "GRID_MENU_TRACE"
	envLogFile    = "GRID_MENU_LOG_FILE"

	defaultPages = 3
	defaultRows  = 3
	defaultName  = "Menu"
	defaultUser  = "player"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("grid-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	layoutPath := fs.String("layout", envOrDefault(env, envLayout, ""), "path to a YAML layout file (overrides pages, rows and name)")
	pages := fs.Int("pages", envOrInt(env, envPages, defaultPages), "number of pages in the default layout")
	rows := fs.Int("rows", envOrInt(env, envRows, defaultRows), "rows per page in the default layout")
	name := fs.String("name", envOrDefault(env, envName, defaultName), "page name in the default layout")
	numbering := fs.String("numbering", envOrDefault(env, envNumbering, ""), "page numbering: none, ascending or descending (overrides the layout file)")
	user := fs.String("user", envOrDefault(env, envUser, envOrDefault(env, "USER", defaultUser)), "name of the local user")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "report every button press in the status line")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	printLayout := fs.Bool("print-layout", false, "print the effective layout as YAML and exit")
	check := fs.Bool("check", false, "validate the layout, build it and exit")

	if err := fs.Parse(args); err != nil {
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
			LayoutPath:  *layoutPath,
			Pages:       *pages,
			Rows:        *rows,
			Name:        *name,
			Numbering:   *numbering,
			User:        strings.TrimSpace(*user),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			PrintLayout: *printLayout,
			Check:       *check,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"layout":    *layoutPath,
			"pages":     strconv.Itoa(*pages),
			"rows":      strconv.Itoa(*rows),
			"name":      *name,
			"numbering": *numbering,
			"user":      *user,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// Validate rejects settings no layout could be built from.
func Validate(cfg Config) error {
	if cfg.App.Pages < 0 {
		return fmt.Errorf("pages must be >= 0 (got %d)", cfg.App.Pages)
	}
	if cfg.App.Rows < 1 {
		return fmt.Errorf("rows must be >= 1 (got %d)", cfg.App.Rows)
	}
	if _, err := menu.ParseNumbering(cfg.App.Numbering); err != nil {
		return err
	}
	if cfg.App.User == "" {
		return fmt.Errorf("user must not be empty")
	}
	return nil
}

// package config handles configuration loading and defaults
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// path is given.
const DefaultConfigFile = "todo-tracker.toml"

// Config holds the full configuration for the server.
type Config struct {
	// Addr is the HTTP listen address
	Addr string `toml:"addr"`

	// DBPath is the SQLite database file; blank selects the in-memory store
	DBPath string `toml:"db_path"`

	// CORSOrigin, when non-empty, is the single origin allowed to call the
	// API from a browser
	CORSOrigin string `toml:"cors_origin"`

	// DefaultPageSize is used by the paged listing when a request leaves
	// page_size unset
	DefaultPageSize int `toml:"default_page_size"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file overrides it
func Default() Config {
	return Config{
		Addr:            ":8080",
		DefaultPageSize: 10,
		LogLevel:        "info",
	}
}

// Load reads the configuration file at path on top of the defaults. A blank
// path falls back to DefaultConfigFile; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be positive, got %d", c.DefaultPageSize)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// SlogLevel maps the configured level name to its slog value
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

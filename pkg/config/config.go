// Package config loads and saves persistent editor settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the name of the config file in the user's home directory.
const FileName = ".diagedit.toml"

// Config holds persistent editor settings
type Config struct {
	GridSize          float64 `toml:"grid_size"`           // 0 disables snapping
	Zoom              float64 `toml:"zoom"`                // surface cells per diagram unit
	UndoLevels        int     `toml:"undo_levels"`         // max undo steps
	DoubleClickMillis int     `toml:"double_click_millis"` // double-click window
	LogFile           string  `toml:"log_file"`            // empty disables logging
	LogLevel          string  `toml:"log_level"`           // debug, info, warn, error
}

// Default returns default configuration
func Default() Config {
	return Config{
		GridSize:          1,
		Zoom:              1,
		UndoLevels:        50,
		DoubleClickMillis: 400,
		LogLevel:          "info",
	}
}

// Path returns the path to the config file
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads configuration from a TOML file. A missing file yields the
// defaults; out-of-range values are replaced by their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML config data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes configuration to a TOML file.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	content := append([]byte("# diagedit configuration\n"), data...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) normalize() {
	def := Default()
	if c.GridSize < 0 {
		c.GridSize = def.GridSize
	}
	if c.Zoom <= 0 {
		c.Zoom = def.Zoom
	}
	if c.UndoLevels <= 0 {
		c.UndoLevels = def.UndoLevels
	}
	if c.DoubleClickMillis <= 0 {
		c.DoubleClickMillis = def.DoubleClickMillis
	}
}

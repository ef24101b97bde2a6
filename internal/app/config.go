package app

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the engine configuration, loaded from a TOML file. Missing
// fields fall back to defaults under the user config directory.
type Config struct {
	// SettingsPath locates the JSON settings document holding
	// shortcuts, custom cases and actions.
	SettingsPath string `toml:"settings_path"`

	// DataDir holds the history database and trained models.
	DataDir string `toml:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// HistoryMax bounds the in-memory history ring.
	HistoryMax int `toml:"history_max"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	root := filepath.Join(base, "selact")
	return Config{
		SettingsPath: filepath.Join(root, "settings.json"),
		DataDir:      filepath.Join(root, "data"),
		LogLevel:     "info",
	}
}

// LoadConfig reads a TOML config file, overlaying it on the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("app: config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("app: config: %w", err)
	}
	return cfg, nil
}

// Package config loads and saves the callnum configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/logging"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/paths"
	"github.com/spf13/viper"
)

// Config is the full callnum configuration.
type Config struct {
	Output  OutputConfig   `mapstructure:"output"`
	Watch   WatchConfig    `mapstructure:"watch"`
	Logging logging.Config `mapstructure:"logging"`
}

// OutputConfig controls how sorted shelf lists are printed.
type OutputConfig struct {
	// Color enables styled terminal output where supported.
	Color bool `mapstructure:"color"`
	// Table prints an aligned table instead of formal Book(...) lines.
	Table bool `mapstructure:"table"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// DebounceMS is how long to wait after the last write event before
	// re-sorting, in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Color: true,
			Table: false,
		},
		Watch: WatchConfig{
			DebounceMS: 250,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from the default location, or returns
// defaults when no config file exists.
func Load() (*Config, error) {
	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from an explicit path. A missing file is
// not an error; defaults are returned.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default location.
func (c *Config) Save() error {
	configFile, err := paths.ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}
	return os.WriteFile(configFile, []byte(c.ToTOML()), 0644)
}

// ConfigExists reports whether a config file is present at the default
// location.
func ConfigExists() bool {
	path, err := paths.ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// ToTOML renders the configuration as a commented TOML document.
func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# callnum configuration
# Generated by: callnum config init

[output]
# Styled terminal output where supported
color = %v
# Print an aligned table instead of formal Book(...) lines
table = %v

[watch]
# Delay after the last write event before re-sorting (milliseconds)
debounce_ms = %d

[logging]
# Levels: debug, info, warn, error
level = "%s"
# Log file path; empty means ~/.config/callnum/logs/callnum.log
file = "%s"
max_size_mb = %d
max_backups = %d
`,
		c.Output.Color,
		c.Output.Table,
		c.Watch.DebounceMS,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}

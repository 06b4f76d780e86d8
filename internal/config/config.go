package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName = "mixtape"

	defaultHistoryLimit = 5
	defaultLogLevel     = "info"
	defaultBuffer       = 100 * time.Millisecond
)

type Config struct {
	Database     string `koanf:"database"`      // path to the SQLite file (default: XDG data dir)
	HistoryLimit int    `koanf:"history_limit"` // recently-played entries shown (default: 5)
	MPRIS        *bool  `koanf:"mpris"`         // expose media keys over D-Bus (default: true)

	Log    LogConfig    `koanf:"log"`
	Player PlayerConfig `koanf:"player"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error"
	File  string `koanf:"file"`  // default: XDG state dir
}

// PlayerConfig holds audio output settings.
type PlayerConfig struct {
	BufferMS int  `koanf:"buffer_ms"` // speaker buffer (default: 100)
	Volume   *int `koanf:"volume"`    // 0-100 (default: 100)
}

// Load reads the user config then ./config.toml; later files win.
func Load() (*Config, error) {
	return LoadFrom(DefaultPaths()...)
}

// LoadFrom reads the given TOML files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Database = ExpandPath(cfg.Database)
	cfg.Log.File = ExpandPath(cfg.Log.File)

	return cfg, nil
}

// DefaultPaths lists the config files Load reads, lowest priority first.
func DefaultPaths() []string {
	paths := []string{}

	// 1. ~/.config/mixtape/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DatabasePath returns the configured database path, or
// $XDG_DATA_HOME/mixtape/mixtape.db (creating its directory).
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}

// LogPath returns the configured log file, or
// $XDG_STATE_HOME/mixtape/mixtape.log (creating its directory).
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// GetHistoryLimit returns the recently-played view size.
func (c *Config) GetHistoryLimit() int {
	if c.HistoryLimit <= 0 {
		return defaultHistoryLimit
	}
	return c.HistoryLimit
}

// GetLogLevel returns the configured log level name.
func (c *Config) GetLogLevel() string {
	if c.Log.Level == "" {
		return defaultLogLevel
	}
	return c.Log.Level
}

// PlayerBuffer returns the speaker buffer length.
func (c *Config) PlayerBuffer() time.Duration {
	if c.Player.BufferMS <= 0 {
		return defaultBuffer
	}
	return time.Duration(c.Player.BufferMS) * time.Millisecond
}

// PlayerVolume returns the startup output level in the 0.0-1.0 range.
func (c *Config) PlayerVolume() float64 {
	if c.Player.Volume == nil {
		return 1
	}
	return float64(min(max(*c.Player.Volume, 0), 100)) / 100
}

// MPRISEnabled reports whether the D-Bus media interface should start.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

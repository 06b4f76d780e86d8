//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/mixtape.db",
			expected: "/var/lib/mixtape.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/mixtape.db",
			expected: "data/mixtape.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandPath(tt.input)
			if result != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	if len(paths) == 0 {
		t.Fatal("DefaultPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if len(paths) > 1 && !strings.HasSuffix(paths[0], filepath.Join(".config", "mixtape", "config.toml")) {
		t.Errorf("first config path = %q, want user config dir", paths[0])
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if got := cfg.GetHistoryLimit(); got != 5 {
		t.Errorf("GetHistoryLimit() = %d, want 5", got)
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want info", got)
	}
	if got := cfg.PlayerBuffer(); got != 100*time.Millisecond {
		t.Errorf("PlayerBuffer() = %v, want 100ms", got)
	}
	if !cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = false, want true by default")
	}
	if cfg.PlayerVolume() != 1 {
		t.Errorf("PlayerVolume() = %v, want 1 by default", cfg.PlayerVolume())
	}
}

func TestPlayerVolume_Clamped(t *testing.T) {
	tests := []struct {
		in   int
		want float64
	}{
		{0, 0},
		{-5, 0},
		{100, 1},
		{250, 1},
	}
	for _, tt := range tests {
		in := tt.in
		cfg := &Config{Player: PlayerConfig{Volume: &in}}
		if got := cfg.PlayerVolume(); got != tt.want {
			t.Errorf("PlayerVolume(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
database = "~/music/mixtape.db"
history_limit = 10
mpris = false

[log]
level = "debug"
file = "/tmp/mixtape.log"

[player]
buffer_ms = 250
volume = 40
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "music", "mixtape.db"); cfg.Database != want {
		t.Errorf("Database = %q, want %q", cfg.Database, want)
	}
	if cfg.GetHistoryLimit() != 10 {
		t.Errorf("GetHistoryLimit() = %d, want 10", cfg.GetHistoryLimit())
	}
	if cfg.MPRISEnabled() {
		t.Error("MPRISEnabled() = true, want false")
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", cfg.GetLogLevel())
	}
	if cfg.PlayerBuffer() != 250*time.Millisecond {
		t.Errorf("PlayerBuffer() = %v, want 250ms", cfg.PlayerBuffer())
	}
	if cfg.PlayerVolume() != 0.4 {
		t.Errorf("PlayerVolume() = %v, want 0.4", cfg.PlayerVolume())
	}

	logPath, err := cfg.LogPath()
	if err != nil || logPath != "/tmp/mixtape.log" {
		t.Errorf("LogPath() = %q, %v; want /tmp/mixtape.log", logPath, err)
	}
	dbPath, err := cfg.DatabasePath()
	if err != nil || dbPath != cfg.Database {
		t.Errorf("DatabasePath() = %q, %v; want %q", dbPath, err, cfg.Database)
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeConfig(t, t.TempDir(), "history_limit = 3\n[log]\nlevel = \"warn\"\n")
	second := writeConfig(t, t.TempDir(), "history_limit = 7\n")

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.GetHistoryLimit() != 7 {
		t.Errorf("GetHistoryLimit() = %d, want 7", cfg.GetHistoryLimit())
	}
	if cfg.GetLogLevel() != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn (kept from first file)", cfg.GetLogLevel())
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "invalid = [[[")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestGetters_InvalidValuesFallBack(t *testing.T) {
	cfg := &Config{HistoryLimit: -1, Player: PlayerConfig{BufferMS: -20}}

	if cfg.GetHistoryLimit() != 5 {
		t.Errorf("GetHistoryLimit() = %d, want 5", cfg.GetHistoryLimit())
	}
	if cfg.PlayerBuffer() != 100*time.Millisecond {
		t.Errorf("PlayerBuffer() = %v, want 100ms", cfg.PlayerBuffer())
	}
}

func TestDatabasePath_DefaultsToXDGData(t *testing.T) {
	dataHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	path, err := (&Config{}).DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error = %v", err)
	}

	if want := filepath.Join(dataHome, "mixtape", "mixtape.db"); path != want {
		t.Errorf("DatabasePath() = %q, want %q", path, want)
	}
}

func TestLogPath_DefaultsToXDGState(t *testing.T) {
	stateHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()

	path, err := (&Config{}).LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}

	if want := filepath.Join(stateHome, "mixtape", "mixtape.log"); path != want {
		t.Errorf("LogPath() = %q, want %q", path, want)
	}
}

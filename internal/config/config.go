// ABOUTME: Gym tracker configuration with backend and logging selection.
// ABOUTME: Handles settings, preferences, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DLAppStuff/GymAppTest/internal/charm"
	"github.com/DLAppStuff/GymAppTest/internal/storage"
)

// Backends lists the accepted values for Config.Backend.
var Backends = []string{"sqlite", "badger", "charm", "file"}

// Config stores gym tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger", "charm", or "file".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/gym.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is a logrus level name. Defaults to "warn".
	LogLevel string `json:"log_level,omitempty"`

	// LogFile, when set, receives rotated logs instead of stderr.
	LogFile string `json:"log_file,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// GetLogFile returns the log file path with ~ expanded, or "" for stderr.
func (c *Config) GetLogFile() string {
	return ExpandPath(c.LogFile)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Store implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		return storage.OpenSQLite(storage.DBPath(dataDir))
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case "file":
		return storage.OpenFile(filepath.Join(dataDir, "json"))
	case "charm":
		return charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// Set assigns a config field by its JSON name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		if !isKnownBackend(value) {
			return fmt.Errorf("unknown backend: %q (use %s)", value, strings.Join(Backends, ", "))
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "log_level":
		c.LogLevel = value
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

// Values returns the effective settings keyed by JSON name, in sorted key order.
func (c *Config) Values() [][2]string {
	values := map[string]string{
		"backend":   c.GetBackend(),
		"data_dir":  c.GetDataDir(),
		"log_level": c.GetLogLevel(),
		"log_file":  c.GetLogFile(),
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, values[k]})
	}
	return out
}

func isKnownBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gym", "config.json")
}

// Load reads config from the default path.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes config to path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tailscale/hujson"
)

const (
	configDirName  = ".claude-agents"
	configFileName = "config.json"

	// ConfigHomeEnv overrides the configuration directory.
	ConfigHomeEnv = "CLAUDE_AGENTS_HOME"
)

// SettingKeys are the settings that can be read and written by key.
var SettingKeys = []string{"defaultPlatform", "defaultScope", "defaultModel", "defaultColor"}

// ConfigManager handles reading and writing the configuration file. The file
// is JSON with comments and trailing commas allowed.
type ConfigManager struct {
	configDir string
	mu        sync.RWMutex
}

// NewConfigManager creates a ConfigManager using $CLAUDE_AGENTS_HOME or
// ~/.claude-agents/.
func NewConfigManager() (*ConfigManager, error) {
	if dir := os.Getenv(ConfigHomeEnv); dir != "" {
		return &ConfigManager{configDir: dir}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return &ConfigManager{
		configDir: filepath.Join(home, configDirName),
	}, nil
}

// NewConfigManagerWithDir creates a ConfigManager using a custom config directory.
// Useful for testing.
func NewConfigManagerWithDir(dir string) *ConfigManager {
	return &ConfigManager{configDir: dir}
}

// ConfigDir returns the configuration directory path.
func (cm *ConfigManager) ConfigDir() string {
	return cm.configDir
}

// ConfigPath returns the full path to the config file.
func (cm *ConfigManager) ConfigPath() string {
	return filepath.Join(cm.configDir, configFileName)
}

// Load reads the config from disk. Returns default config if file doesn't exist.
func (cm *ConfigManager) Load() (*Config, error) {
	cfg, err := cm.LoadUnchecked()
	if err != nil {
		return nil, err
	}
	if err := cfg.Settings.check(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cm.ConfigPath(), err)
	}
	return cfg, nil
}

// LoadUnchecked reads the config like Load but does not reject unknown
// setting values, so a bad file can still be inspected and repaired.
func (cm *ConfigManager) LoadUnchecked() (*Config, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	data, err := os.ReadFile(cm.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	root, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	root.Standardize()

	var cfg Config
	if err := json.Unmarshal(root.Pack(), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to disk, creating the directory if needed. Any
// comments in an existing file are discarded; use Set to keep them.
func (cm *ConfigManager) Save(cfg *Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return cm.writeLocked(append(data, '\n'))
}

// Set updates a single setting in place, preserving comments and layout of
// the existing file. An empty value removes the key.
func (cm *ConfigManager) Set(key, value string) error {
	if !slices.Contains(SettingKeys, key) {
		return fmt.Errorf("unknown setting %q; available: %s", key, strings.Join(SettingKeys, ", "))
	}
	probe := Settings{}
	probe.set(key, value)
	if err := probe.check(); err != nil {
		return err
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	content, err := os.ReadFile(cm.ConfigPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config: %w", err)
		}
		content = []byte("{}")
	}

	root, err := hujson.Parse(content)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if root.Find("/settings") == nil {
		if err := root.Patch([]byte(`[{"op":"add","path":"/settings","value":{}}]`)); err != nil {
			return fmt.Errorf("creating settings: %w", err)
		}
	}

	ptr := "/settings/" + key
	var patch string
	switch {
	case value == "" && root.Find(ptr) == nil:
		return nil
	case value == "":
		patch = fmt.Sprintf(`[{"op":"remove","path":%q}]`, ptr)
	case root.Find(ptr) != nil:
		patch = fmt.Sprintf(`[{"op":"replace","path":%q,"value":%q}]`, ptr, value)
	default:
		patch = fmt.Sprintf(`[{"op":"add","path":%q,"value":%q}]`, ptr, value)
	}
	if err := root.Patch([]byte(patch)); err != nil {
		return fmt.Errorf("updating %s: %w", key, err)
	}

	root.Format()
	return cm.writeLocked(root.Pack())
}

// writeLocked writes atomically: temp file then rename. Caller holds mu.
func (cm *ConfigManager) writeLocked(data []byte) error {
	if err := os.MkdirAll(cm.configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	tmpPath := cm.ConfigPath() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmpPath, cm.ConfigPath()); err != nil {
		_ = os.Remove(tmpPath) // clean up on failure
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// Get returns a setting by key.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "defaultPlatform":
		return s.DefaultPlatform, nil
	case "defaultScope":
		return s.DefaultScope, nil
	case "defaultModel":
		return s.DefaultModel, nil
	case "defaultColor":
		return s.DefaultColor, nil
	}
	return "", fmt.Errorf("unknown setting %q; available: %s", key, strings.Join(SettingKeys, ", "))
}

func (s *Settings) set(key, value string) {
	switch key {
	case "defaultPlatform":
		s.DefaultPlatform = value
	case "defaultScope":
		s.DefaultScope = value
	case "defaultModel":
		s.DefaultModel = value
	case "defaultColor":
		s.DefaultColor = value
	}
}

// check validates the values that have a closed set. Platform ids are
// checked against the registry by the caller.
func (s Settings) check() error {
	if s.DefaultScope != "" {
		if _, err := ParseScope(s.DefaultScope); err != nil {
			return err
		}
	}
	if s.DefaultModel != "" && !slices.Contains(Models, s.DefaultModel) {
		return fmt.Errorf("unknown model %q; available: %s", s.DefaultModel, strings.Join(Models, ", "))
	}
	if s.DefaultColor != "" && !slices.Contains(Colors, s.DefaultColor) {
		return fmt.Errorf("unknown color %q; available: %s", s.DefaultColor, strings.Join(Colors, ", "))
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{}
}

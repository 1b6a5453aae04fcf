// Package userconfig provides user configuration management for pvlocate.
// Configuration is stored in ~/.pvlocate/config.toml and can be modified
// via the `pvlocate config` command.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tsukumogami/pvlocate/internal/resource"
)

// Config represents user-configurable settings.
type Config struct {
	// Context is the speech context selected from the contexts collection.
	Context string `toml:"context"`

	// Keyword is the wake word selected from the keywords collection.
	Keyword string `toml:"keyword"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Context: resource.DefaultContext,
		Keyword: resource.DefaultKeyword,
	}
}

// Load reads the config file at path.
// Returns default values if the file doesn't exist; keys missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	userCfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return userCfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), userCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in config file: %v", undecoded)
	}

	return userCfg, nil
}

// Save writes the configuration to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Selection returns the named resources the config selects.
func (c *Config) Selection() resource.Selection {
	return resource.Selection{Context: c.Context, Keyword: c.Keyword}
}

// Get returns the value of a config key as a string.
// Returns empty string and false if the key doesn't exist.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "context":
		return c.Context, true
	case "keyword":
		return c.Keyword, true
	default:
		return "", false
	}
}

// Set updates a config value from a string.
// Returns an error if the key doesn't exist or the value is invalid.
func (c *Config) Set(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("invalid value for %s: must not be empty", key)
	}
	if strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("invalid value for %s: must be a resource name, not a path", key)
	}

	switch strings.ToLower(key) {
	case "context":
		c.Context = value
		return nil
	case "keyword":
		c.Keyword = value
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// AvailableKeys returns a list of all configurable keys with descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"context": "Speech context name (default: " + resource.DefaultContext + ")",
		"keyword": "Wake word name (default: " + resource.DefaultKeyword + ")",
	}
}

// SortedKeys returns the configurable keys in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(AvailableKeys()))
	for k := range AvailableKeys() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Git       GitConfig       `json:"git"`
	Workspace WorkspaceConfig `json:"workspace"`
	Triggers  TriggerConfig   `json:"triggers"`
	Filters   FilterConfig    `json:"filters"`
}

// GitConfig holds version-control query options.
type GitConfig struct {
	DefaultBase string `json:"defaultBase"` // Default: "origin/main"
	Backend     string `json:"backend"`     // "cli" or "gogit"; default "cli"
}

// WorkspaceConfig holds workspace layout options.
type WorkspaceConfig struct {
	// Root is the workspace root, relative to the repository root.
	// Empty means the workspace is the repository root itself.
	Root string `json:"root"`
}

// TriggerConfig holds the file names and path prefixes whose modification
// affects the whole workspace. Setting a key to an empty list in the
// config file disables that trigger category; omitting it keeps the
// defaults.
type TriggerConfig struct {
	RootFiles   []string `json:"rootFiles"`
	DirPrefixes []string `json:"dirPrefixes"`
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			DefaultBase: "origin/main",
			Backend:     "cli",
		},
		Triggers: TriggerConfig{
			RootFiles:   []string{"pyproject.toml", "uv.lock"},
			DirPrefixes: []string{".github/"},
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".difftrace.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".difftrace.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".difftrace.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfig represents the global, per-user configuration
type UserConfig struct {
	// Editor overrides $EDITOR for interactive metadata editing
	Editor string `yaml:"editor,omitempty"`

	// AICommand is the command invoked to generate PR descriptions
	AICommand string `yaml:"aiCommand,omitempty"`

	// Quiet suppresses non-error output by default
	Quiet bool `yaml:"quiet,omitempty"`
}

func userConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, "prship", "config.yml"), nil
}

// GetUserConfig reads the user configuration. A missing file is not an
// error; defaults are returned.
func GetUserConfig() (*UserConfig, error) {
	path, err := userConfigPath()
	if err != nil {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &UserConfig{}, nil
	}

	var config UserConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// SaveUserConfig writes the user configuration, creating the config
// directory if needed
func SaveUserConfig(config *UserConfig) error {
	path, err := userConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RepoConfig represents the per-repository configuration
type RepoConfig struct {
	Trunk       *string  `json:"trunk,omitempty"`
	UseGraphite *bool    `json:"useGraphite,omitempty"`
	Draft       *bool    `json:"draft,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	SubmitAI    *bool    `json:"submit.ai,omitempty"`
}

func repoConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".prship_config")
}

// GetRepoConfig reads the repository configuration. A missing config file
// is not an error; defaults are returned.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(repoConfigPath(repoRoot))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(repoConfigPath(repoRoot), configJSON, 0600)
}

// IsInitialized checks whether prship has been initialized in this repo
func IsInitialized(repoRoot string) bool {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false
	}
	return config.Trunk != nil && *config.Trunk != ""
}

// GetTrunk returns the configured trunk branch name, or "main" as default
func GetTrunk(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.Trunk != nil && *config.Trunk != "" {
		return *config.Trunk, nil
	}

	return "main", nil
}

// SetTrunk updates the trunk branch in the config
func SetTrunk(repoRoot string, trunkName string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.Trunk = &trunkName

	return writeRepoConfig(repoRoot, config)
}

// GetUseGraphite returns whether the stack-first Graphite flow is the
// default for this repository. Defaults to false.
func GetUseGraphite(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.UseGraphite != nil {
		return *config.UseGraphite, nil
	}

	return false, nil
}

// SetUseGraphite updates the stack-first default in the config
func SetUseGraphite(repoRoot string, enabled bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.UseGraphite = &enabled

	return writeRepoConfig(repoRoot, config)
}

// GetDraft returns whether pull requests are created as drafts by default
func GetDraft(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.Draft != nil {
		return *config.Draft, nil
	}

	return false, nil
}

// GetDefaultLabels returns the labels applied to every pull request
// submitted from this repository
func GetDefaultLabels(repoRoot string) ([]string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	return config.Labels, nil
}

// GetSubmitAI returns whether AI-generated PR descriptions are enabled,
// or false by default
func GetSubmitAI(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	if config.SubmitAI != nil {
		return *config.SubmitAI, nil
	}

	return false, nil
}

// SetSubmitAI updates the submit.ai configuration
func SetSubmitAI(repoRoot string, enabled bool) error {
	if _, err := os.Stat(repoRoot); err != nil {
		return fmt.Errorf("repository root does not exist: %w", err)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}

	config.SubmitAI = &enabled

	return writeRepoConfig(repoRoot, config)
}

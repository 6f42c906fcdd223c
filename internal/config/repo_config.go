// Package config provides repository configuration management,
// including reading and writing stashit configuration files.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stashit.dev/stashit/internal/git"
)

// configFileName is the repo config file, stored in the common git directory
const configFileName = ".stashit_config"

// KeyConfirmDrop is the config key controlling the drop confirmation prompt
const KeyConfirmDrop = "stash.confirmDrop"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	ConfirmDrop *bool `json:"stash.confirmDrop,omitempty"`
}

// configPath resolves the config file through the common git directory so
// every linked worktree shares one config
func configPath(repoRoot string) (string, error) {
	gitDir, err := git.GetCommonDir(context.Background(), repoRoot)
	if err != nil {
		return "", fmt.Errorf("failed to locate git directory: %w", err)
	}
	return filepath.Join(gitDir, configFileName), nil
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	path, err := configPath(repoRoot)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Config doesn't exist - return default
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// writeRepoConfig persists config to the repository
func writeRepoConfig(repoRoot string, config *RepoConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path, err := configPath(repoRoot)
	if err != nil {
		return err
	}
	return os.WriteFile(path, configJSON, 0600)
}

// GetConfirmDrop returns the configured confirmation setting for drop, or nil
// when it is unset so the command default applies
func GetConfirmDrop(repoRoot string) (*bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}
	return config.ConfirmDrop, nil
}

// SetConfirmDrop updates the drop confirmation setting in the config
func SetConfirmDrop(repoRoot string, enabled bool) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}

	config.ConfirmDrop = &enabled
	return writeRepoConfig(repoRoot, config)
}

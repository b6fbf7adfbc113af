// Copyright 2026 The Discordhook Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Global holds the contents of the global config file.
type Global struct {
	// WebhookURL is the fallback webhook endpoint, used when neither the
	// command line nor the environment provides one.
	WebhookURL string `yaml:"webhook_url,omitempty"`
}

// GlobalConfigDir returns the directory for global discordhook configuration.
// It uses $XDG_CONFIG_HOME/discordhook if set, otherwise ~/.config/discordhook.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "discordhook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "discordhook")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Global and nil error.
func LoadGlobal() (*Global, error) {
	path := GlobalConfigPath()
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Global{}, nil
		}
		return nil, err
	}

	var cfg Global
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"os"
	"path/filepath"
)

// Environment variable overriding the config file location
const EnvConfigPath = "HANOI_CONFIG"

// GetConfigPath returns the configuration file path. It first checks the
// HANOI_CONFIG environment variable, then falls back to ~/.go-hanoi/config.
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(EnvConfigPath); configPath != "" {
		return configPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".go-hanoi", "config"), nil
}

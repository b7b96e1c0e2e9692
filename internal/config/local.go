package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfig holds configuration for local daemon mode
type LocalConfig struct {
	Daemon DaemonConfig `yaml:"daemon"`
	Tables TablesConfig `yaml:"tables"`
}

// DaemonConfig holds daemon server settings
type DaemonConfig struct {
	Port     int    `yaml:"port"`
	Bind     string `yaml:"bind"`
	LogLevel string `yaml:"log_level"`

	// RatePerSecond limits requests per client; 0 disables the limiter.
	RatePerSecond int `yaml:"rate_per_second"`
}

// TablesConfig holds benchmark table settings
type TablesConfig struct {
	// Dir overrides the embedded band tables with YAML files from a
	// directory, for table releases that outpace binary releases.
	Dir string `yaml:"dir,omitempty"`
}

// AlpsbenchDir returns the path to ~/.alpsbench
func AlpsbenchDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".alpsbench"), nil
}

// EnsureAlpsbenchDir creates ~/.alpsbench and subdirectories if they don't exist
func EnsureAlpsbenchDir() (string, error) {
	dir, err := AlpsbenchDir()
	if err != nil {
		return "", err
	}

	subdirs := []string{
		"",
		"logs",
		"tables",
	}

	for _, subdir := range subdirs {
		path := filepath.Join(dir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("create dir %s: %w", path, err)
		}
	}

	return dir, nil
}

// DefaultLocalConfig returns sensible defaults for local mode
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{
		Daemon: DaemonConfig{
			Port:          7641,
			Bind:          "127.0.0.1",
			LogLevel:      "info",
			RatePerSecond: 50,
		},
	}
}

// LoadLocalConfig loads configuration from ~/.alpsbench/config.yaml
func LoadLocalConfig() (*LocalConfig, error) {
	dir, err := AlpsbenchDir()
	if err != nil {
		return nil, err
	}
	return LoadLocalConfigFrom(filepath.Join(dir, "config.yaml"))
}

// LoadLocalConfigFrom loads configuration from an explicit path, falling
// back to defaults when the file does not exist.
func LoadLocalConfigFrom(configPath string) (*LocalConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultLocalConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultLocalConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// SaveLocalConfig saves configuration to ~/.alpsbench/config.yaml
func SaveLocalConfig(cfg *LocalConfig) error {
	dir, err := EnsureAlpsbenchDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(dir, "config.yaml")

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

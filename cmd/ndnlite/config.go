package main

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the on-disk configuration for the ndnlite CLI: where the key
// registry and content cache live, and the producer identity new keys are
// minted under.
type Config struct {
	KeystorePath    string `yaml:"keystore_path"`
	ObjectStorePath string `yaml:"objectstore_path"`
	Identity        string `yaml:"identity"`
	LogLevel        string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no config file is
// given on the command line.
func DefaultConfig() *Config {
	return &Config{
		KeystorePath:    "ndnlite-keys.db",
		ObjectStorePath: "ndnlite-objects",
		Identity:        "/local/ndnlite",
		LogLevel:        "INFO",
	}
}

// ReadConfig loads and merges a YAML config file over DefaultConfig.
func ReadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package config loads the client configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything needed to reach and authenticate with the
// registrar.
type Config struct {
	INN    string `yaml:"inn"`
	APIURL string `yaml:"api_url"`
	Group  string `yaml:"group"`

	SignKeyFile    string `yaml:"sign_key_file"`
	ClientCertFile string `yaml:"client_cert_file"`
	ClientKeyFile  string `yaml:"client_key_file"`
	CACertFile     string `yaml:"ca_cert_file"`

	TimeoutSeconds int  `yaml:"timeout_seconds"`
	Verbose        bool `yaml:"verbose"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.INN == "" {
		return nil, fmt.Errorf("config: inn is required")
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("config: api_url is required")
	}
	if cfg.SignKeyFile == "" {
		return nil, fmt.Errorf("config: sign_key_file is required")
	}
	return &cfg, nil
}

// Timeout returns the configured request timeout, or zero to let the
// transport default apply.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

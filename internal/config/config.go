package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration. Values come from an optional
// YAML file with environment-variable overrides on top.
type Config struct {
	Port             string `yaml:"port"`
	ArchivePath      string `yaml:"archive_path"`
	RestrictionsPath string `yaml:"restrictions_path"`
	JWTSecret        string `yaml:"jwt_secret"`
	Network          string `yaml:"network"` // default network code, 2 alphanumerics
}

var networkCode = regexp.MustCompile(`^[A-Za-z0-9]{2}$`)

// Load builds the configuration from CONFIG_PATH (when set) and the
// environment.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("ARCHIVE_PATH"); v != "" {
		c.ArchivePath = v
	}
	if v := os.Getenv("RESTRICTIONS_PATH"); v != "" {
		c.RestrictionsPath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("NETWORK"); v != "" {
		c.Network = v
	}
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = ":8080"
	}
	if c.ArchivePath == "" {
		c.ArchivePath = "./data/archive.db"
	}
	if c.Network == "" {
		c.Network = "XX"
	}
}

func (c *Config) validate() error {
	if !networkCode.MatchString(c.Network) {
		return fmt.Errorf("network code %q must be exactly 2 alphanumeric characters", c.Network)
	}
	return nil
}

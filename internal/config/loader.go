package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "missionconfigd.yaml"

const (
	DefaultServerPort  = 1234
	DefaultMaxMissions = 6
)

// Config holds the runtime settings of the mission config service. The
// record capacity is explicit configuration rather than a hard-coded
// constant.
type Config struct {
	ServerPort  int `yaml:"server_port"`
	MaxMissions int `yaml:"max_missions"`
}

func Default() *Config {
	return &Config{
		ServerPort:  DefaultServerPort,
		MaxMissions: DefaultMaxMissions,
	}
}

// LoadConfig reads the config file at path. An empty path falls back to
// DefaultConfigPath if that file exists, and to built-in defaults otherwise.
// Settings omitted from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err != nil {
			return Default(), nil
		}
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid server port: %d", c.ServerPort)
	}
	if c.MaxMissions < 1 {
		return fmt.Errorf("invalid mission capacity: %d", c.MaxMissions)
	}
	return nil
}

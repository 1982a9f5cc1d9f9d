package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

type Config struct {
	DataDir string        `yaml:"data_dir" json:"data_dir"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Server  ServerConfig  `yaml:"server" json:"server"`
	Sync    SyncConfig    `yaml:"sync" json:"sync"`
	GenAI   GenAIConfig   `yaml:"genai" json:"genai"`
}

type StorageConfig struct {
	// Driver selects the snapshot store: "file" or "sqlite".
	Driver string `yaml:"driver" json:"driver"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type SyncConfig struct {
	Enabled            bool `yaml:"enabled" json:"enabled"`
	PushTimeoutSeconds int  `yaml:"push_timeout_seconds" json:"push_timeout_seconds"`
}

type GenAIConfig struct {
	Endpoint       string `yaml:"endpoint" json:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

func Default() *Config {
	return &Config{
		DataDir: "data",
		Storage: StorageConfig{Driver: DriverFile},
		Server:  ServerConfig{Addr: ":8080"},
		Sync:    SyncConfig{Enabled: false, PushTimeoutSeconds: 15},
		GenAI:   GenAIConfig{TimeoutSeconds: 30},
	}
}

// Load reads the YAML config at path and applies environment overrides.
// A missing file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	return nil
}

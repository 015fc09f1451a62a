// Package config loads application configuration from an optional YAML file
// and environment variables. Environment variables win over the file, which
// wins over built-in defaults.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"pulseboard/internal/errors"
)

// Config represents the complete application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds listener settings for the two HTTP surfaces.
type ServerConfig struct {
	UIPort  string `yaml:"ui_port"`
	APIPort string `yaml:"api_port"`
}

// DataConfig holds mock dataset settings.
type DataConfig struct {
	RecordCount int   `yaml:"record_count"`
	Seed        int64 `yaml:"seed"` // 0 derives a seed from the clock
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// SimulatedLatency is the cosmetic delay applied when the grouping
	// dimension changes, mimicking an API round trip. It carries no
	// retry or cancellation semantics.
	SimulatedLatency time.Duration `yaml:"simulated_latency"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration, layering PULSEBOARD_CONFIG_PATH (YAML, optional)
// and PULSEBOARD_* environment variables over defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			UIPort:  "8080",
			APIPort: "8081",
		},
		Data: DataConfig{
			RecordCount: 220,
			Seed:        0,
		},
		UI: UIConfig{
			SimulatedLatency: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("PULSEBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if port := os.Getenv("PULSEBOARD_UI_PORT"); port != "" {
		cfg.Server.UIPort = port
	}
	if port := os.Getenv("PULSEBOARD_API_PORT"); port != "" {
		cfg.Server.APIPort = port
	}
	if countStr := os.Getenv("PULSEBOARD_RECORD_COUNT"); countStr != "" {
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			return nil, errors.ConfigInvalid("PULSEBOARD_RECORD_COUNT must be a positive integer")
		}
		cfg.Data.RecordCount = count
	}
	if seedStr := os.Getenv("PULSEBOARD_SEED"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("PULSEBOARD_SEED must be an integer")
		}
		cfg.Data.Seed = seed
	}
	if latencyStr := os.Getenv("PULSEBOARD_SIMULATED_LATENCY"); latencyStr != "" {
		latency, err := time.ParseDuration(latencyStr)
		if err != nil || latency < 0 {
			return nil, errors.ConfigInvalid("PULSEBOARD_SIMULATED_LATENCY must be a non-negative duration")
		}
		cfg.UI.SimulatedLatency = latency
	}
	if level := os.Getenv("PULSEBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

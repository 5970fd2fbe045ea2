// Package config loads the service configuration from a JSON file,
// falling back to defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the application configuration.
type Config struct {
	Server ServerConfig `json:"server"`
	Sample SampleConfig `json:"sample"`
	Cache  CacheConfig  `json:"cache"`
	Log    LogConfig    `json:"log"`
}

// ServerConfig configures the HTTP UI server.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// SampleConfig configures sampling defaults for the UI.
type SampleConfig struct {
	// DefaultPercent pre-fills the percentage field. The sampler
	// clamps whatever the UI submits, so this is presentation only.
	DefaultPercent int `json:"default_percent"`
	// MaxUploadBytes bounds multipart uploads.
	MaxUploadBytes int64 `json:"max_upload_bytes"`
}

// CacheConfig configures the load cache.
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
	MaxSize int           `json:"max_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `json:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Sample: SampleConfig{
			DefaultPercent: 5,
			MaxUploadBytes: 64 << 20,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
			MaxSize: 64,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a file, over the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigOrDefault tries the COVIDSAMPLE_CONFIG environment variable
// and a few well-known paths, then falls back to defaults.
func LoadConfigOrDefault() *Config {
	if envPath := os.Getenv("COVIDSAMPLE_CONFIG"); envPath != "" {
		if config, err := LoadConfig(envPath); err == nil {
			return config
		}
	}

	possiblePaths := []string{
		"config.json",
		"./config/config.json",
		"/etc/covidsample/config.json",
	}
	for _, path := range possiblePaths {
		if absPath, err := filepath.Abs(path); err == nil {
			if config, err := LoadConfig(absPath); err == nil {
				return config
			}
		}
	}

	return DefaultConfig()
}

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", config.Server.Port)
	}
	if config.Sample.DefaultPercent < 1 || config.Sample.DefaultPercent > 100 {
		return fmt.Errorf("invalid default percent: %d", config.Sample.DefaultPercent)
	}
	if config.Sample.MaxUploadBytes < 1 {
		return fmt.Errorf("max upload bytes must be positive")
	}
	if config.Cache.Enabled && config.Cache.MaxSize < 1 {
		return fmt.Errorf("cache max size must be positive when the cache is enabled")
	}
	return nil
}

// GetListenAddress returns the host:port listen address.
func (c *Config) GetListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Package config loads the application configuration: defaults, then an
// optional YAML file, then environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	NCBI    NCBIConfig    `yaml:"ncbi"`
	Plot    PlotConfig    `yaml:"plot"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port      int `yaml:"port"`
	CacheSize int `yaml:"cache_size"`
}

type NCBIConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// PlotConfig holds the default window parameters used when a tool or form
// submission leaves them unset.
type PlotConfig struct {
	WindowSize int     `yaml:"window_size"`
	EdgeWeight float64 `yaml:"edge_weight"`
	Model      string  `yaml:"model"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) NCBITimeout() time.Duration {
	return time.Duration(c.NCBI.TimeoutMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      8080,
			CacheSize: 256,
		},
		NCBI: NCBIConfig{
			BaseURL:   "https://www.ncbi.nlm.nih.gov",
			TimeoutMs: 15000,
		},
		Plot: PlotConfig{
			WindowSize: 7,
			EdgeWeight: 100,
			Model:      "linear",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HYDROPLOT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("HYDROPLOT_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.CacheSize = n
		}
	}
	if v := os.Getenv("HYDROPLOT_NCBI_URL"); v != "" {
		cfg.NCBI.BaseURL = v
	}
	if v := os.Getenv("HYDROPLOT_NCBI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.NCBI.TimeoutMs = n
		}
	}
	if v := os.Getenv("HYDROPLOT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HYDROPLOT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

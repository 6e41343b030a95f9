package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort  string `yaml:"http_port"`
	LogFormat string `yaml:"log_format"` // "text" or "json"
	LogLevel  string `yaml:"log_level"`

	// MaxCompoundIterations bounds the work a single compound request may ask for.
	MaxCompoundIterations uint `yaml:"max_compound_iterations"`
}

// Load reads the environment, then overlays CONFIG_FILE when it is set.
func Load() (*Config, error) {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8083" // sensible default for local dev
	}
	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	maxIter := uint(10000)
	if v := os.Getenv("MAX_COMPOUND_ITERATIONS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("MAX_COMPOUND_ITERATIONS: %w", err)
		}
		maxIter = uint(n)
	}

	cfg := &Config{
		HTTPPort:              port,
		LogFormat:             logFormat,
		LogLevel:              logLevel,
		MaxCompoundIterations: maxIter,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

// LoadFromFile merges the non-zero values of a YAML file into c.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if fc.HTTPPort != "" {
		c.HTTPPort = fc.HTTPPort
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.MaxCompoundIterations != 0 {
		c.MaxCompoundIterations = fc.MaxCompoundIterations
	}
	return c.Validate()
}

// Validate checks field values and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.MaxCompoundIterations == 0 {
		return fmt.Errorf("max compound iterations must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

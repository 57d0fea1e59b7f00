// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents the application configuration. All fields are optional;
// missing values use defaults or must be provided via CLI flags or
// environment variables.
type Config struct {
	// Server
	Port           int      `json:"port,omitempty"`            // HTTP listen port
	AllowedOrigins []string `json:"allowed_origins,omitempty"` // CORS origins; empty allows all

	// AI backend
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Model   string `json:"model,omitempty"`   // Model override
	Timeout int    `json:"timeout,omitempty"` // Per-request AI timeout in seconds

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	OutputDir   string `json:"output_dir,omitempty"`   // Directory for generated artifacts
}

// Defaults applied when neither the file, environment nor flags set a value.
const (
	DefaultPort      = 3001
	DefaultOutputDir = "output"
	DefaultTimeout   = 60 * time.Second
)

// Load reads configuration from a JSON file. A missing file is not an
// error: environment variables and flags can carry everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnv overlays environment variables on file values. Environment wins
// so deployments can override a checked-in config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Timeout <= 0 {
		c.Timeout = int(DefaultTimeout / time.Second)
	}
}

// AITimeout returns the per-request AI timeout as a duration.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Validate checks that the configuration can actually run the server.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY (or api_key) is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL (or database_url) is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}

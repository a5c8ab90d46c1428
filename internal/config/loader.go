package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults applied by ApplyDefaults when the corresponding field is unset.
const (
	DefaultAddr               = ":8080"
	DefaultLogLevel           = "info"
	DefaultMaxBodyBytes int64 = 1 << 20
	DefaultWaitTimeoutSec     = 30
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr               string   `json:"addr" yaml:"addr" toml:"addr" env:"SEATD_ADDR"`
	Tables             []int    `json:"tables" yaml:"tables" toml:"tables" env:"SEATD_TABLES" envSeparator:","`
	FloorPlan          string   `json:"floor_plan" yaml:"floor_plan" toml:"floor_plan" env:"SEATD_FLOOR_PLAN"`
	LogLevel           string   `json:"log_level" yaml:"log_level" toml:"log_level" env:"SEATD_LOG_LEVEL"`
	LogPretty          bool     `json:"log_pretty" yaml:"log_pretty" toml:"log_pretty" env:"SEATD_LOG_PRETTY"`
	MaxBodyBytes       int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" env:"SEATD_MAX_BODY_BYTES"`
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled" env:"SEATD_CORS_ENABLED"`
	CORSOrigins        []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" env:"SEATD_CORS_ORIGINS" envSeparator:","`
	WaitTimeoutSeconds int      `json:"wait_timeout_seconds" yaml:"wait_timeout_seconds" toml:"wait_timeout_seconds" env:"SEATD_WAIT_TIMEOUT_SECONDS"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. With no
// arguments it loads ./.env when present.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		paths = []string{".env"}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// ParseEnv overlays SEATD_* environment variables onto cfg. Unset variables
// leave the existing values untouched.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyDefaults fills unset fields with package defaults.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.WaitTimeoutSeconds <= 0 {
		c.WaitTimeoutSeconds = DefaultWaitTimeoutSec
	}
}

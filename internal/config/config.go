package config

// Configuration loading and validation for stockdeck

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tturner/stockdeck/internal/errors"
)

// DefaultBaseURL points at a locally running catalog service.
const DefaultBaseURL = "http://localhost:8080/api/items"

// DefaultLowStockThreshold is used whenever the threshold input is
// absent or invalid.
const DefaultLowStockThreshold = 5

// APIConfig locates the catalog service.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// UIConfig holds console view defaults.
type UIConfig struct {
	LowStockThreshold int `yaml:"low_stock_threshold"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the root stockdeck configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 10,
		},
		UI: UIConfig{
			LowStockThreshold: DefaultLowStockThreshold,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and validates a config file. An empty path returns the
// defaults; a missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapConfigError(
				fmt.Errorf("config file not found: %s", path),
				path,
			)
		}
		return nil, errors.WrapConfigError(
			fmt.Errorf("read config file: %w", err),
			path,
		)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 10
	}
	if cfg.UI.LowStockThreshold == 0 {
		cfg.UI.LowStockThreshold = DefaultLowStockThreshold
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks cross-field constraints.
func Validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", cfg.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must be >= 0, got %d", cfg.API.TimeoutSeconds)
	}
	if cfg.UI.LowStockThreshold < 0 {
		return fmt.Errorf("ui.low_stock_threshold must be >= 0, got %d", cfg.UI.LowStockThreshold)
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %q", cfg.Logging.Level)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mercerclayton/banking-system/internal/cardnumber"
)

const envPrefix = "BANK_"

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Card     CardConfig     `koanf:"card"`
	Operator OperatorConfig `koanf:"operator"`
	Log      LogConfig      `koanf:"log"`
}

type DatabaseConfig struct {
	Path          string `koanf:"path"`
	BusyTimeoutMs int    `koanf:"busy_timeout_ms"`
}

type CardConfig struct {
	IssuerPrefix        string `koanf:"issuer_prefix"`
	MaxGenerateAttempts int    `koanf:"max_generate_attempts"`
}

type OperatorConfig struct {
	Workers   int `koanf:"workers"`
	QueueSize int `koanf:"queue_size"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

func defaults() map[string]interface{} {
	// The card database lives in the working directory unless configured otherwise.
	return map[string]interface{}{
		"database.path":              "card.s3db",
		"database.busy_timeout_ms":   5000,
		"card.issuer_prefix":         cardnumber.DefaultIssuerPrefix,
		"card.max_generate_attempts": 10,
		"operator.workers":           1,
		"operator.queue_size":        100,
		"log.level":                  "warn",
		"log.file":                   "",
	}
}

// ProcessEnvironmentVariables loads defaults overridden by BANK_* environment variables.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load("")
}

// Load layers defaults, the optional YAML file at path, and BANK_* environment variables,
// in that order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps BANK_DATABASE_BUSY_TIMEOUT_MS to database.busy_timeout_ms.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path must not be empty"))
	}
	if c.Database.BusyTimeoutMs < 0 {
		errs = append(errs, errors.New("database.busy_timeout_ms must not be negative"))
	}
	if err := cardnumber.ValidateIssuerPrefix(c.Card.IssuerPrefix); err != nil {
		errs = append(errs, err)
	}
	if c.Card.MaxGenerateAttempts < 1 {
		errs = append(errs, errors.New("card.max_generate_attempts must be at least 1"))
	}
	if c.Operator.Workers < 1 {
		errs = append(errs, errors.New("operator.workers must be at least 1"))
	}
	if c.Operator.QueueSize < 1 {
		errs = append(errs, errors.New("operator.queue_size must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

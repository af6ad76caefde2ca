package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = "8080"
	DefaultFixtureTimeout = 10 * time.Second
	DefaultAppName        = "dino-infographic"
)

type Config struct {
	Port string `yaml:"port"`

	// Fuente del fixture, en orden de prioridad: DBDSN, FixtureURL,
	// FixturePath y, si no hay ninguna, el dino.json embebido.
	DBDSN          string        `yaml:"db_dsn"`
	FixtureURL     string        `yaml:"fixture_url"`
	FixturePath    string        `yaml:"fixture_path"`
	FixtureTimeout time.Duration `yaml:"fixture_timeout"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

func Default() *Config {
	return &Config{
		Port:           DefaultPort,
		FixtureTimeout: DefaultFixtureTimeout,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    DefaultAppName,
		},
	}
}

// Load lee CONFIG_FILE (opcional, YAML) y después pisa con env:
// PORT, DB_DSN, FIXTURE_URL, FIXTURE_PATH, FIXTURE_TIMEOUT,
// LOG_LEVEL, LOG_FORMAT, APP_NAME.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	setString(&cfg.Port, getenv("PORT"))
	setString(&cfg.DBDSN, getenv("DB_DSN"))
	setString(&cfg.FixtureURL, getenv("FIXTURE_URL"))
	setString(&cfg.FixturePath, getenv("FIXTURE_PATH"))
	setString(&cfg.Log.Level, getenv("LOG_LEVEL"))
	setString(&cfg.Log.Format, getenv("LOG_FORMAT"))
	setString(&cfg.Log.App, getenv("APP_NAME"))

	if v := strings.TrimSpace(getenv("FIXTURE_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: FIXTURE_TIMEOUT: %w", err)
		}
		cfg.FixtureTimeout = d
	}
	if cfg.FixtureTimeout <= 0 {
		cfg.FixtureTimeout = DefaultFixtureTimeout
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Addr es la dirección de escucha para http.Server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Package config reads process configuration from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Prefix namespaces every variable.
const Prefix = "DFASIM_"

// Config holds the settings shared by every command.
// Command line flags take precedence over these values.
type Config struct {
	Source    string `env:"SOURCE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Trace     bool   `env:"TRACE"`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`

	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig configures the redis definition registry.
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Prefix   string `env:"PREFIX" envDefault:"dfasim:definition:"`
}

// Load parses the environment into a Config.
//
// With no arguments the default .env file is read if present. Explicit files
// must exist; values already in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("failed to load env files: %w", err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is read before environment overrides are applied. A missing
// file is not an error.
var DotEnvFile = ".env"

// loadFromEnv overrides configuration with environment variables named by
// the env struct tags. Values from DotEnvFile never replace variables that
// are already set in the process environment.
func loadFromEnv(config *Config) error {
	if DotEnvFile != "" {
		if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", DotEnvFile, err)
		}
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

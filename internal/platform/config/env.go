// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by clidocs processes.
const EnvPrefix = "CLIDOCS_"

// ParseEnv loads configuration from environment variables. Struct tags name the
// variable without EnvPrefix, so `env:"LOG_LEVEL"` reads CLIDOCS_LOG_LEVEL.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable the stablematch commands read.
const EnvPrefix = "STABLEMATCH_"

// ParseEnv loads configuration from environment variables into target.
// Struct tags name the variable without EnvPrefix: `env:"SEED"` reads
// STABLEMATCH_SEED.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env (%s*): %w", EnvPrefix, err)
	}
	return nil
}

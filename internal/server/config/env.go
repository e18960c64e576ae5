package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// lookupEnv is a seam for tests. Nil means the process environment.
var lookupEnv map[string]string

// parseEnv overlays variables that are set in the environment. Unset
// variables keep the value from earlier layers; a missing secret is an
// error.
func parseEnv(config *Config) error {
	opts := env.Options{}
	if lookupEnv != nil {
		opts.Environment = lookupEnv
	}

	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("env config: %w", err)
	}
	return nil
}

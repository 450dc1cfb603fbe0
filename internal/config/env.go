package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the defaults the CLI reads from the environment. Explicit flags
// take precedence over these values.
type Env struct {
	BagFile      string `env:"CUBECOUNT_BAG_FILE"`
	Policy       string `env:"CUBECOUNT_POLICY"       envDefault:"max"`
	StrictColors bool   `env:"CUBECOUNT_STRICT_COLORS"`
	Output       string `env:"CUBECOUNT_OUTPUT"       envDefault:"text"`
	LogFormat    string `env:"CUBECOUNT_LOG_FORMAT"   envDefault:"text"`
	LogLevel     string `env:"CUBECOUNT_LOG_LEVEL"    envDefault:"info"`
}

// ParseEnv loads the CLI defaults from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

package app

import (
	"errors"
	"fmt"

	"github.com/vk/cubecount/internal/bag"
	"github.com/vk/cubecount/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // puzzle input
	BagPath   string // optional HCL bag file

	Policy       bag.Policy
	StrictColors bool
	Output       report.Format

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	policy, err := bag.ParsePolicy(string(cfg.Policy))
	if err != nil {
		return nil, err
	}
	cfg.Policy = policy

	output, err := report.ParseFormat(string(cfg.Output))
	if err != nil {
		return nil, err
	}
	cfg.Output = output

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.arcalot.io/log/v2"
)

// EnvGlue is the process-wide setting holding a comma-separated list of code paths.
const EnvGlue = "STEPFLOW_GLUE"

type envOverrides struct {
	Glue     []string `env:"STEPFLOW_GLUE" envSeparator:","`
	Locale   string   `env:"STEPFLOW_LOCALE"`
	LogLevel string   `env:"STEPFLOW_LOG_LEVEL"`
}

// FromEnv reads the process environment once and applies the settings found there to the configuration. A set
// STEPFLOW_GLUE replaces the configured code paths.
func FromEnv(cfg *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("failed to parse environment (%w)", err)
	}
	if glue := splitGlue(overrides.Glue); len(glue) > 0 {
		cfg.Glue = glue
	}
	if overrides.Locale != "" {
		cfg.Locale = overrides.Locale
	}
	if overrides.LogLevel != "" {
		level := log.Level(strings.ToLower(overrides.LogLevel))
		switch level {
		case log.LevelDebug, log.LevelInfo, log.LevelWarning, log.LevelError:
			cfg.Log.Level = level
		default:
			return fmt.Errorf("invalid log level in STEPFLOW_LOG_LEVEL: %s", overrides.LogLevel)
		}
	}
	return nil
}

func splitGlue(paths []string) []string {
	var result []string
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path != "" {
			result = append(result, path)
		}
	}
	return result
}

package config_test

import (
	"testing"

	"go.arcalot.io/assert"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/config"
)

func TestFromEnvGlue(t *testing.T) {
	t.Setenv(config.EnvGlue, "/a, /b,,/c")
	cfg := config.Default()
	cfg.Glue = []string{"/configured"}
	assert.NoError(t, config.FromEnv(cfg))
	assert.Equals(t, cfg.Glue, []string{"/a", "/b", "/c"})
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv(config.EnvGlue, "")
	cfg := config.Default()
	cfg.Glue = []string{"/configured"}
	assert.NoError(t, config.FromEnv(cfg))
	assert.Equals(t, cfg.Glue, []string{"/configured"})
}

func TestFromEnvLogLevel(t *testing.T) {
	t.Setenv("STEPFLOW_LOG_LEVEL", "DEBUG")
	t.Setenv("STEPFLOW_LOCALE", "fr")
	cfg := config.Default()
	assert.NoError(t, config.FromEnv(cfg))
	assert.Equals(t, cfg.Log.Level, log.LevelDebug)
	assert.Equals(t, cfg.Locale, "fr")

	t.Setenv("STEPFLOW_LOG_LEVEL", "chatty")
	assert.Error(t, config.FromEnv(cfg))
}

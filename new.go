// Package stepflow runs behavior-specification scenarios against pluggable execution backends. A Runtime prepares
// a World for each scenario, dispatches the steps to the first backend that can run them and collects the steps
// no backend can run, for which the backends then suggest code snippets.
package stepflow

import (
	"fmt"
	"sync"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/config"
	"golang.org/x/text/language"
)

// New creates a new runtime with the provided configuration. The passed backend registry is responsible for
// providing the backends, in the order they are asked to run steps.
func New(
	config *config.Config,
	backendRegistry BackendRegistry,
) (*Runtime, error) {
	if config == nil {
		return nil, fmt.Errorf("bug: nil configuration passed to New")
	}
	if backendRegistry == nil {
		return nil, ErrNoBackends
	}
	backends := backendRegistry.List()
	if len(backends) == 0 {
		return nil, ErrNoBackends
	}
	logger := log.New(config.Log).WithLabel("source", "runtime")
	logger.Debugf("Runtime created with backends %v and code paths %v.", backendRegistry.Kinds(), config.Glue)
	return &Runtime{
		logger:    logger,
		config:    config,
		codePaths: append([]string(nil), config.Glue...),
		backends:  backends,
		lock:      &sync.Mutex{},
	}, nil
}

// NewDefault creates a runtime with the built-in backends. The STEPFLOW_GLUE environment variable, if set,
// replaces the configured code paths.
func NewDefault(cfg *config.Config) (*Runtime, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}
	backendRegistry, err := NewDefaultBackendRegistry(log.New(cfg.Log), cfg.Backends)
	if err != nil {
		return nil, err
	}
	return New(cfg, backendRegistry)
}

// Locale returns the configured locale of the runtime.
func (r *Runtime) Locale() (language.Tag, error) {
	return ParseLocale(r.config.Locale)
}

// ParseLocale parses a BCP 47 language tag. An empty string yields English.
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %s (%w)", locale, err)
	}
	return tag, nil
}

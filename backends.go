package stepflow

import (
	"fmt"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/gofunc"
	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/internal/backend/registry"
	"go.flow.arcalot.io/stepflow/internal/backend/yamlglue"
)

// Backend is a pluggable execution environment running the steps of a scenario.
type Backend = backend.Backend

// BackendFactory creates a backend for a runtime.
type BackendFactory = backend.Factory

// BackendRegistry holds the backends of a runtime in registration order.
type BackendRegistry = backend.Registry

// NewBackendRegistry creates a registry from the given backends. The backends are asked to run a step in the order
// they are passed.
func NewBackendRegistry(backends ...Backend) (BackendRegistry, error) {
	return registry.New(backends...)
}

// DefaultBackendFactories returns the factories of the built-in backends in registration order: Go functions
// registered with the gofunc package, then YAML expression files resolved relative to rootDir.
func DefaultBackendFactories(rootDir string) []BackendFactory {
	return []BackendFactory{
		gofunc.NewFactory(gofunc.Default),
		yamlglue.NewFactory(rootDir),
	}
}

// NewDefaultBackendRegistry creates a registry with the built-in backends. If enabled is not empty, only the
// backends of the listed kinds are created.
func NewDefaultBackendRegistry(logger log.Logger, enabled []string) (BackendRegistry, error) {
	backendRegistry, err := registry.NewFromFactories(logger, enabled, DefaultBackendFactories(".")...)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend registry (%w)", err)
	}
	return backendRegistry, nil
}

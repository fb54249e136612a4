// Package registry provides the backend registry, joining the backends of a runtime together.
package registry

import (
	"fmt"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/internal/backend"
)

// New creates a new backend registry from the specified backends. The order of the backends is kept, it decides
// which backend runs a step when more than one can.
func New(backends ...backend.Backend) (backend.Registry, error) {
	kinds := make(map[string]struct{}, len(backends))
	for _, b := range backends {
		if b == nil {
			return nil, fmt.Errorf("bug: nil backend passed to the backend registry")
		}
		kind := b.Kind()
		if _, ok := kinds[kind]; ok {
			return nil, &ErrDuplicateBackendKind{
				kind,
			}
		}
		kinds[kind] = struct{}{}
	}
	return &backendRegistry{
		backends: append([]backend.Backend(nil), backends...),
	}, nil
}

// NewFromFactories creates a registry with one backend from each factory whose kind is enabled. An empty enabled
// list enables all factories. The factory order is kept, enabled kinds without a factory result in an
// ErrBackendNotFound.
func NewFromFactories(logger log.Logger, enabled []string, factories ...backend.Factory) (backend.Registry, error) {
	available := make([]string, len(factories))
	for i, factory := range factories {
		available[i] = factory.Kind()
	}
	enabledSet := make(map[string]struct{}, len(enabled))
	for _, kind := range enabled {
		found := false
		for _, factoryKind := range available {
			if factoryKind == kind {
				found = true
				break
			}
		}
		if !found {
			return nil, &backend.ErrBackendNotFound{
				Kind:       kind,
				ValidKinds: available,
			}
		}
		enabledSet[kind] = struct{}{}
	}

	var backends []backend.Backend
	for _, factory := range factories {
		if len(enabledSet) > 0 {
			if _, ok := enabledSet[factory.Kind()]; !ok {
				logger.Debugf("Backend %s is not enabled, skipping.", factory.Kind())
				continue
			}
		}
		b, err := factory.Create(logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s backend (%w)", factory.Kind(), err)
		}
		backends = append(backends, b)
	}
	return New(backends...)
}

type backendRegistry struct {
	backends []backend.Backend
}

func (r backendRegistry) List() []backend.Backend {
	return append([]backend.Backend(nil), r.backends...)
}

func (r backendRegistry) Kinds() []string {
	kinds := make([]string, len(r.backends))
	for i, b := range r.backends {
		kinds[i] = b.Kind()
	}
	return kinds
}

func (r backendRegistry) GetByKind(kind string) (backend.Backend, error) {
	for _, b := range r.backends {
		if b.Kind() == kind {
			return b, nil
		}
	}
	return nil, &backend.ErrBackendNotFound{
		Kind:       kind,
		ValidKinds: r.Kinds(),
	}
}

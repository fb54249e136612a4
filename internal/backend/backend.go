package backend

import (
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
)

// Backend is a pluggable execution environment. The runtime shares a single set of backends between all scenarios,
// the backend keeps the per-scenario bindings between LoadDefinitions and DisposeScenario.
type Backend interface {
	// Kind returns the identifier that uniquely identifies this backend.
	// e.g. "go"
	Kind() string

	// LoadDefinitions binds the step definitions and hooks visible under the given code paths and matching the
	// scenario tags. It is called once at the start of each scenario; the code path order determines the
	// precedence of the definitions.
	LoadDefinitions(codePaths []string, tags []string) error

	// CanExecute returns true if a loaded step definition matches the step.
	CanExecute(step scenario.Step) bool

	// Execute runs the matching step definition with the given locale. Failures of the step definition are
	// reported in the result, not as an error. Execute is only called after CanExecute returned true.
	Execute(step scenario.Step, locale language.Tag) report.Result

	// Snippet returns a suggested code stub implementing the step in the technology of the backend. It may return
	// an empty string if the backend cannot suggest anything.
	Snippet(step scenario.Step) string

	// DisposeScenario releases everything bound to the current scenario, e.g. objects created for it and after
	// hooks. It is called exactly once for each successful LoadDefinitions.
	DisposeScenario() error
}

// Factory creates a backend. The registry of built-in backends is made up of factories so that each runtime gets
// its own backend instances.
type Factory interface {
	// Kind returns the kind of the backends this factory creates.
	Kind() string
	// Create creates a new backend instance.
	Create(logger log.Logger) (Backend, error)
}

// Registry holds the backends of a runtime in registration order.
type Registry interface {
	// List returns all backends in registration order.
	List() []Backend
	// Kinds returns the kinds of all backends in registration order.
	Kinds() []string
	// GetByKind returns a backend by its kind value, or an ErrBackendNotFound.
	GetByKind(kind string) (Backend, error)
}

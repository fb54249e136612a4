// Package dummy is a backend that runs steps from a fixed list of step names. This is intended as a test backend
// as well as an implementation guide for backends.
package dummy

import (
	"fmt"
	"sync"

	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
)

// Definition is a step definition of the dummy backend. It matches steps by their exact name.
type Definition struct {
	Name   string
	Result report.Result
}

// Passing creates a definition for the step name that always passes.
func Passing(name string) Definition {
	return Definition{
		Name:   name,
		Result: report.Result{Status: report.StatusPassed},
	}
}

// Failing creates a definition for the step name that always fails with the given error.
func Failing(name string, err error) Definition {
	return Definition{
		Name:   name,
		Result: report.Result{Status: report.StatusFailed, Err: err},
	}
}

// New creates a new dummy backend with the given kind and step definitions.
func New(kind string, definitions ...Definition) *Backend {
	return &Backend{
		kind:        kind,
		definitions: definitions,
		lock:        &sync.Mutex{},
	}
}

// Backend is the dummy backend. Besides implementing backend.Backend it records the calls it receives so tests
// can inspect them.
type Backend struct {
	kind        string
	definitions []Definition
	lock        *sync.Mutex

	// LoadError is returned from LoadDefinitions if set.
	LoadError error
	// DisposeError is returned from DisposeScenario if set.
	DisposeError error
	// SnippetFunc replaces the default snippet if set.
	SnippetFunc func(step scenario.Step) string

	loaded      bool
	loadedPaths [][]string
	loadedTags  [][]string
	executed    []scenario.Step
	locales     []language.Tag
	disposals   int
}

var _ backend.Backend = &Backend{}

// Kind returns the kind passed to New.
func (b *Backend) Kind() string {
	// This value will uniquely identify the backend within a registry.
	return b.kind
}

// LoadDefinitions activates the definitions for the scenario.
func (b *Backend) LoadDefinitions(codePaths []string, tags []string) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.loadedPaths = append(b.loadedPaths, append([]string(nil), codePaths...))
	b.loadedTags = append(b.loadedTags, append([]string(nil), tags...))
	if b.LoadError != nil {
		return b.LoadError
	}
	if b.loaded {
		return fmt.Errorf("bug: definitions loaded twice without disposing the scenario")
	}
	b.loaded = true
	return nil
}

// CanExecute returns true if the definitions are loaded and one has the name of the step.
func (b *Backend) CanExecute(step scenario.Step) bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	_, ok := b.find(step)
	return ok
}

// Execute returns the result of the matching definition.
func (b *Backend) Execute(step scenario.Step, locale language.Tag) report.Result {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.executed = append(b.executed, step)
	b.locales = append(b.locales, locale)
	definition, ok := b.find(step)
	if !ok {
		return report.Result{
			Status:  report.StatusFailed,
			Err:     fmt.Errorf("bug: no definition for step %q", step.Name),
			Backend: b.kind,
		}
	}
	result := definition.Result
	result.Backend = b.kind
	return result
}

// Snippet returns a one-line definition stub.
func (b *Backend) Snippet(step scenario.Step) string {
	if b.SnippetFunc != nil {
		return b.SnippetFunc(step)
	}
	return fmt.Sprintf("%s: %s%s", b.kind, step.Keyword, step.Name)
}

// DisposeScenario deactivates the definitions.
func (b *Backend) DisposeScenario() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.disposals++
	b.loaded = false
	return b.DisposeError
}

// LoadedPaths returns the code paths of every LoadDefinitions call.
func (b *Backend) LoadedPaths() [][]string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([][]string(nil), b.loadedPaths...)
}

// LoadedTags returns the tags of every LoadDefinitions call.
func (b *Backend) LoadedTags() [][]string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([][]string(nil), b.loadedTags...)
}

// Executed returns the steps this backend executed.
func (b *Backend) Executed() []scenario.Step {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]scenario.Step(nil), b.executed...)
}

// Locales returns the locales the steps were executed with.
func (b *Backend) Locales() []language.Tag {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]language.Tag(nil), b.locales...)
}

// Disposals returns how many times DisposeScenario was called.
func (b *Backend) Disposals() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.disposals
}

func (b *Backend) find(step scenario.Step) (Definition, bool) {
	if !b.loaded {
		return Definition{}, false
	}
	for _, definition := range b.definitions {
		if definition.Name == step.Name {
			return definition, true
		}
	}
	return Definition{}, false
}

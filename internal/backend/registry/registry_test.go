package registry_test

import (
	"errors"
	"fmt"
	"testing"

	"go.arcalot.io/assert"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/internal/backend/dummy"
	"go.flow.arcalot.io/stepflow/internal/backend/registry"
)

func TestRegistry(t *testing.T) {
	r, err := registry.New(
		dummy.New("first"),
		dummy.New("second"),
	)
	assert.NoError(t, err)
	assert.Equals(t, r.Kinds(), []string{"first", "second"})
	assert.Equals(t, len(r.List()), 2)

	b, err := r.GetByKind("second")
	assert.NoError(t, err)
	assert.Equals(t, b.Kind(), "second")

	_, err = r.GetByKind("third")
	assert.Error(t, err)
	var notFound *backend.ErrBackendNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("incorrect error type returned: %T", err)
	}
	assert.Equals(t, notFound.ValidKinds, []string{"first", "second"})
}

func TestRegistryDuplicateKind(t *testing.T) {
	_, err := registry.New(
		dummy.New("same"),
		dummy.New("same"),
	)
	assert.Error(t, err)
	var duplicate *registry.ErrDuplicateBackendKind
	if !errors.As(err, &duplicate) {
		t.Fatalf("incorrect error type returned: %T", err)
	}
	assert.Equals(t, duplicate.Kind, "same")
}

func TestRegistryEmpty(t *testing.T) {
	r, err := registry.New()
	assert.NoError(t, err)
	assert.Equals(t, len(r.List()), 0)
}

type testFactory struct {
	kind string
	err  error
}

func (f testFactory) Kind() string {
	return f.kind
}

func (f testFactory) Create(_ log.Logger) (backend.Backend, error) {
	if f.err != nil {
		return nil, f.err
	}
	return dummy.New(f.kind), nil
}

func newTestLogger(t *testing.T) log.Logger {
	return log.New(log.Config{
		Level:       log.LevelDebug,
		Destination: log.DestinationTest,
		T:           t,
	})
}

func TestNewFromFactories(t *testing.T) {
	logger := newTestLogger(t)
	factories := []backend.Factory{testFactory{kind: "go"}, testFactory{kind: "yaml"}}

	r, err := registry.NewFromFactories(logger, nil, factories...)
	assert.NoError(t, err)
	assert.Equals(t, r.Kinds(), []string{"go", "yaml"})

	r, err = registry.NewFromFactories(logger, []string{"yaml"}, factories...)
	assert.NoError(t, err)
	assert.Equals(t, r.Kinds(), []string{"yaml"})

	_, err = registry.NewFromFactories(logger, []string{"python"}, factories...)
	assert.Error(t, err)
	var notFound *backend.ErrBackendNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("incorrect error type returned: %T", err)
	}
}

func TestNewFromFactoriesCreateError(t *testing.T) {
	_, err := registry.NewFromFactories(
		newTestLogger(t),
		nil,
		testFactory{kind: "go", err: fmt.Errorf("no compiler")},
	)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no compiler")
}

package stepflow

import (
	"errors"
	"fmt"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
)

type worldState string

const (
	worldStateUnprepared worldState = "unprepared"
	worldStatePrepared   worldState = "prepared"
	worldStateDisposed   worldState = "disposed"
)

// undefinedStepSink receives the steps no backend could run.
type undefinedStepSink interface {
	UndefinedStep(step scenario.Step)
}

// World binds the backends to a single scenario. It goes through the unprepared, prepared and disposed states
// exactly once and is never reused for another scenario.
type World struct {
	logger   log.Logger
	backends []backend.Backend
	runtime  undefinedStepSink
	tags     []string
	state    worldState
}

func newWorld(backends []backend.Backend, runtime undefinedStepSink, tags []string, logger log.Logger) *World {
	return &World{
		logger:   logger.WithLabel("source", "world"),
		backends: backends,
		runtime:  runtime,
		tags:     tags,
		state:    worldStateUnprepared,
	}
}

// Prepare loads the step definitions of every backend in registration order. The first backend failing to load
// aborts the preparation; backends loaded before it are disposed again and the world stays unprepared.
func (w *World) Prepare(codePaths []string) error {
	if w.state != worldStateUnprepared {
		return &ErrIllegalState{Operation: "Prepare", State: string(w.state)}
	}
	for i, b := range w.backends {
		w.logger.Debugf("Loading step definitions with the %s backend from %v...", b.Kind(), codePaths)
		if err := b.LoadDefinitions(codePaths, w.tags); err != nil {
			loadErr := &ErrBackendLoad{Kind: b.Kind(), Cause: err}
			if rollbackErr := disposeAll(w.backends[:i]); rollbackErr != nil {
				w.logger.Warningf("Failed to dispose backends after a load failure (%v)", rollbackErr)
			}
			return loadErr
		}
	}
	w.state = worldStatePrepared
	return nil
}

// RunStep executes the step with the first backend that can run it and reports the result. A step no backend can
// run is reported as undefined and handed to the runtime.
func (w *World) RunStep(uri string, step scenario.Step, reporter report.Reporter, locale language.Tag) error {
	if w.state != worldStatePrepared {
		return &ErrIllegalState{Operation: "RunStep", State: string(w.state)}
	}
	for _, b := range w.backends {
		if !b.CanExecute(step) {
			continue
		}
		w.logger.Debugf("Running %s (%s) with the %s backend...", step.Text(), uri, b.Kind())
		result := b.Execute(step, locale)
		if result.Backend == "" {
			result.Backend = b.Kind()
		}
		reporter.Result(step, result)
		return nil
	}
	w.undefined(uri, step, reporter)
	return nil
}

// SkipStep reports the step as skipped without running it. A step no backend could run is still reported as
// undefined so that a snippet is generated for it.
func (w *World) SkipStep(uri string, step scenario.Step, reporter report.Reporter) error {
	if w.state != worldStatePrepared {
		return &ErrIllegalState{Operation: "SkipStep", State: string(w.state)}
	}
	for _, b := range w.backends {
		if b.CanExecute(step) {
			reporter.Result(step, report.Result{Status: report.StatusSkipped, Backend: b.Kind()})
			return nil
		}
	}
	w.undefined(uri, step, reporter)
	return nil
}

func (w *World) undefined(uri string, step scenario.Step, reporter report.Reporter) {
	w.logger.Debugf("No backend can run %s (%s).", step.Text(), uri)
	reporter.Result(step, report.Result{Status: report.StatusUndefined})
	w.runtime.UndefinedStep(step)
}

// Dispose releases the scenario state of every backend. All backends are disposed even if some fail, the world
// is disposed afterwards in any case.
func (w *World) Dispose() error {
	if w.state != worldStatePrepared {
		return &ErrIllegalState{Operation: "Dispose", State: string(w.state)}
	}
	w.state = worldStateDisposed
	if err := disposeAll(w.backends); err != nil {
		return fmt.Errorf("failed to dispose scenario (%w)", err)
	}
	return nil
}

func disposeAll(backends []backend.Backend) error {
	var errs []error
	for _, b := range backends {
		if err := b.DisposeScenario(); err != nil {
			errs = append(errs, fmt.Errorf("%s backend: %w", b.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

package stepflow

import (
	"fmt"
	"sync"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/config"
	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
)

// Runtime runs scenarios one at a time against a fixed list of backends and collects the steps none of the
// backends could run. Use separate runtimes to run scenarios in parallel.
type Runtime struct {
	logger    log.Logger
	config    *config.Config
	codePaths []string
	backends  []backend.Backend

	lock      *sync.Mutex
	world     *World
	undefined []scenario.Step
}

// PrepareScenario creates a new world for the scenario and loads the step definitions from the runtime code
// paths followed by the extra code paths. The reporter is then notified of the scenario and all of its steps.
func (r *Runtime) PrepareScenario(sc *scenario.Scenario, reporter report.Reporter, extraCodePaths []string) error {
	if sc == nil {
		return fmt.Errorf("bug: nil scenario passed to PrepareScenario")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.world != nil && r.world.state == worldStatePrepared {
		return &ErrIllegalState{Operation: "PrepareScenario", State: string(worldStatePrepared)}
	}
	codePaths := make([]string, 0, len(r.codePaths)+len(extraCodePaths))
	codePaths = append(codePaths, r.codePaths...)
	codePaths = append(codePaths, extraCodePaths...)

	r.logger.Debugf("Preparing scenario %s (%s)...", sc.Name, sc.Location)
	world := newWorld(r.backends, r, sc.Tags, r.logger)
	r.world = world
	if err := world.Prepare(codePaths); err != nil {
		return err
	}
	reporter.Scenario(sc)
	for _, step := range sc.Steps {
		reporter.Step(step)
	}
	return nil
}

// RunStep runs a step of the prepared scenario.
func (r *Runtime) RunStep(uri string, step scenario.Step, reporter report.Reporter, locale language.Tag) error {
	world, err := r.currentWorld("RunStep")
	if err != nil {
		return err
	}
	return world.RunStep(uri, step, reporter, locale)
}

// Dispose tears down the prepared scenario. Calling it twice without preparing a new scenario in between is an
// ErrIllegalState.
func (r *Runtime) Dispose() error {
	world, err := r.currentWorld("Dispose")
	if err != nil {
		return err
	}
	return world.Dispose()
}

// UndefinedStep records a step no backend could run. The same step may be recorded more than once.
func (r *Runtime) UndefinedStep(step scenario.Step) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.undefined = append(r.undefined, step)
}

// UndefinedSteps returns the recorded undefined steps in the order they were encountered.
func (r *Runtime) UndefinedSteps() []scenario.Step {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]scenario.Step(nil), r.undefined...)
}

// RunScenario prepares the scenario, runs all of its steps and disposes it. It returns the most severe status of
// the steps. If SkipAfterFailure is configured, the steps following a step that did not pass are skipped.
func (r *Runtime) RunScenario(
	sc *scenario.Scenario,
	reporter report.Reporter,
	extraCodePaths []string,
	locale language.Tag,
) (report.Status, error) {
	tracker := &statusTracker{status: report.StatusPassed}
	reporter = report.Multi(reporter, tracker)

	if err := r.PrepareScenario(sc, reporter, extraCodePaths); err != nil {
		return report.StatusFailed, err
	}
	world, err := r.currentWorld("RunScenario")
	if err != nil {
		return report.StatusFailed, err
	}
	for _, step := range sc.Steps {
		if r.config.SkipAfterFailure && tracker.status != report.StatusPassed {
			err = world.SkipStep(sc.URI(), step, reporter)
		} else {
			err = world.RunStep(sc.URI(), step, reporter, locale)
		}
		if err != nil {
			return report.StatusFailed, err
		}
	}
	if err := world.Dispose(); err != nil {
		return report.StatusFailed, err
	}
	return tracker.status, nil
}

func (r *Runtime) currentWorld(operation string) (*World, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.world == nil {
		return nil, &ErrIllegalState{Operation: operation, State: "not prepared"}
	}
	return r.world, nil
}

// statusTracker keeps the most severe step status of a scenario.
type statusTracker struct {
	status report.Status
}

func (s *statusTracker) Scenario(*scenario.Scenario) {}

func (s *statusTracker) Step(scenario.Step) {}

func (s *statusTracker) Result(_ scenario.Step, result report.Result) {
	s.status = report.Worst(s.status, result.Status)
}

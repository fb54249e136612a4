// Package report defines the sink the runtime sends scenario, step and outcome notifications to, along with a few
// reporter implementations. The runtime does not interpret what a reporter does with the notifications.
package report

import (
	"time"

	"go.flow.arcalot.io/stepflow/scenario"
)

// Status is the outcome kind of a step.
type Status string

const (
	// StatusPassed indicates that the step definition ran without an error.
	StatusPassed Status = "passed"
	// StatusSkipped indicates that the step was not run, e.g. because a previous step did not pass.
	StatusSkipped Status = "skipped"
	// StatusPending indicates that the step definition exists but is not finished yet.
	StatusPending Status = "pending"
	// StatusUndefined indicates that no backend had a step definition matching the step.
	StatusUndefined Status = "undefined"
	// StatusFailed indicates that the step definition returned an error or panicked.
	StatusFailed Status = "failed"
)

// Statuses lists all statuses in ascending order of severity.
var Statuses = []Status{
	StatusPassed,
	StatusSkipped,
	StatusPending,
	StatusUndefined,
	StatusFailed,
}

// Severity returns the rank of the status in Statuses. Unknown statuses rank highest.
func (s Status) Severity() int {
	for i, status := range Statuses {
		if status == s {
			return i
		}
	}
	return len(Statuses)
}

// Worst returns the more severe of two statuses.
func Worst(a, b Status) Status {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// Result is the outcome of a single step.
type Result struct {
	Status   Status
	Duration time.Duration
	// Err holds the failure for StatusFailed and an optional reason for StatusPending.
	Err error
	// Backend is the kind of the backend that ran the step, if any.
	Backend string
}

// Passed returns true if the step passed.
func (r Result) Passed() bool {
	return r.Status == StatusPassed
}

// Reporter receives notifications about the scenario being run.
type Reporter interface {
	// Scenario is called once when a scenario has been prepared, before any of its steps run.
	Scenario(sc *scenario.Scenario)
	// Step is called for each step of the scenario in document order, before any step runs.
	Step(step scenario.Step)
	// Result is called with the outcome of each step that was run, skipped or found undefined.
	Result(step scenario.Step, result Result)
}

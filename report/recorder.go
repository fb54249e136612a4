package report

import (
	"sync"

	"go.flow.arcalot.io/stepflow/scenario"
)

// EventType tells what kind of notification an Event holds.
type EventType string

const (
	// EventScenario is a scenario header notification.
	EventScenario EventType = "scenario"
	// EventStep is a step header notification.
	EventStep EventType = "step"
	// EventResult is a step outcome notification.
	EventResult EventType = "result"
)

// Event is a single notification captured by the Recorder.
type Event struct {
	Type     EventType
	Scenario *scenario.Scenario
	Step     scenario.Step
	Result   Result
}

// NewRecorder creates a reporter that keeps all notifications in memory.
func NewRecorder() *Recorder {
	return &Recorder{
		lock:   &sync.Mutex{},
		counts: map[Status]int{},
	}
}

// Recorder is a Reporter that records notifications in order and counts step outcomes.
type Recorder struct {
	lock   *sync.Mutex
	events []Event
	counts map[Status]int
}

// Scenario records a scenario header.
func (r *Recorder) Scenario(sc *scenario.Scenario) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, Event{Type: EventScenario, Scenario: sc})
}

// Step records a step header.
func (r *Recorder) Step(step scenario.Step) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, Event{Type: EventStep, Step: step})
}

// Result records a step outcome.
func (r *Recorder) Result(step scenario.Step, result Result) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, Event{Type: EventResult, Step: step, Result: result})
	r.counts[result.Status]++
}

// Events returns a copy of the recorded notifications.
func (r *Recorder) Events() []Event {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Event(nil), r.events...)
}

// Results returns the recorded step outcomes in order.
func (r *Recorder) Results() []Result {
	r.lock.Lock()
	defer r.lock.Unlock()
	var results []Result
	for _, event := range r.events {
		if event.Type == EventResult {
			results = append(results, event.Result)
		}
	}
	return results
}

// Counts returns the number of step outcomes per status.
func (r *Recorder) Counts() map[Status]int {
	r.lock.Lock()
	defer r.lock.Unlock()
	counts := make(map[Status]int, len(r.counts))
	for status, count := range r.counts {
		counts[status] = count
	}
	return counts
}

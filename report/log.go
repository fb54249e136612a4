package report

import (
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/scenario"
)

// NewLogReporter creates a reporter that writes all notifications to the logger.
func NewLogReporter(logger log.Logger) Reporter {
	return &logReporter{
		logger: logger.WithLabel("source", "reporter"),
	}
}

type logReporter struct {
	logger log.Logger
}

func (l *logReporter) Scenario(sc *scenario.Scenario) {
	l.logger.Infof("Scenario: %s (%s)", sc.Name, sc.Location)
}

func (l *logReporter) Step(step scenario.Step) {
	l.logger.Debugf("  %s", step.Text())
}

func (l *logReporter) Result(step scenario.Step, result Result) {
	switch result.Status {
	case StatusFailed:
		l.logger.Errorf("  %s: %s (%v)", result.Status, step.Text(), result.Err)
	case StatusUndefined, StatusPending:
		l.logger.Warningf("  %s: %s", result.Status, step.Text())
	default:
		l.logger.Infof("  %s: %s", result.Status, step.Text())
	}
}

// Multi creates a reporter that forwards every notification to all passed reporters in order.
func Multi(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

type multiReporter []Reporter

func (m multiReporter) Scenario(sc *scenario.Scenario) {
	for _, r := range m {
		r.Scenario(sc)
	}
}

func (m multiReporter) Step(step scenario.Step) {
	for _, r := range m {
		r.Step(step)
	}
}

func (m multiReporter) Result(step scenario.Step, result Result) {
	for _, r := range m {
		r.Result(step, result)
	}
}

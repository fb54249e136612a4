package report_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"go.arcalot.io/assert"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
)

func TestWorst(t *testing.T) {
	assert.Equals(t, report.Worst(report.StatusPassed, report.StatusFailed), report.StatusFailed)
	assert.Equals(t, report.Worst(report.StatusUndefined, report.StatusPending), report.StatusUndefined)
	assert.Equals(t, report.Worst(report.StatusSkipped, report.StatusPassed), report.StatusSkipped)
	assert.Equals(t, report.Worst(report.StatusFailed, report.Status("bogus")), report.Status("bogus"))
}

func TestRecorder(t *testing.T) {
	sc := &scenario.Scenario{Name: "Recording"}
	step := scenario.Step{Keyword: "Given ", Name: "a recorder"}
	r := report.NewRecorder()
	r.Scenario(sc)
	r.Step(step)
	r.Result(step, report.Result{Status: report.StatusPassed})
	r.Result(step, report.Result{Status: report.StatusFailed, Err: fmt.Errorf("boom")})

	events := r.Events()
	assert.Equals(t, len(events), 4)
	assert.Equals(t, events[0].Type, report.EventScenario)
	assert.Equals(t, events[0].Scenario.Name, "Recording")
	assert.Equals(t, events[1].Type, report.EventStep)
	assert.Equals(t, events[1].Step, step)
	assert.Equals(t, len(r.Results()), 2)
	assert.Equals(t, r.Counts(), map[report.Status]int{
		report.StatusPassed: 1,
		report.StatusFailed: 1,
	})
}

func TestMulti(t *testing.T) {
	a := report.NewRecorder()
	b := report.NewRecorder()
	logger := log.New(log.Config{
		Level:       log.LevelDebug,
		Destination: log.DestinationTest,
		T:           t,
	})
	m := report.Multi(a, b, report.NewLogReporter(logger))
	step := scenario.Step{Keyword: "Then ", Name: "both see it"}
	m.Scenario(&scenario.Scenario{Name: "Fan-out"})
	m.Step(step)
	m.Result(step, report.Result{Status: report.StatusUndefined})
	assert.Equals(t, len(a.Events()), 3)
	assert.Equals(t, len(b.Events()), 3)
	assert.Equals(t, b.Counts()[report.StatusUndefined], 1)
}

const expectedSummary = `STATUS      STEPS
passed      3
undefined   1
total       4
`

func TestPrintSummary(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	assert.NoError(t, report.PrintSummary(buf, map[report.Status]int{
		report.StatusUndefined: 1,
		report.StatusPassed:    3,
	}))
	assert.Equals(t, buf.String(), expectedSummary)
}

func TestPrintSnippets(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	assert.NoError(t, report.PrintSnippets(buf, nil))
	assert.Equals(t, buf.String(), "")

	assert.NoError(t, report.PrintSnippets(buf, []string{"a", "b"}))
	assert.Contains(t, buf.String(), "undefined steps")
	assert.Contains(t, buf.String(), "\na\n\nb\n")
}

func TestPrintUndefinedSteps(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	assert.NoError(t, report.PrintUndefinedSteps(buf, nil))
	assert.Equals(t, buf.String(), "")

	assert.NoError(t, report.PrintUndefinedSteps(buf, []scenario.Step{
		{Keyword: "When ", Name: "b", Location: scenario.Location{URI: "b.feature", Line: 3}},
		{Keyword: "Given ", Name: "a", Location: scenario.Location{URI: "b.feature", Line: 2}},
		{Keyword: "When ", Name: "b", Location: scenario.Location{URI: "b.feature", Line: 9}},
		{Keyword: "Then ", Name: "c", Location: scenario.Location{URI: "a.feature", Line: 1}},
	}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equals(t, len(lines), 4)
	assert.Contains(t, lines[0], "UNDEFINED STEP")
	assert.Contains(t, lines[1], "Then c")
	assert.Contains(t, lines[2], "Given a")
	assert.Contains(t, lines[3], "When b")
}

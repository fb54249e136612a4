package stepflow_test

import (
	"strings"
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/stepflow"
	"go.flow.arcalot.io/stepflow/config"
	"go.flow.arcalot.io/stepflow/gofunc"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
)

var eaten int

func init() {
	if err := gofunc.Step("testdata/glue", `^I eat (\d+) cukes$`, func(ctx *gofunc.Context, cukes int) error {
		eaten = cukes
		return nil
	}); err != nil {
		panic(err)
	}
}

func TestNewDefault(t *testing.T) {
	t.Setenv(config.EnvGlue, "testdata/glue")
	cfg := testConfig(t, "does-not-exist")
	r, err := stepflow.NewDefault(cfg)
	assert.NoError(t, err)
	assert.Equals(t, cfg.Glue, []string{"testdata/glue"})
	recorder := report.NewRecorder()

	sc := newScenario(
		"default backends",
		step("Given ", "I have 5 cukes"),
		step("When ", "I eat 2 cukes"),
		step("Then ", "I am full"),
	)
	status, err := r.RunScenario(sc, recorder, nil, language.English)
	assert.NoError(t, err)
	assert.Equals(t, status, report.StatusUndefined)
	assert.Equals(t, eaten, 2)

	var backends []string
	for _, result := range recorder.Results() {
		backends = append(backends, result.Backend)
	}
	assert.Equals(t, backends, []string{"yaml", "go", ""})

	snippets := r.Snippets()
	assert.Equals(t, len(snippets), 2)
	assert.Equals(t, strings.HasPrefix(snippets[0], "gofunc.Step(gluePath, `^I am full$`"), true)
	assert.Contains(t, snippets[1], "pattern: ^I am full$")
}

func TestNewDefaultEnabledBackends(t *testing.T) {
	cfg := testConfig(t, "testdata/glue")
	cfg.Backends = []string{"yaml"}
	r, err := stepflow.NewDefault(cfg)
	assert.NoError(t, err)

	r.UndefinedStep(scenario.Step{Keyword: "Given ", Name: "a thing"})
	snippets := r.Snippets()
	assert.Equals(t, len(snippets), 1)
	assert.Contains(t, snippets[0], "pattern: ^a thing$")

	cfg.Backends = []string{"python"}
	_, err = stepflow.NewDefault(cfg)
	assert.Error(t, err)
}

func TestDefaultBackendFactories(t *testing.T) {
	var kinds []string
	for _, factory := range stepflow.DefaultBackendFactories(".") {
		kinds = append(kinds, factory.Kind())
	}
	assert.Equals(t, kinds, []string{"go", "yaml"})
}

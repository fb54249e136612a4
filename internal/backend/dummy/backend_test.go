package dummy_test

import (
	"fmt"
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/stepflow/internal/backend/dummy"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
)

func TestBackend(t *testing.T) {
	b := dummy.New("dummy", dummy.Passing("a greeting"), dummy.Failing("a grumble", fmt.Errorf("grr")))
	assert.Equals(t, b.Kind(), "dummy")

	greeting := scenario.Step{Keyword: "Given ", Name: "a greeting"}
	grumble := scenario.Step{Keyword: "Then ", Name: "a grumble"}
	unknown := scenario.Step{Keyword: "When ", Name: "a whisper"}

	// Nothing is bound before the definitions are loaded.
	assert.Equals(t, b.CanExecute(greeting), false)

	assert.NoError(t, b.LoadDefinitions([]string{"/a"}, []string{"@t"}))
	assert.Equals(t, b.CanExecute(greeting), true)
	assert.Equals(t, b.CanExecute(unknown), false)

	result := b.Execute(greeting, language.English)
	assert.Equals(t, result.Status, report.StatusPassed)
	assert.Equals(t, result.Backend, "dummy")
	result = b.Execute(grumble, language.English)
	assert.Equals(t, result.Status, report.StatusFailed)
	assert.Error(t, result.Err)

	assert.Equals(t, b.Snippet(unknown), "dummy: When a whisper")
	assert.NoError(t, b.DisposeScenario())
	assert.Equals(t, b.CanExecute(greeting), false)

	assert.Equals(t, b.LoadedPaths(), [][]string{{"/a"}})
	assert.Equals(t, b.LoadedTags(), [][]string{{"@t"}})
	assert.Equals(t, len(b.Executed()), 2)
	assert.Equals(t, b.Locales()[0], language.English)
	assert.Equals(t, b.Disposals(), 1)
}

func TestBackendLoadTwice(t *testing.T) {
	b := dummy.New("dummy")
	assert.NoError(t, b.LoadDefinitions(nil, nil))
	assert.Error(t, b.LoadDefinitions(nil, nil))
}

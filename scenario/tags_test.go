package scenario_test

import (
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/stepflow/scenario"
)

var tagFilterData = map[string]struct {
	tags     []string
	filter   []string
	expected bool
}{
	"empty-filter": {
		tags:     []string{"@a"},
		filter:   nil,
		expected: true,
	},
	"single-match": {
		tags:     []string{"@a", "@b"},
		filter:   []string{"@b"},
		expected: true,
	},
	"single-miss": {
		tags:     []string{"@a"},
		filter:   []string{"@b"},
		expected: false,
	},
	"or-group": {
		tags:     []string{"@smoke"},
		filter:   []string{"@fast,@smoke"},
		expected: true,
	},
	"and-groups": {
		tags:     []string{"@fast"},
		filter:   []string{"@fast", "@smoke"},
		expected: false,
	},
	"negation-absent": {
		tags:     []string{"@fast"},
		filter:   []string{"~@wip"},
		expected: true,
	},
	"negation-present": {
		tags:     []string{"@fast", "@wip"},
		filter:   []string{"@fast", "~@wip"},
		expected: false,
	},
	"no-tags": {
		tags:     nil,
		filter:   []string{"@a"},
		expected: false,
	},
}

func TestMatchesTagFilter(t *testing.T) {
	for name, tc := range tagFilterData {
		testCase := tc
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, scenario.MatchesTagFilter(testCase.tags, testCase.filter), testCase.expected)
		})
	}
}

func TestStepKey(t *testing.T) {
	a := scenario.Step{Keyword: "Given ", Name: "a thing", Location: scenario.Location{URI: "a.feature", Line: 3}}
	b := scenario.Step{Keyword: "Given ", Name: "a thing", Location: scenario.Location{URI: "b.feature", Line: 7}}
	assert.Equals(t, a.Key(), b.Key())
	assert.Equals(t, a.Text(), "Given a thing")
	assert.Equals(t, a.Location.String(), "a.feature:3")
}

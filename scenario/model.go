// Package scenario holds the immutable data model the runtime works on: scenarios, their steps and tags. Values
// are produced by an upstream parser (or the YAML suite loader in this package) and are only referenced by the
// runtime, never modified.
package scenario

import "fmt"

// Location points to the place in a source document a scenario or step was read from.
type Location struct {
	// URI identifies the source document.
	URI string `yaml:"uri,omitempty"`
	// Line is the 1-based line number within the document. Zero means unknown.
	Line int `yaml:"line,omitempty"`
}

// String returns the location in the uri:line form.
func (l Location) String() string {
	if l.Line == 0 {
		return l.URI
	}
	return fmt.Sprintf("%s:%d", l.URI, l.Line)
}

// Step is a single ordered unit of a scenario.
type Step struct {
	// Keyword is the natural-language qualifier of the step including its trailing space, e.g. "Given ".
	Keyword string `yaml:"keyword"`
	// Name is the free text of the step following the keyword.
	Name string `yaml:"name"`
	// Location is the source location of the step.
	Location Location `yaml:"location,omitempty"`
}

// StepKey is the identity of a step. Two steps with the same keyword and name are considered equal regardless of
// where they were read from.
type StepKey struct {
	Keyword string
	Name    string
}

// Key returns the identity of the step.
func (s Step) Key() StepKey {
	return StepKey{
		Keyword: s.Keyword,
		Name:    s.Name,
	}
}

// Text returns the keyword and the name as written in the document.
func (s Step) Text() string {
	return s.Keyword + s.Name
}

// Scenario is an executable test case: an ordered list of steps and a set of tags.
type Scenario struct {
	// Name is the human-readable scenario title.
	Name string `yaml:"name"`
	// Tags holds the tags of the scenario including the ones inherited from its feature, e.g. "@smoke".
	Tags []string `yaml:"tags,omitempty"`
	// Steps are the steps of the scenario in document order.
	Steps []Step `yaml:"steps"`
	// Location is the source location of the scenario header.
	Location Location `yaml:"location,omitempty"`
}

// URI returns the URI of the document the scenario was read from.
func (s *Scenario) URI() string {
	return s.Location.URI
}

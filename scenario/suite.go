package scenario

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptySuite indicates that a suite file contains no scenarios.
var ErrEmptySuite = fmt.Errorf("the suite file does not contain any scenarios")

// ErrInvalidSuite indicates that a suite file could not be decoded.
type ErrInvalidSuite struct {
	URI   string
	Cause error
}

// Error returns the error message.
func (e ErrInvalidSuite) Error() string {
	return fmt.Sprintf("invalid suite file %s (%v)", e.URI, e.Cause)
}

// Unwrap returns the underlying decoding error.
func (e ErrInvalidSuite) Unwrap() error {
	return e.Cause
}

// Suite is a set of features read from a YAML suite file. It is a plain data format for driving the runtime from
// the command line and does not try to be a Gherkin document.
type Suite struct {
	Features []Feature `yaml:"features"`
}

// Feature groups scenarios. Tags on the feature are inherited by all its scenarios.
type Feature struct {
	Name      string     `yaml:"name"`
	URI       string     `yaml:"uri,omitempty"`
	Tags      []string   `yaml:"tags,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// UnmarshalYAML decodes a step either from the keyword/name mapping or from the "Given some text" shorthand. The
// line of the YAML node is recorded as the step line.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		keyword, name, ok := strings.Cut(strings.TrimSpace(value.Value), " ")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("line %d: step %q must consist of a keyword and a name", value.Line, value.Value)
		}
		s.Keyword = keyword + " "
		s.Name = strings.TrimSpace(name)
	case yaml.MappingNode:
		type plainStep Step
		var p plainStep
		if err := value.Decode(&p); err != nil {
			return err
		}
		*s = Step(p)
		if s.Name == "" {
			return fmt.Errorf("line %d: step has no name", value.Line)
		}
	default:
		return fmt.Errorf("line %d: a step must be a string or a mapping", value.Line)
	}
	if s.Location.Line == 0 {
		s.Location.Line = value.Line
	}
	return nil
}

// LoadSuite decodes a YAML suite file. The uri is used as the location of every scenario and step that does not
// come from a feature with its own URI.
func LoadSuite(data []byte, uri string) (*Suite, error) {
	suite := &Suite{}
	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, &ErrInvalidSuite{URI: uri, Cause: err}
	}
	total := 0
	for i := range suite.Features {
		feature := &suite.Features[i]
		if feature.URI == "" {
			feature.URI = uri
		}
		for j := range feature.Scenarios {
			sc := &feature.Scenarios[j]
			if sc.Location.URI == "" {
				sc.Location.URI = feature.URI
			}
			for k := range sc.Steps {
				if sc.Steps[k].Location.URI == "" {
					sc.Steps[k].Location.URI = feature.URI
				}
			}
			total++
		}
	}
	if total == 0 {
		return nil, ErrEmptySuite
	}
	return suite, nil
}

// Scenarios flattens the suite into a list of scenarios in document order. Feature tags are prepended to the
// scenario tags.
func (s *Suite) Scenarios() []*Scenario {
	var result []*Scenario
	for _, feature := range s.Features {
		for _, sc := range feature.Scenarios {
			tags := make([]string, 0, len(feature.Tags)+len(sc.Tags))
			tags = append(tags, feature.Tags...)
			for _, tag := range sc.Tags {
				if !HasTag(tags, tag) {
					tags = append(tags, tag)
				}
			}
			flattened := &Scenario{
				Name:     sc.Name,
				Tags:     tags,
				Steps:    append([]Step(nil), sc.Steps...),
				Location: sc.Location,
			}
			result = append(result, flattened)
		}
	}
	return result
}

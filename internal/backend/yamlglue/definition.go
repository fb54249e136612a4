package yamlglue

import (
	"fmt"
	"regexp"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"go.flow.arcalot.io/stepflow/loadfile"
	"gopkg.in/yaml.v3"
)

// Extensions are the file name suffixes of step definition files.
var Extensions = []string{".steps.yaml", ".steps.yml"}

// File is the format of a step definition file.
type File struct {
	Steps []Definition `json:"steps" yaml:"steps"`
}

// Definition is a single step definition. The expression is evaluated with the captured groups of the pattern in
// args and the scenario variables in vars. If Set is empty the expression must evaluate to true for the step to
// pass, otherwise the result is stored in the scenario variable named by Set.
type Definition struct {
	Pattern string `json:"pattern" yaml:"pattern" jsonschema:"minLength=1"`
	Expr    string `json:"expr,omitempty" yaml:"expr,omitempty"`
	Set     string `json:"set,omitempty" yaml:"set,omitempty"`
	Pending bool   `json:"pending,omitempty" yaml:"pending,omitempty"`
}

type stepDefinition struct {
	source     string
	expression *regexp.Regexp
	program    *vm.Program
	set        string
	pending    bool
}

// environment is the type information the expressions are compiled against.
func environment(args []any, vars map[string]any) map[string]any {
	return map[string]any{
		"args": args,
		"vars": vars,
	}
}

func parseFile(file loadfile.ContextFile) ([]*stepDefinition, error) {
	var document any
	if err := yaml.Unmarshal(file.Content, &document); err != nil {
		return nil, &ErrInvalidDefinitionFile{Path: file.AbsolutePath, Cause: err}
	}
	if document == nil {
		return nil, nil
	}
	if err := validateDocument(document); err != nil {
		return nil, &ErrInvalidDefinitionFile{Path: file.AbsolutePath, Cause: err}
	}
	var data File
	if err := yaml.Unmarshal(file.Content, &data); err != nil {
		return nil, &ErrInvalidDefinitionFile{Path: file.AbsolutePath, Cause: err}
	}
	result := make([]*stepDefinition, len(data.Steps))
	for i, definition := range data.Steps {
		compiled, err := compile(definition)
		if err != nil {
			return nil, &ErrInvalidDefinitionFile{
				Path:  file.AbsolutePath,
				Cause: fmt.Errorf("step definition %d (%w)", i, err),
			}
		}
		compiled.source = file.AbsolutePath
		result[i] = compiled
	}
	return result, nil
}

func compile(definition Definition) (*stepDefinition, error) {
	if definition.Pattern == "" {
		return nil, fmt.Errorf("no pattern")
	}
	expression, err := regexp.Compile(definition.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s (%w)", definition.Pattern, err)
	}
	result := &stepDefinition{
		expression: expression,
		set:        definition.Set,
		pending:    definition.Pending,
	}
	if definition.Expr == "" {
		if definition.Set != "" {
			return nil, fmt.Errorf("no expression for variable %s", definition.Set)
		}
		return result, nil
	}
	options := []expr.Option{expr.Env(environment([]any{}, map[string]any{}))}
	if definition.Set == "" {
		options = append(options, expr.AsBool())
	}
	result.program, err = expr.Compile(definition.Expr, options...)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %s (%w)", definition.Expr, err)
	}
	return result, nil
}

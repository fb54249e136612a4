// Package yamlglue is the backend running step definitions written as expressions in YAML files:
//
//	steps:
//	  - pattern: '^I have (\d+) cukes$'
//	    set: cukes
//	    expr: int(args[0])
//	  - pattern: '^I have (\d+) cukes left$'
//	    expr: vars.cukes == int(args[0])
//
// Definition files are named *.steps.yaml or *.steps.yml and are looked up in the code paths of the scenario.
package yamlglue

import (
	"fmt"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/loadfile"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Kind is the kind of the YAML expression backend.
const Kind = "yaml"

// ErrPending is the error of steps whose definition is marked pending.
var ErrPending = fmt.Errorf("step definition is pending")

// NewFactory creates a factory for YAML expression backends resolving relative code paths against rootDir.
func NewFactory(rootDir string) backend.Factory {
	return &factory{rootDir: rootDir}
}

type factory struct {
	rootDir string
}

func (f factory) Kind() string {
	return Kind
}

func (f factory) Create(logger log.Logger) (backend.Backend, error) {
	return New(logger, f.rootDir), nil
}

// New creates a new YAML expression backend.
func New(logger log.Logger, rootDir string) *Backend {
	return &Backend{
		logger:  logger.WithLabel("backend", Kind),
		rootDir: rootDir,
		lock:    &sync.Mutex{},
	}
}

// Backend runs step definitions from YAML files. The scenario variables live from LoadDefinitions until
// DisposeScenario.
type Backend struct {
	logger  log.Logger
	rootDir string
	lock    *sync.Mutex

	loaded      bool
	definitions []*stepDefinition
	vars        map[string]any
}

var _ backend.Backend = &Backend{}

// Kind returns "yaml".
func (b *Backend) Kind() string {
	return Kind
}

// LoadDefinitions reads and compiles the definition files under the code paths. Definitions from earlier code
// paths take precedence. The backend has no hooks, so the tags are not used.
func (b *Backend) LoadDefinitions(codePaths []string, _ []string) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.loaded {
		return fmt.Errorf("bug: definitions loaded twice without disposing the scenario")
	}
	files, err := loadfile.LoadDefinitionFiles(b.rootDir, codePaths, Extensions...)
	if err != nil {
		return fmt.Errorf("failed to read step definition files (%w)", err)
	}
	var definitions []*stepDefinition
	patterns := map[string]*stepDefinition{}
	for _, file := range files {
		fileDefinitions, err := parseFile(file)
		if err != nil {
			return err
		}
		for _, d := range fileDefinitions {
			if existing, ok := patterns[d.expression.String()]; ok {
				return &ErrDuplicatePattern{
					Pattern: d.expression.String(),
					Paths:   []string{existing.source, d.source},
				}
			}
			patterns[d.expression.String()] = d
			definitions = append(definitions, d)
		}
	}
	b.logger.Debugf("Loaded %d step definitions from %d files.", len(definitions), len(files))
	b.definitions = definitions
	b.vars = map[string]any{}
	b.loaded = true
	return nil
}

// CanExecute returns true if a loaded definition matches the step name.
func (b *Backend) CanExecute(step scenario.Step) bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.find(step) != nil
}

// Execute evaluates the expression of the matching definition.
func (b *Backend) Execute(step scenario.Step, _ language.Tag) report.Result {
	b.lock.Lock()
	defer b.lock.Unlock()
	start := time.Now()
	status, err := b.execute(step)
	return report.Result{
		Status:   status,
		Duration: time.Since(start),
		Err:      err,
		Backend:  Kind,
	}
}

func (b *Backend) execute(step scenario.Step) (report.Status, error) {
	definition := b.find(step)
	if definition == nil {
		return report.StatusFailed, fmt.Errorf("bug: no step definition matches %q", step.Name)
	}
	if definition.pending {
		return report.StatusPending, ErrPending
	}
	if definition.program == nil {
		return report.StatusPassed, nil
	}
	matches := definition.expression.FindStringSubmatch(step.Name)
	args := make([]any, len(matches)-1)
	for i, match := range matches[1:] {
		args[i] = match
	}
	out, err := expr.Run(definition.program, environment(args, b.vars))
	if err != nil {
		return report.StatusFailed, fmt.Errorf("failed to evaluate expression (%w)", err)
	}
	if definition.set != "" {
		b.vars[definition.set] = out
		return report.StatusPassed, nil
	}
	passed, ok := out.(bool)
	if !ok {
		return report.StatusFailed, fmt.Errorf("expression returned %T instead of bool", out)
	}
	if !passed {
		return report.StatusFailed, fmt.Errorf("expression for %s evaluated to false", definition.expression)
	}
	return report.StatusPassed, nil
}

// Snippet returns a pending YAML definition for the step.
func (b *Backend) Snippet(step scenario.Step) string {
	pattern, _ := backend.SnippetPattern(step.Name)
	data, err := yaml.Marshal(File{Steps: []Definition{
		{
			Pattern: pattern,
			Expr:    "true",
			Pending: true,
		},
	}})
	if err != nil {
		b.logger.Warningf("Failed to generate snippet for %s (%v)", step.Name, err)
		return ""
	}
	return string(data)
}

// DisposeScenario clears the scenario variables and unloads the definitions.
func (b *Backend) DisposeScenario() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if !b.loaded {
		return fmt.Errorf("bug: scenario disposed without loaded definitions")
	}
	b.loaded = false
	b.definitions = nil
	b.vars = nil
	return nil
}

func (b *Backend) find(step scenario.Step) *stepDefinition {
	if !b.loaded {
		return nil
	}
	for _, d := range b.definitions {
		if d.expression.MatchString(step.Name) {
			return d
		}
	}
	return nil
}

// Package gofunc is the backend running step definitions written as Go functions. Step definitions are registered
// against a regular expression under a glue path; a scenario only sees the definitions whose glue path lies under
// one of its code paths.
//
//	gofunc.Step("features/steps", `^I have (\d+) cukes$`, func(ctx *gofunc.Context, cukes int) error {
//		ctx.Set("cukes", cukes)
//		return nil
//	})
package gofunc

import (
	"fmt"
	"path"
	"reflect"
	"regexp"
	"sync"

	"go.flow.arcalot.io/stepflow/scenario"
)

// Default holds the definitions registered through the package-level Step, Before and After functions. The
// built-in backend registry uses these.
var Default = NewDefinitions()

// Step registers a step definition in the Default definitions.
func Step(gluePath string, pattern string, fn any) error {
	return Default.Step(gluePath, pattern, fn)
}

// Before registers a before hook in the Default definitions.
func Before(gluePath string, tagFilter []string, fn HookFunc) {
	Default.Before(gluePath, tagFilter, fn)
}

// After registers an after hook in the Default definitions.
func After(gluePath string, tagFilter []string, fn HookFunc) {
	Default.After(gluePath, tagFilter, fn)
}

// HookFunc is a function run before or after a scenario.
type HookFunc func(ctx *Context) error

// NewDefinitions creates an empty set of definitions.
func NewDefinitions() *Definitions {
	return &Definitions{
		lock: &sync.Mutex{},
	}
}

// Definitions is a set of step definitions and hooks. It is safe to register definitions from multiple goroutines,
// e.g. from package init functions.
type Definitions struct {
	lock   *sync.Mutex
	steps  []*stepDefinition
	before []*hook
	after  []*hook
}

type stepDefinition struct {
	gluePath   string
	expression *regexp.Regexp
	fn         reflect.Value
	// withContext is set when the first parameter of fn is a *Context.
	withContext bool
}

type hook struct {
	gluePath  string
	tagFilter []string
	fn        HookFunc
}

var (
	contextType = reflect.TypeOf(&Context{})
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Step registers a step definition. The function may take a *Context as its first parameter, followed by one
// parameter of type string, int, int64, float64 or bool for each capture group of the pattern. It may return
// nothing or an error.
func (d *Definitions) Step(gluePath string, pattern string, fn any) error {
	expression, err := regexp.Compile(pattern)
	if err != nil {
		return &ErrInvalidStepDefinition{Pattern: pattern, Reason: fmt.Sprintf("invalid pattern (%v)", err)}
	}
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		return &ErrInvalidStepDefinition{Pattern: pattern, Reason: fmt.Sprintf("expected a function, got %T", fn)}
	}
	fnType := value.Type()
	withContext := fnType.NumIn() > 0 && fnType.In(0) == contextType
	offset := 0
	if withContext {
		offset = 1
	}
	if fnType.NumIn()-offset != expression.NumSubexp() {
		return &ErrInvalidStepDefinition{
			Pattern: pattern,
			Reason: fmt.Sprintf(
				"the pattern has %d capture groups, but the function takes %d arguments",
				expression.NumSubexp(),
				fnType.NumIn()-offset,
			),
		}
	}
	for i := offset; i < fnType.NumIn(); i++ {
		if !supportedKind(fnType.In(i).Kind()) {
			return &ErrInvalidStepDefinition{
				Pattern: pattern,
				Reason:  fmt.Sprintf("unsupported argument type %s", fnType.In(i)),
			}
		}
	}
	switch {
	case fnType.NumOut() == 0:
	case fnType.NumOut() == 1 && fnType.Out(0) == errorType:
	default:
		return &ErrInvalidStepDefinition{Pattern: pattern, Reason: "the function may only return an error"}
	}

	d.lock.Lock()
	defer d.lock.Unlock()
	d.steps = append(d.steps, &stepDefinition{
		gluePath:    cleanGluePath(gluePath),
		expression:  expression,
		fn:          value,
		withContext: withContext,
	})
	return nil
}

// Before registers a hook run when a scenario whose tags match the filter starts.
func (d *Definitions) Before(gluePath string, tagFilter []string, fn HookFunc) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.before = append(d.before, &hook{gluePath: cleanGluePath(gluePath), tagFilter: tagFilter, fn: fn})
}

// After registers a hook run when a scenario whose tags match the filter is disposed. After hooks run in reverse
// registration order.
func (d *Definitions) After(gluePath string, tagFilter []string, fn HookFunc) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.after = append(d.after, &hook{gluePath: cleanGluePath(gluePath), tagFilter: tagFilter, fn: fn})
}

// visible selects the step definitions and hooks under the code paths. Step definitions are ordered by the
// first code path they are visible under.
func (d *Definitions) visible(codePaths []string, tags []string) (steps []*stepDefinition, before []*hook, after []*hook) {
	d.lock.Lock()
	defer d.lock.Unlock()
	added := map[*stepDefinition]struct{}{}
	for _, codePath := range codePaths {
		for _, s := range d.steps {
			if _, ok := added[s]; ok {
				continue
			}
			if underCodePath(s.gluePath, codePath) {
				added[s] = struct{}{}
				steps = append(steps, s)
			}
		}
	}
	selectHooks := func(hooks []*hook) []*hook {
		var result []*hook
		for _, h := range hooks {
			if !scenario.MatchesTagFilter(tags, h.tagFilter) {
				continue
			}
			for _, codePath := range codePaths {
				if underCodePath(h.gluePath, codePath) {
					result = append(result, h)
					break
				}
			}
		}
		return result
	}
	return steps, selectHooks(d.before), selectHooks(d.after)
}

func supportedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.String, reflect.Int, reflect.Int64, reflect.Float64, reflect.Bool:
		return true
	default:
		return false
	}
}

func cleanGluePath(gluePath string) string {
	return path.Clean("/" + gluePath)
}

// underCodePath returns true if the glue path equals the code path or lies below it.
func underCodePath(gluePath string, codePath string) bool {
	codePath = cleanGluePath(codePath)
	if codePath == "/" || gluePath == codePath {
		return true
	}
	return len(gluePath) > len(codePath) && gluePath[:len(codePath)] == codePath && gluePath[len(codePath)] == '/'
}

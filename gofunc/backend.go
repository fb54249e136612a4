package gofunc

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	"go.arcalot.io/log/v2"
	"go.flow.arcalot.io/stepflow/internal/backend"
	"go.flow.arcalot.io/stepflow/report"
	"go.flow.arcalot.io/stepflow/scenario"
	"golang.org/x/text/language"
)

// Kind is the kind of the Go function backend.
const Kind = "go"

// NewFactory creates a factory creating Go function backends for the given definitions.
func NewFactory(definitions *Definitions) backend.Factory {
	return &factory{definitions: definitions}
}

type factory struct {
	definitions *Definitions
}

func (f factory) Kind() string {
	return Kind
}

func (f factory) Create(logger log.Logger) (backend.Backend, error) {
	return New(logger, f.definitions), nil
}

// New creates a new Go function backend running the given definitions.
func New(logger log.Logger, definitions *Definitions) *Backend {
	return &Backend{
		logger:      logger.WithLabel("backend", Kind),
		definitions: definitions,
		lock:        &sync.Mutex{},
	}
}

// Backend runs step definitions registered as Go functions.
type Backend struct {
	logger      log.Logger
	definitions *Definitions
	lock        *sync.Mutex

	loaded bool
	active []*stepDefinition
	ctx    *Context
}

var _ backend.Backend = &Backend{}

// Kind returns "go".
func (b *Backend) Kind() string {
	return Kind
}

// LoadDefinitions binds the definitions under the code paths and runs the matching before hooks. After hooks
// are scheduled to run when the scenario is disposed.
func (b *Backend) LoadDefinitions(codePaths []string, tags []string) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.loaded {
		return fmt.Errorf("bug: definitions loaded twice without disposing the scenario")
	}
	steps, before, after := b.definitions.visible(codePaths, tags)
	patterns := make(map[string]*stepDefinition, len(steps))
	for _, s := range steps {
		if existing, ok := patterns[s.expression.String()]; ok {
			return &ErrDuplicateStepDefinition{
				Pattern:   s.expression.String(),
				GluePaths: []string{existing.gluePath, s.gluePath},
			}
		}
		patterns[s.expression.String()] = s
	}
	b.logger.Debugf("Loaded %d step definitions from %v.", len(steps), codePaths)

	ctx := newContext(tags)
	for _, h := range after {
		h := h
		ctx.Cleanup(func() error {
			return h.fn(ctx)
		})
	}
	for _, h := range before {
		if err := runHook(h.fn, ctx); err != nil {
			cleanupErr := drain(ctx)
			return errors.Join(fmt.Errorf("before hook failed (%w)", err), cleanupErr)
		}
	}
	b.active = steps
	b.ctx = ctx
	b.loaded = true
	return nil
}

// CanExecute returns true if a bound step definition matches the step name.
func (b *Backend) CanExecute(step scenario.Step) bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.find(step) != nil
}

// Execute calls the first matching step definition with the captured arguments.
func (b *Backend) Execute(step scenario.Step, locale language.Tag) report.Result {
	b.lock.Lock()
	definition := b.find(step)
	ctx := b.ctx
	b.lock.Unlock()
	if definition == nil {
		return report.Result{
			Status:  report.StatusFailed,
			Err:     fmt.Errorf("bug: no step definition matches %q", step.Name),
			Backend: Kind,
		}
	}
	ctx.Locale = locale

	start := time.Now()
	err := call(definition, ctx, step)
	result := report.Result{
		Duration: time.Since(start),
		Backend:  Kind,
	}
	switch {
	case err == nil:
		result.Status = report.StatusPassed
	case errors.Is(err, ErrPending):
		result.Status = report.StatusPending
		result.Err = err
	default:
		result.Status = report.StatusFailed
		result.Err = err
	}
	return result
}

// Snippet returns a Go step definition stub for the step.
func (b *Backend) Snippet(step scenario.Step) string {
	return GenerateSnippet(step)
}

// DisposeScenario runs the after hooks and cleanup functions of the scenario in reverse order and unbinds the
// definitions. All of them are run even if some fail.
func (b *Backend) DisposeScenario() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if !b.loaded {
		return fmt.Errorf("bug: scenario disposed without loaded definitions")
	}
	err := drain(b.ctx)
	b.loaded = false
	b.active = nil
	b.ctx = nil
	return err
}

func (b *Backend) find(step scenario.Step) *stepDefinition {
	if !b.loaded {
		return nil
	}
	for _, s := range b.active {
		if s.expression.MatchString(step.Name) {
			return s
		}
	}
	return nil
}

func drain(ctx *Context) error {
	var errs []error
	ctx.cleanups.Drain(func(fn func() error) {
		if err := runHook(func(*Context) error { return fn() }, ctx); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

func runHook(fn HookFunc, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("hook panicked: %v", r)
		}
	}()
	return fn(ctx)
}

func call(definition *stepDefinition, ctx *Context, step scenario.Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("step definition panicked: %v", r)
		}
	}()
	matches := definition.expression.FindStringSubmatch(step.Name)
	fnType := definition.fn.Type()
	args := make([]reflect.Value, 0, fnType.NumIn())
	if definition.withContext {
		args = append(args, reflect.ValueOf(ctx))
	}
	for i, match := range matches[1:] {
		argType := fnType.In(len(args))
		value, err := convertArgument(match, argType)
		if err != nil {
			return fmt.Errorf("failed to convert argument %d %q to %s (%w)", i+1, match, argType, err)
		}
		args = append(args, value)
	}
	out := definition.fn.Call(args)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

func convertArgument(value string, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.String:
		result.SetString(value)
	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, target.Bits())
		if err != nil {
			return result, err
		}
		result.SetInt(i)
	case reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return result, err
		}
		result.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return result, err
		}
		result.SetBool(b)
	default:
		return result, fmt.Errorf("bug: unsupported argument type %s", target)
	}
	return result, nil
}

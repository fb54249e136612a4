package gofunc

import (
	"go.flow.arcalot.io/stepflow/internal/stack"
	"golang.org/x/text/language"
)

// Context is the per-scenario state shared by the step definitions and hooks of one scenario. It is created when
// the scenario is prepared and discarded when it is disposed, so nothing leaks into the next scenario.
type Context struct {
	// Tags holds the tags of the running scenario.
	Tags []string
	// Locale is the locale the current step is executed with.
	Locale   language.Tag
	values   map[string]any
	cleanups stack.Stack[func() error]
}

func newContext(tags []string) *Context {
	return &Context{
		Tags:     append([]string(nil), tags...),
		values:   map[string]any{},
		cleanups: stack.NewStack[func() error](),
	}
}

// Set stores a value for later steps of the scenario.
func (c *Context) Set(key string, value any) {
	c.values[key] = value
}

// Get returns a value stored by an earlier step.
func (c *Context) Get(key string) (any, bool) {
	value, ok := c.values[key]
	return value, ok
}

// Cleanup registers a function to be called when the scenario is disposed. Cleanup functions run in reverse
// registration order, interleaved with the after hooks.
func (c *Context) Cleanup(fn func() error) {
	c.cleanups.Push(fn)
}

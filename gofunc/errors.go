package gofunc

import (
	"errors"
	"fmt"
)

// ErrPending is returned by step definitions that are not finished yet. The step is reported as pending instead of
// failed. It may be wrapped to add a reason.
var ErrPending = errors.New("step definition is pending")

// ErrInvalidStepDefinition indicates that a step definition could not be registered.
type ErrInvalidStepDefinition struct {
	Pattern string
	Reason  string
}

// Error returns the error message.
func (e ErrInvalidStepDefinition) Error() string {
	return fmt.Sprintf("invalid step definition for %s: %s", e.Pattern, e.Reason)
}

// ErrDuplicateStepDefinition indicates that two step definitions visible to the same scenario have the same pattern.
type ErrDuplicateStepDefinition struct {
	Pattern   string
	GluePaths []string
}

// Error returns the error message.
func (e ErrDuplicateStepDefinition) Error() string {
	return fmt.Sprintf("duplicate step definition for %s found in %s and %s", e.Pattern, e.GluePaths[0], e.GluePaths[1])
}

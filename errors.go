package stepflow

import "fmt"

// ErrNoBackends signals that the runtime has no backend that could run any step.
var ErrNoBackends = fmt.Errorf("no backends available, cannot run any steps")

// ErrBackendLoad signals that a backend failed to load its step definitions while a scenario was prepared.
type ErrBackendLoad struct {
	Kind  string
	Cause error
}

// Error returns the error message.
func (e ErrBackendLoad) Error() string {
	return fmt.Sprintf("failed to load step definitions with the %s backend (%v)", e.Kind, e.Cause)
}

// Unwrap returns the underlying error.
func (e ErrBackendLoad) Unwrap() error {
	return e.Cause
}

// ErrIllegalState signals that an operation was called in a state it is not valid in, e.g. RunStep before a
// scenario was prepared. This always indicates a misuse by the caller.
type ErrIllegalState struct {
	Operation string
	State     string
}

// Error returns the error message.
func (e ErrIllegalState) Error() string {
	return fmt.Sprintf("%s called while the scenario is %s", e.Operation, e.State)
}

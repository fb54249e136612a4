package registry

import "fmt"

// ErrDuplicateBackendKind indicates that there are two backends with the same kind value.
type ErrDuplicateBackendKind struct {
	Kind string
}

// Error returns the error message.
func (e ErrDuplicateBackendKind) Error() string {
	return fmt.Sprintf("duplicate backend for kind value %s found", e.Kind)
}

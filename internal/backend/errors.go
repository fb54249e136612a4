package backend

import (
	"fmt"
	"strings"
)

// ErrBackendNotFound is an error indicating that a backend kind was not found.
type ErrBackendNotFound struct {
	Kind       string
	ValidKinds []string
}

// Error returns the error message.
func (e ErrBackendNotFound) Error() string {
	return fmt.Sprintf(
		"the following backend is not supported: %s (only the following backends are supported: %s)",
		e.Kind,
		strings.Join(e.ValidKinds, ", "),
	)
}

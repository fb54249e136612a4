package yamlglue

import "fmt"

// ErrInvalidDefinitionFile indicates that a step definition file could not be parsed.
type ErrInvalidDefinitionFile struct {
	Path  string
	Cause error
}

// Error returns the error message.
func (e ErrInvalidDefinitionFile) Error() string {
	return fmt.Sprintf("invalid step definition file %s (%v)", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e ErrInvalidDefinitionFile) Unwrap() error {
	return e.Cause
}

// ErrDuplicatePattern indicates that two visible step definitions have the same pattern.
type ErrDuplicatePattern struct {
	Pattern string
	Paths   []string
}

// Error returns the error message.
func (e ErrDuplicatePattern) Error() string {
	return fmt.Sprintf("duplicate step definition for %s found in %s and %s", e.Pattern, e.Paths[0], e.Paths[1])
}

package vmodel

import "fmt"

// PropertyError reports a reflection failure for one named property during
// store construction or save.
type PropertyError struct {
	Property string
	Op       string
	Err      error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %q: %s failed: %v", e.Property, e.Op, e.Err)
}

// Unwrap returns the underlying accessor error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

package markup

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ParseError reports a document that could not be processed as well-formed
// markup. Path names the original document even when the underlying
// diagnostics came from a scratch copy.
type ParseError struct {
	Path  string
	Diags hcl.Diagnostics
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Path, e.Diags.Error())
}

package document

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// DecodeError reports markup that parsed but does not describe a valid
// view. Its diagnostics carry source ranges where one is known.
type DecodeError struct {
	Path  string
	Diags hcl.Diagnostics
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Diags.Error())
}

// errAt builds a DecodeError pinned to a source range.
func (d *decoder) errAt(rng hcl.Range, summary, detail string) error {
	return &DecodeError{
		Path: d.path,
		Diags: hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   detail,
			Subject:  &rng,
		}},
	}
}

// err builds a DecodeError with no source range.
func (d *decoder) err(summary, detail string) error {
	return &DecodeError{
		Path: d.path,
		Diags: hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   detail,
		}},
	}
}

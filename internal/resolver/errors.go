package resolver

import "fmt"

// BindError reports a binding directive that could not be applied to its
// node.
type BindError struct {
	NodeID string
	Target string
	Reason string
	Err    error
}

func (e *BindError) Error() string {
	msg := fmt.Sprintf("node %q", e.NodeID)
	if e.Target != "" {
		msg = fmt.Sprintf("node %q, target %q", e.NodeID, e.Target)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BindError) Unwrap() error { return e.Err }

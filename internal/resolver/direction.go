package resolver

import "strings"

// Direction selects which side of a binding is authoritative for value
// propagation.
type Direction int

const (
	// Bidirectional links both sides; a change in either propagates to the
	// other. It is the default for absent or unrecognized directives.
	Bidirectional Direction = iota
	// ReadFromModel makes the control track the model cell. Edits on the
	// control side do not write back.
	ReadFromModel
	// WriteToModel makes the model cell track the control. Model-side writes
	// do not push to the control.
	WriteToModel
)

// String returns the directive spelling of the direction.
func (d Direction) String() string {
	switch d {
	case ReadFromModel:
		return "read"
	case WriteToModel:
		return "write"
	default:
		return "bidirectional"
	}
}

// ParseDirection maps a directive value to its Direction, ignoring case and
// surrounding space. The second result is false when the value was present
// but not recognized; the direction still falls back to Bidirectional so the
// caller can warn and carry on.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Bidirectional, true
	case "read":
		return ReadFromModel, true
	case "write":
		return WriteToModel, true
	case "bidirectional":
		return Bidirectional, true
	default:
		return Bidirectional, false
	}
}

package cell

// Kind classifies the value a cell carries. The set mirrors the property
// kinds the store can allocate: the five recognized primitives plus the
// opaque-object fallback.
type Kind int

const (
	KindObject Kind = iota
	KindString
	KindInt
	KindInt64
	KindFloat
	KindBool
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// kindOf resolves the kind for a type parameter without reflection. Types
// outside the recognized primitives fall back to KindObject.
func kindOf[T any]() Kind {
	var zero T
	switch any(&zero).(type) {
	case *string:
		return KindString
	case *int:
		return KindInt
	case *int64:
		return KindInt64
	case *float64:
		return KindFloat
	case *bool:
		return KindBool
	default:
		return KindObject
	}
}

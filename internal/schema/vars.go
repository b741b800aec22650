package schema

import "fmt"

// The *Var declarations below are conveniences for the common case of a
// read-write property backed directly by a struct field or variable.

// StringVar declares a read-write string property backed by v.
func StringVar(name string, v *string) Property {
	return String(name, func() string { return *v }, func(s string) { *v = s })
}

// IntVar declares a read-write int property backed by v.
func IntVar(name string, v *int) Property {
	return Int(name, func() int { return *v }, func(n int) { *v = n })
}

// Int64Var declares a read-write int64 property backed by v.
func Int64Var(name string, v *int64) Property {
	return Int64(name, func() int64 { return *v }, func(n int64) { *v = n })
}

// FloatVar declares a read-write float64 property backed by v.
func FloatVar(name string, v *float64) Property {
	return Float(name, func() float64 { return *v }, func(f float64) { *v = f })
}

// BoolVar declares a read-write bool property backed by v.
func BoolVar(name string, v *bool) Property {
	return Bool(name, func() bool { return *v }, func(b bool) { *v = b })
}

// ObjectVar declares a read-write opaque property backed by v. The mutator
// only accepts values of v's concrete type.
func ObjectVar[T any](name string, v *T) Property {
	return Object(name,
		func() any { return *v },
		func(val any) error {
			tv, ok := val.(T)
			if !ok {
				return fmt.Errorf("cannot assign %T to object property %q", val, name)
			}
			*v = tv
			return nil
		})
}

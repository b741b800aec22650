// Package schema declares the bindable-property contract model objects opt
// in to.
//
// Instead of discovering accessors through runtime introspection, a model
// publishes an explicit list of Property declarations. Each Property pairs a
// name and value kind with an accessor and a mutator; either side may be
// nil, marking the property read-only or write-only. The property store only
// materializes cells for complete pairs, so partial declarations are a way
// to expose state without making it bindable.
package schema

import (
	"fmt"

	"github.com/vk/hclview/internal/cell"
)

// Bindable is implemented by model types that publish properties to the
// binding engine.
type Bindable interface {
	Properties() []Property
}

// Property describes one named, typed property of a model object together
// with the accessors that read and write it.
//
// Only this package's constructors can produce a Property, which guarantees
// the accessor's dynamic type always matches the declared kind.
type Property struct {
	name string
	kind cell.Kind
	get  func() any
	set  func(any) error
}

// Name returns the declared property name.
func (p Property) Name() string { return p.name }

// Kind returns the declared value kind.
func (p Property) Kind() cell.Kind { return p.kind }

// Readable reports whether the property has an accessor.
func (p Property) Readable() bool { return p.get != nil }

// Writable reports whether the property has a mutator.
func (p Property) Writable() bool { return p.set != nil }

// Get reads the current value through the accessor. Callers must check
// Readable first; a write-only property has no accessor to call.
func (p Property) Get() any { return p.get() }

// Set writes v through the mutator, reporting a conversion failure when v
// does not carry the declared type.
func (p Property) Set(v any) error { return p.set(v) }

// typed builds a Property for one of the recognized primitive kinds. The
// mutator rejects values of any other dynamic type.
func typed[T any](name string, kind cell.Kind, get func() T, set func(T)) Property {
	p := Property{name: name, kind: kind}
	if get != nil {
		p.get = func() any { return get() }
	}
	if set != nil {
		p.set = func(v any) error {
			tv, ok := v.(T)
			if !ok {
				return fmt.Errorf("cannot assign %T to %s property %q", v, kind, name)
			}
			set(tv)
			return nil
		}
	}
	return p
}

// String declares a string property. A nil accessor or mutator marks the
// property write-only or read-only respectively; the same applies to every
// declaration below.
func String(name string, get func() string, set func(string)) Property {
	return typed(name, cell.KindString, get, set)
}

// Int declares an int property.
func Int(name string, get func() int, set func(int)) Property {
	return typed(name, cell.KindInt, get, set)
}

// Int64 declares an int64 property.
func Int64(name string, get func() int64, set func(int64)) Property {
	return typed(name, cell.KindInt64, get, set)
}

// Float declares a float64 property.
func Float(name string, get func() float64, set func(float64)) Property {
	return typed(name, cell.KindFloat, get, set)
}

// Bool declares a bool property.
func Bool(name string, get func() bool, set func(bool)) Property {
	return typed(name, cell.KindBool, get, set)
}

// Object declares a property whose type the binding engine treats as
// opaque. Its cell carries the value as-is and the mutator reports its own
// conversion failures.
func Object(name string, get func() any, set func(any) error) Property {
	return Property{name: name, kind: cell.KindObject, get: get, set: set}
}

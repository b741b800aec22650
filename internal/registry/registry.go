package registry

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Registry holds dependency instances keyed by their exact type and the named
// controller constructors for a single application instance.
type Registry struct {
	deps  map[reflect.Type]any
	ctors map[string][]reflect.Value
	names []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		deps:  make(map[reflect.Type]any),
		ctors: make(map[string][]reflect.Value),
	}
}

// Add stores instance under its dynamic type. Registering a second instance
// of the same type overwrites the first.
func (r *Registry) Add(instance any) {
	if instance == nil {
		panic("registry: cannot add an untyped nil dependency")
	}
	t := reflect.TypeOf(instance)
	slog.Debug("Registering dependency.", "type", t.String())
	r.deps[t] = instance
}

// AddAs stores instance under the type T instead of its dynamic type. Use it
// to satisfy constructor parameters declared as an interface.
func AddAs[T any](r *Registry, instance T) {
	t := reflect.TypeFor[T]()
	slog.Debug("Registering dependency.", "type", t.String())
	r.deps[t] = instance
}

// Clone returns an independent copy of the registry. Dependencies added to
// the clone do not leak back into the original.
func (r *Registry) Clone() *Registry {
	c := New()
	for t, instance := range r.deps {
		c.deps[t] = instance
	}
	for name, ctors := range r.ctors {
		c.ctors[name] = append([]reflect.Value(nil), ctors...)
	}
	c.names = append([]string(nil), r.names...)
	return c
}

// RegisterController registers the constructors for a named controller. The
// order of ctors is the selection order used by Build. Registering a name
// twice or passing something that is not a constructor function is a
// programmer error and panics.
func (r *Registry) RegisterController(name string, ctors ...any) {
	if name == "" {
		panic("registry: controller name must not be empty")
	}
	if _, exists := r.ctors[name]; exists {
		panic(fmt.Sprintf("controller with name '%s' already registered", name))
	}
	if len(ctors) == 0 {
		panic(fmt.Sprintf("controller '%s' registered without constructors", name))
	}

	compiled := make([]reflect.Value, 0, len(ctors))
	for i, ctor := range ctors {
		fn := reflect.ValueOf(ctor)
		if err := checkConstructor(fn); err != nil {
			panic(fmt.Sprintf("controller '%s' constructor #%d: %v", name, i+1, err))
		}
		compiled = append(compiled, fn)
	}

	slog.Debug("Registering controller.", "name", name, "constructors", len(compiled))
	r.ctors[name] = compiled
	r.names = append(r.names, name)
}

// ControllerNames returns the registered controller names in registration
// order.
func (r *Registry) ControllerNames() []string {
	return append([]string(nil), r.names...)
}

// checkConstructor verifies the shape required of a controller constructor:
// a non-variadic func returning the instance, optionally with a trailing
// error.
func checkConstructor(fn reflect.Value) error {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return fmt.Errorf("expected a function, got %s", kindName(fn))
	}
	t := fn.Type()
	if t.IsVariadic() {
		return fmt.Errorf("variadic constructors are not supported")
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if !t.Out(1).Implements(reflect.TypeFor[error]()) {
			return fmt.Errorf("second return value must be error, got %s", t.Out(1))
		}
	default:
		return fmt.Errorf("must return the instance and an optional error, got %d results", t.NumOut())
	}
	return nil
}

func kindName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

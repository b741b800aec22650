package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/vk/hclview/internal/ctxlog"
)

// Build instantiates the named controller. It walks the registered
// constructors in order and invokes the first one whose parameter types are
// all present in the dependency registry, passing the stored instances in
// parameter order. A constructor that returns a non-nil error aborts the
// build.
func (r *Registry) Build(ctx context.Context, name string) (any, error) {
	logger := ctxlog.FromContext(ctx)

	ctors, ok := r.ctors[name]
	if !ok {
		return nil, &ConstructorError{
			Name: name,
			Err:  fmt.Errorf("controller is not registered"),
		}
	}

	for i, fn := range ctors {
		args, ok := r.argsFor(fn.Type())
		if !ok {
			continue
		}

		logger.Debug("Calling controller constructor.",
			"controller", name, "constructor", i+1, "params", len(args))
		results := fn.Call(args)
		if len(results) == 2 {
			if errResult := results[1].Interface(); errResult != nil {
				return nil, &ConstructorError{Name: name, Err: errResult.(error)}
			}
		}
		return results[0].Interface(), nil
	}

	return nil, &ConstructorError{
		Name: name,
		Err:  fmt.Errorf("no constructor satisfiable from the registry (known types: %s)", r.depTypes()),
	}
}

// argsFor resolves every parameter of t from the dependency registry.
// The second result is false as soon as one parameter type is missing.
func (r *Registry) argsFor(t reflect.Type) ([]reflect.Value, bool) {
	args := make([]reflect.Value, 0, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		instance, ok := r.deps[t.In(i)]
		if !ok {
			return nil, false
		}
		args = append(args, reflect.ValueOf(instance))
	}
	return args, true
}

func (r *Registry) depTypes() string {
	if len(r.deps) == 0 {
		return "none"
	}
	names := make([]string, 0, len(r.deps))
	for t := range r.deps {
		names = append(names, t.String())
	}
	// Map order is random; a stable message matters more than insertion order.
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// ConstructorError reports that a controller could not be instantiated.
type ConstructorError struct {
	Name string
	Err  error
}

func (e *ConstructorError) Error() string {
	return fmt.Sprintf("controller %q: %v", e.Name, e.Err)
}

func (e *ConstructorError) Unwrap() error { return e.Err }

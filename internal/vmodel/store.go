// Package vmodel builds the property store that mirrors a model object as
// observable cells.
//
// The store is constructed once per load: it runs the model's property
// declaration, allocates one typed cell per complete (readable and writable)
// property, and seeds each cell from the model's current value. After
// construction the cell set is fixed; only cell values change. Save pushes
// every cell value back through its property mutator, synchronizing the
// model with whatever the bindings did to the cells, and repeats the pass
// on any attached nested store so one Save persists a whole view hierarchy.
package vmodel

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/hclview/internal/cell"
	"github.com/vk/hclview/internal/ctxlog"
	"github.com/vk/hclview/internal/schema"
)

// Store owns one model object and the immutable name-to-cell mapping built
// from its property declaration.
type Store struct {
	model  schema.Bindable
	props  []schema.Property
	cells  map[string]cell.Observable
	names  []string
	nested []*Store
}

// New builds the store for model. Properties missing either accessor are
// skipped; a duplicate property name is a declaration error.
func New(ctx context.Context, model schema.Bindable) (*Store, error) {
	logger := ctxlog.FromContext(ctx)
	if model == nil {
		return nil, fmt.Errorf("cannot build a property store for a nil model")
	}

	s := &Store{
		model: model,
		cells: make(map[string]cell.Observable),
	}
	for _, p := range model.Properties() {
		if !p.Readable() || !p.Writable() {
			logger.Debug("Skipping incomplete property.",
				"property", p.Name(), "readable", p.Readable(), "writable", p.Writable())
			continue
		}
		if _, exists := s.cells[p.Name()]; exists {
			return nil, fmt.Errorf("model declares property %q twice", p.Name())
		}
		s.cells[p.Name()] = newSeededCell(p)
		s.props = append(s.props, p)
		s.names = append(s.names, p.Name())
	}
	sort.Strings(s.names)

	logger.Debug("Property store built.", "model", fmt.Sprintf("%T", model), "cells", len(s.cells))
	return s, nil
}

// newSeededCell allocates the typed cell for a complete property, seeded
// from its current value. The declaration constructors guarantee the
// accessor's dynamic type matches the kind, so the assertions cannot fail.
func newSeededCell(p schema.Property) cell.Observable {
	switch p.Kind() {
	case cell.KindString:
		return cell.New(p.Get().(string))
	case cell.KindInt:
		return cell.New(p.Get().(int))
	case cell.KindInt64:
		return cell.New(p.Get().(int64))
	case cell.KindFloat:
		return cell.New(p.Get().(float64))
	case cell.KindBool:
		return cell.New(p.Get().(bool))
	default:
		return cell.New[any](p.Get())
	}
}

// Cell returns the cell for the named property.
func (s *Store) Cell(name string) (cell.Observable, bool) {
	c, ok := s.cells[name]
	return c, ok
}

// Names returns the bindable property names in sorted order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of bindable properties.
func (s *Store) Len() int {
	return len(s.cells)
}

// Model returns the wrapped model object.
func (s *Store) Model() schema.Bindable {
	return s.model
}

// AddNested attaches a sub-view's store so that saving this store also
// saves the nested one. Attach order is preserved.
func (s *Store) AddNested(child *Store) {
	s.nested = append(s.nested, child)
}

// Nested returns the attached sub-view stores in attach order.
func (s *Store) Nested() []*Store {
	out := make([]*Store, len(s.nested))
	copy(out, s.nested)
	return out
}

// Save writes every cell's current value back through its property mutator,
// then saves each attached nested store. The pass visits each property once
// in declaration order and stops at the first write failure.
func (s *Store) Save() error {
	for _, p := range s.props {
		obs := s.cells[p.Name()]
		if err := p.Set(obs.Interface()); err != nil {
			return &PropertyError{Property: p.Name(), Op: "save", Err: err}
		}
	}
	for _, child := range s.nested {
		if err := child.Save(); err != nil {
			return err
		}
	}
	return nil
}

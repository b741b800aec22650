// Package resolver walks a decoded view tree and applies the binding
// directives collected during preprocessing.
//
// Resolution is a single pre-order pass. Each visited node is joined with
// its directive record by identifier; a record either attaches a property
// cell to the node's value in the declared direction, or loads a nested
// view into the node using the bound property's current value as the nested
// model. All per-pass state lives in the Input and the local run, so
// repeated resolutions do not contaminate each other.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vk/hclview/internal/cell"
	"github.com/vk/hclview/internal/controls"
	"github.com/vk/hclview/internal/ctxlog"
	"github.com/vk/hclview/internal/markup"
	"github.com/vk/hclview/internal/vmodel"
)

// LoadNestedFunc loads a sub-view document against the given model and
// returns its root node. The engine supplies its own recursive load here.
type LoadNestedFunc func(ctx context.Context, model any, source string) (controls.Node, error)

// Input carries everything one resolution pass needs.
type Input struct {
	// Root is the decoded view tree.
	Root controls.Node
	// Meta is the directive table keyed by node identifier.
	Meta markup.Table
	// Store is the property store built for the load's model.
	Store *vmodel.Store
	// Strict turns control/cell type mismatches into errors instead of
	// logged skips.
	Strict bool
	// LoadNested resolves source directives. Leaving it nil makes any
	// source directive an error.
	LoadNested LoadNestedFunc
}

// Binding describes one successfully applied directive.
type Binding struct {
	NodeID    string
	Target    string
	Direction Direction
	Nested    bool
	Source    string
}

// Resolve applies every directive in in.Meta to the tree under in.Root and
// returns the bindings it established, in visit order.
func Resolve(ctx context.Context, in Input) ([]Binding, error) {
	r := &run{in: in, logger: ctxlog.FromContext(ctx)}
	if err := r.visit(ctx, in.Root); err != nil {
		return nil, err
	}
	r.logger.Debug("Binding resolution finished.", "bindings", len(r.bindings))
	return r.bindings, nil
}

// run is the working state of one resolution pass.
type run struct {
	in       Input
	logger   *slog.Logger
	bindings []Binding
}

// visit joins node with its directive record, then descends into container
// children. A node replaced by a nested view is not descended into; its new
// content was already resolved by the recursive load.
func (r *run) visit(ctx context.Context, node controls.Node) error {
	if rec, ok := r.in.Meta[node.NodeID()]; ok {
		replaced, err := r.apply(ctx, node, rec)
		if err != nil {
			return err
		}
		if replaced {
			return nil
		}
	}

	container, ok := node.(controls.Container)
	if !ok {
		return nil
	}
	for _, child := range container.Children() {
		if err := r.visit(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

// apply dispatches one directive record. The first result reports whether
// the node's content was replaced by a nested view.
func (r *run) apply(ctx context.Context, node controls.Node, rec markup.Record) (bool, error) {
	target := rec[markup.KeyTarget]
	direction, known := ParseDirection(rec[markup.KeyDirection])
	if !known {
		r.logger.Warn("Unrecognized binding direction, using bidirectional.",
			"node", node.NodeID(), "direction", rec[markup.KeyDirection])
	}

	if source := rec[markup.KeySource]; source != "" {
		err := r.loadNested(ctx, node, target, source)
		if err != nil {
			return false, err
		}
		r.bindings = append(r.bindings, Binding{
			NodeID: node.NodeID(), Target: target, Direction: direction,
			Nested: true, Source: source,
		})
		return true, nil
	}

	if target == "" {
		r.logger.Warn("Directive has no target property, skipping node.",
			"node", node.NodeID())
		return false, nil
	}

	obs, ok := r.in.Store.Cell(target)
	if !ok {
		return false, &BindError{
			NodeID: node.NodeID(), Target: target,
			Reason: "property not found in the store",
		}
	}

	if err := r.attach(node, obs, direction); err != nil {
		if r.in.Strict {
			return false, &BindError{
				NodeID: node.NodeID(), Target: target,
				Reason: "control and property cell do not match", Err: err,
			}
		}
		r.logger.Warn("Skipping binding, control and property cell do not match.",
			"node", node.NodeID(), "target", target, "error", err)
		return false, nil
	}

	r.logger.Debug("Binding attached.",
		"node", node.NodeID(), "target", target, "direction", direction.String())
	r.bindings = append(r.bindings, Binding{
		NodeID: node.NodeID(), Target: target, Direction: direction,
	})
	return false, nil
}

// loadNested resolves a source directive: the target property's current
// value becomes the model of a recursively loaded sub-view, and the loaded
// root replaces the container's children.
func (r *run) loadNested(ctx context.Context, node controls.Node, target, source string) error {
	if target == "" {
		return &BindError{
			NodeID: node.NodeID(),
			Reason: fmt.Sprintf("nested view %q needs a target property naming its model", source),
		}
	}
	container, ok := node.(controls.Container)
	if !ok {
		return &BindError{
			NodeID: node.NodeID(), Target: target,
			Reason: fmt.Sprintf("nested views load into containers, not %s controls", node.Kind()),
		}
	}
	if r.in.LoadNested == nil {
		return &BindError{
			NodeID: node.NodeID(), Target: target,
			Reason: "nested view loading is not available in this pass",
		}
	}

	obs, ok := r.in.Store.Cell(target)
	if !ok {
		return &BindError{
			NodeID: node.NodeID(), Target: target,
			Reason: "property not found in the store",
		}
	}

	subRoot, err := r.in.LoadNested(ctx, obs.Interface(), source)
	if err != nil {
		return &BindError{
			NodeID: node.NodeID(), Target: target,
			Reason: fmt.Sprintf("loading nested view %q failed", source), Err: err,
		}
	}

	container.SetChildren([]controls.Node{subRoot})
	r.logger.Debug("Nested view loaded.",
		"node", node.NodeID(), "target", target, "source", source)
	return nil
}

// attach connects the node's value cell to the property cell in the given
// direction, dispatching on the control variant.
func (r *run) attach(node controls.Node, obs cell.Observable, dir Direction) error {
	switch n := node.(type) {
	case *controls.TextInput:
		return attach(n.Value, obs, dir)
	case *controls.Label:
		return attach(n.Value, obs, dir)
	case *controls.NumberInput:
		return attach(n.Value, obs, dir)
	case *controls.Toggle:
		return attach(n.Value, obs, dir)
	case *controls.Slider:
		return attach(n.Value, obs, dir)
	case *controls.DatePicker:
		return attachDate(n.Value, obs, dir)
	default:
		return fmt.Errorf("%s controls have no bindable value", node.Kind())
	}
}

// attach wires a typed control cell to a property cell of the same kind.
func attach[T any](ui *cell.Cell[T], obs cell.Observable, dir Direction) error {
	model, ok := obs.(*cell.Cell[T])
	if !ok {
		return fmt.Errorf("control value is %s, property cell is %s", ui.Kind(), obs.Kind())
	}

	switch dir {
	case ReadFromModel:
		ui.Set(model.Value())
		model.AddListener(func(v T) { ui.Set(v) })
	case WriteToModel:
		ui.AddListener(func(v T) { model.Set(v) })
	default:
		ui.Set(model.Value())
		cell.Link(ui, model)
	}
	return nil
}

// attachDate bridges a date control to an object property holding a
// time.Time. The bridge carries the same suppression guard a typed link has,
// since the two cells subscribe to each other directly.
func attachDate(ui *cell.Cell[time.Time], obs cell.Observable, dir Direction) error {
	model, ok := obs.(*cell.Cell[any])
	if !ok {
		return fmt.Errorf("control value is %s, property cell is %s", ui.Kind(), obs.Kind())
	}
	seed, ok := model.Value().(time.Time)
	if !ok {
		return fmt.Errorf("object property holds %T, want time.Time", model.Value())
	}

	switch dir {
	case ReadFromModel:
		ui.Set(seed)
		model.AddListener(func(v any) {
			// Writes of a non-time value through the object cell are ignored.
			if t, ok := v.(time.Time); ok {
				ui.Set(t)
			}
		})
	case WriteToModel:
		ui.AddListener(func(t time.Time) { model.Set(t) })
	default:
		ui.Set(seed)
		var syncing bool
		guarded := func(apply func()) {
			if syncing {
				return
			}
			syncing = true
			defer func() { syncing = false }()
			apply()
		}
		ui.AddListener(func(t time.Time) {
			guarded(func() { model.Set(t) })
		})
		model.AddListener(func(v any) {
			if t, ok := v.(time.Time); ok {
				guarded(func() { ui.Set(t) })
			}
		})
	}
	return nil
}

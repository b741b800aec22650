package engine

import (
	"context"

	"github.com/vk/hclview/internal/controls"
	"github.com/vk/hclview/internal/markup"
	"github.com/vk/hclview/internal/registry"
	"github.com/vk/hclview/internal/resolver"
	"github.com/vk/hclview/internal/vmodel"
)

// Options configures an Engine.
type Options struct {
	// AttributePrefix is the reserved attribute family of binding
	// directives. An empty prefix means markup.DefaultPrefix.
	AttributePrefix string
	// Strict makes control/cell type mismatches fail the load instead of
	// being logged and skipped.
	Strict bool
}

// Engine loads view documents against model objects. It is stateless apart
// from its configuration; all load state is per call.
type Engine struct {
	registry *registry.Registry
	opts     Options
}

// New creates an engine around the given dependency registry. A nil registry
// is replaced with an empty one, which suits documents that reference no
// controllers.
func New(reg *registry.Registry, opts Options) *Engine {
	if reg == nil {
		reg = registry.New()
	}
	if opts.AttributePrefix == "" {
		opts.AttributePrefix = markup.DefaultPrefix
	}
	return &Engine{registry: reg, opts: opts}
}

// View is the product of one load: the bound control tree plus everything a
// host needs to talk to it afterwards.
type View struct {
	// Root is the view's root control.
	Root controls.Node
	// Store is the property store the bindings are attached to. Saving it
	// pushes the current cell values back into the model.
	Store *vmodel.Store
	// Nodes maps identifiers to their controls.
	Nodes map[string]controls.Node
	// Bindings lists the applied directives in resolution order.
	Bindings []resolver.Binding
	// Controllers lists the controller instances built for the view.
	Controllers []BuiltController
	// Nested lists the sub-views loaded through source directives, in load
	// order. Their stores are attached to Store, so saving the parent store
	// persists nested edits as well.
	Nested []*View
}

// BuiltController pairs a constructed controller with its host node.
type BuiltController struct {
	Name     string
	NodeID   string
	Instance any
}

// Initializer is implemented by controllers that want a hook after the view
// is fully decoded and bound.
type Initializer interface {
	Init(ctx context.Context) error
}

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/hclview/internal/controls"
	"github.com/vk/hclview/internal/ctxlog"
	"github.com/vk/hclview/internal/document"
	"github.com/vk/hclview/internal/markup"
	"github.com/vk/hclview/internal/registry"
	"github.com/vk/hclview/internal/resolver"
	"github.com/vk/hclview/internal/schema"
	"github.com/vk/hclview/internal/vmodel"
)

// Load runs the full pipeline for one view document: preprocess, parse,
// decode, build the property store, construct controllers, resolve bindings.
// The call is synchronous and must stay on the goroutine that owns the
// resulting tree.
func (e *Engine) Load(ctx context.Context, model schema.Bindable, path string) (*View, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading view document.", "path", path, "model", fmt.Sprintf("%T", model))

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	pre, err := markup.Preprocess(ctx, src, path, e.opts.AttributePrefix)
	if err != nil {
		return nil, err
	}

	body, err := parseCleaned(ctx, pre.Cleaned, path)
	if err != nil {
		return nil, err
	}

	tree, err := document.Decode(ctx, body, path)
	if err != nil {
		return nil, err
	}

	store, err := vmodel.New(ctx, model)
	if err != nil {
		return nil, err
	}

	// Every load works against its own registry clone carrying the load's
	// store, so controller constructors can take *vmodel.Store.
	deps := e.registry.Clone()
	deps.Add(store)

	controllers, err := buildControllers(ctx, deps, tree)
	if err != nil {
		return nil, err
	}

	// Sub-views loaded through source directives stay reachable: the view
	// keeps them, and their stores join the parent store's save pass.
	var nested []*View
	bindings, err := resolver.Resolve(ctx, resolver.Input{
		Root:   tree.Root,
		Meta:   pre.Meta,
		Store:  store,
		Strict: e.opts.Strict,
		LoadNested: func(ctx context.Context, model any, source string) (controls.Node, error) {
			sub, err := e.loadNested(ctx, model, path, source)
			if err != nil {
				return nil, err
			}
			store.AddNested(sub.Store)
			nested = append(nested, sub)
			return sub.Root, nil
		},
	})
	if err != nil {
		return nil, err
	}

	for _, c := range controllers {
		init, ok := c.Instance.(Initializer)
		if !ok {
			continue
		}
		if err := init.Init(ctx); err != nil {
			return nil, fmt.Errorf("controller %q init failed: %w", c.Name, err)
		}
	}

	logger.Info("✅ View loaded.", "path", path,
		"nodes", len(tree.ByID), "bindings", len(bindings), "controllers", len(controllers))
	return &View{
		Root:        tree.Root,
		Store:       store,
		Nodes:       tree.ByID,
		Bindings:    bindings,
		Controllers: controllers,
		Nested:      nested,
	}, nil
}

// loadNested runs the full pipeline for a source directive and returns the
// loaded sub-view. The nested document path is resolved relative to the
// parent document's directory, and the bound property's current value
// becomes the nested model.
func (e *Engine) loadNested(ctx context.Context, model any, parentPath, source string) (*View, error) {
	bindable, ok := model.(schema.Bindable)
	if !ok {
		return nil, fmt.Errorf("nested model %T does not declare bindable properties", model)
	}
	nestedPath := source
	if !filepath.IsAbs(source) {
		nestedPath = filepath.Join(filepath.Dir(parentPath), source)
	}
	return e.Load(ctx, bindable, nestedPath)
}

// parseCleaned writes the cleaned markup to a scratch file and parses it
// from there, so the structural parser never sees a reserved attribute.
// Failures are re-attributed to the original document path; the scratch
// location is transient to the process.
func parseCleaned(ctx context.Context, cleaned []byte, origPath string) (*hclsyntax.Body, error) {
	logger := ctxlog.FromContext(ctx)

	scratch, err := os.CreateTemp("", "hclview-*.view")
	if err != nil {
		return nil, &LoadError{Path: origPath, Err: err}
	}
	scratchPath := scratch.Name()
	defer os.Remove(scratchPath)

	if _, err := scratch.Write(cleaned); err != nil {
		scratch.Close()
		return nil, &LoadError{Path: origPath, Err: err}
	}
	if err := scratch.Close(); err != nil {
		return nil, &LoadError{Path: origPath, Err: err}
	}
	logger.Debug("Cleaned markup written to scratch file.",
		"scratch", scratchPath, "original", origPath)

	file, diags := hclparse.NewParser().ParseHCLFile(scratchPath)
	if diags.HasErrors() {
		return nil, &markup.ParseError{Path: origPath, Diags: diags}
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &LoadError{Path: origPath, Err: fmt.Errorf("parser returned a non-native body")}
	}
	return body, nil
}

// buildControllers instantiates every controller the document references, in
// document order, and attaches each instance to its host node.
func buildControllers(ctx context.Context, deps *registry.Registry, tree *document.Tree) ([]BuiltController, error) {
	logger := ctxlog.FromContext(ctx)
	built := make([]BuiltController, 0, len(tree.Controllers))
	for _, ref := range tree.Controllers {
		instance, err := deps.Build(ctx, ref.Name)
		if err != nil {
			return nil, err
		}
		ref.Host.AttachController(instance)
		logger.Debug("Controller attached.", "controller", ref.Name, "node", ref.Host.NodeID())
		built = append(built, BuiltController{
			Name:     ref.Name,
			NodeID:   ref.Host.NodeID(),
			Instance: instance,
		})
	}
	return built, nil
}

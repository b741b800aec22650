package engine

import (
	"context"
	"os"

	"github.com/vk/hclview/internal/controls"
	"github.com/vk/hclview/internal/ctxlog"
	"github.com/vk/hclview/internal/document"
	"github.com/vk/hclview/internal/markup"
)

// Inspection summarizes a view document without binding it to a model.
type Inspection struct {
	Path        string       `yaml:"path"`
	Root        string       `yaml:"root"`
	NodeCount   int          `yaml:"node_count"`
	Identified  int          `yaml:"identified_nodes"`
	Directives  markup.Table `yaml:"directives,omitempty"`
	Synthesized []string     `yaml:"synthesized_ids,omitempty"`
	Controllers []string     `yaml:"controllers,omitempty"`
}

// Inspect preprocesses, parses, and decodes a view document and reports what
// a load would work with. No model, store, or controller is involved, so it
// also serves as a validation pass for documents in isolation.
func (e *Engine) Inspect(ctx context.Context, path string) (*Inspection, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Inspecting view document.", "path", path)

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

	names := make([]string, 0, len(tree.Controllers))
	for _, ref := range tree.Controllers {
		names = append(names, ref.Name)
	}

	return &Inspection{
		Path:        path,
		Root:        tree.Root.Kind().String(),
		NodeCount:   countNodes(tree.Root),
		Identified:  len(tree.ByID),
		Directives:  pre.Meta,
		Synthesized: pre.Synthesized,
		Controllers: names,
	}, nil
}

// countNodes walks the tree and counts every control, labeled or not.
func countNodes(node controls.Node) int {
	total := 1
	if c, ok := node.(controls.Container); ok {
		for _, child := range c.Children() {
			total += countNodes(child)
		}
	}
	return total
}

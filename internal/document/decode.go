// Package document decodes cleaned view markup into the control tree.
//
// Decoding runs after preprocessing, so the body it sees carries no binding
// attributes; whatever identifiers the preprocessor synthesized are ordinary
// block labels by now. The decoder walks the syntax tree by hand because
// labels are optional on every block, which rules out a rigid body schema.
package document

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/hclview/internal/controls"
	"github.com/vk/hclview/internal/ctxlog"
)

// ControllerRef names a controller the markup requested on a host node, in
// document order.
type ControllerRef struct {
	Host controls.ControllerHost
	Name string
}

// Tree is the loaded form of one view document.
type Tree struct {
	Root        controls.Node
	ByID        map[string]controls.Node
	Controllers []ControllerRef
}

// Decode builds the control tree from a parsed document body. The body must
// hold exactly one top-level block, the view root. path names the original
// document for diagnostics.
func Decode(ctx context.Context, body *hclsyntax.Body, path string) (*Tree, error) {
	logger := ctxlog.FromContext(ctx)
	d := &decoder{path: path, byID: make(map[string]controls.Node)}

	if len(body.Attributes) > 0 {
		attr := sortedAttributes(body.Attributes)[0]
		return nil, d.errAt(attr.SrcRange, "unexpected attribute",
			fmt.Sprintf("%q does not belong at the document top level", attr.Name))
	}
	if len(body.Blocks) != 1 {
		return nil, d.err("invalid view document",
			fmt.Sprintf("a view document holds exactly one root block, found %d", len(body.Blocks)))
	}

	root, err := d.block(body.Blocks[0])
	if err != nil {
		return nil, err
	}

	logger.Debug("View document decoded.",
		"path", path, "root", root.Kind().String(),
		"identified_nodes", len(d.byID), "controllers", len(d.refs))
	return &Tree{Root: root, ByID: d.byID, Controllers: d.refs}, nil
}

// decoder carries the lookup table and controller references being built.
type decoder struct {
	path string
	byID map[string]controls.Node
	refs []ControllerRef
}

// block decodes one block into its control variant, recursing through
// containers.
func (d *decoder) block(blk *hclsyntax.Block) (controls.Node, error) {
	id := ""
	switch len(blk.Labels) {
	case 0:
	case 1:
		id = blk.Labels[0]
	default:
		return nil, d.errAt(blk.LabelRanges[1], "too many labels",
			fmt.Sprintf("a %s block takes at most one identifier label", blk.Type))
	}

	var (
		node controls.Node
		err  error
	)
	switch blk.Type {
	case "text_input":
		node, err = d.textInput(id, blk)
	case "label":
		node, err = d.label(id, blk)
	case "number_input":
		node, err = d.numberInput(id, blk)
	case "toggle":
		node, err = d.toggle(id, blk)
	case "slider":
		node, err = d.slider(id, blk)
	case "date_picker":
		node, err = d.datePicker(id, blk)
	case "column":
		col := controls.NewColumn(id)
		node, err = col, d.fillContainer(col, &col.Box, blk)
	case "row":
		row := controls.NewRow(id)
		node, err = row, d.fillContainer(row, &row.Box, blk)
	case "group":
		grp := controls.NewGroup(id)
		node, err = grp, d.fillContainer(grp, &grp.Box, blk)
	default:
		return nil, d.errAt(blk.TypeRange, "unknown block type",
			fmt.Sprintf("%q is not a recognized control", blk.Type))
	}
	if err != nil {
		return nil, err
	}

	if id != "" {
		if _, dup := d.byID[id]; dup {
			return nil, d.errAt(blk.TypeRange, "duplicate node identifier",
				fmt.Sprintf("the identifier %q is already used by another node", id))
		}
		d.byID[id] = node
	}
	return node, nil
}

// fillContainer decodes the shared container surface: the optional
// controller attribute, then the child blocks in document order.
func (d *decoder) fillContainer(host controls.ControllerHost, box *controls.Box, blk *hclsyntax.Block) error {
	for _, attr := range sortedAttributes(blk.Body.Attributes) {
		switch attr.Name {
		case "controller":
			name, err := d.stringAttr(attr)
			if err != nil {
				return err
			}
			box.ControllerName = name
			d.refs = append(d.refs, ControllerRef{Host: host, Name: name})
		default:
			return d.unknownAttribute(blk, attr)
		}
	}

	var children []controls.Node
	for _, child := range blk.Body.Blocks {
		node, err := d.block(child)
		if err != nil {
			return err
		}
		children = append(children, node)
	}
	box.SetChildren(children)
	return nil
}

func (d *decoder) textInput(id string, blk *hclsyntax.Block) (controls.Node, error) {
	node := controls.NewTextInput(id)
	if err := d.noNestedBlocks(blk); err != nil {
		return nil, err
	}
	for _, attr := range sortedAttributes(blk.Body.Attributes) {
		switch attr.Name {
		case "value":
			v, err := d.stringAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Value.Set(v)
		default:
			return nil, d.unknownAttribute(blk, attr)
		}
	}
	return node, nil
}

func (d *decoder) label(id string, blk *hclsyntax.Block) (controls.Node, error) {
	node := controls.NewLabel(id)
	if err := d.noNestedBlocks(blk); err != nil {
		return nil, err
	}
	for _, attr := range sortedAttributes(blk.Body.Attributes) {
		switch attr.Name {
		case "text":
			v, err := d.stringAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Value.Set(v)
		default:
			return nil, d.unknownAttribute(blk, attr)
		}
	}
	return node, nil
}

func (d *decoder) numberInput(id string, blk *hclsyntax.Block) (controls.Node, error) {
	node := controls.NewNumberInput(id)
	if err := d.noNestedBlocks(blk); err != nil {
		return nil, err
	}
	for _, attr := range sortedAttributes(blk.Body.Attributes) {
		switch attr.Name {
		case "value":
			v, err := d.intAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Value.Set(v)
		default:
			return nil, d.unknownAttribute(blk, attr)
		}
	}
	return node, nil
}

func (d *decoder) toggle(id string, blk *hclsyntax.Block) (controls.Node, error) {
	node := controls.NewToggle(id)
	if err := d.noNestedBlocks(blk); err != nil {
		return nil, err
	}
	for _, attr := range sortedAttributes(blk.Body.Attributes) {
		switch attr.Name {
		case "value":
			v, err := d.boolAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Value.Set(v)
		default:
			return nil, d.unknownAttribute(blk, attr)
		}
	}
	return node, nil
}

func (d *decoder) slider(id string, blk *hclsyntax.Block) (controls.Node, error) {
	node := controls.NewSlider(id)
	if err := d.noNestedBlocks(blk); err != nil {
		return nil, err
	}
	for _, attr := range sortedAttributes(blk.Body.Attributes) {
		switch attr.Name {
		case "value":
			v, err := d.floatAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Value.Set(v)
		case "min":
			v, err := d.floatAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Min = v
		case "max":
			v, err := d.floatAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Max = v
		default:
			return nil, d.unknownAttribute(blk, attr)
		}
	}
	return node, nil
}

func (d *decoder) datePicker(id string, blk *hclsyntax.Block) (controls.Node, error) {
	node := controls.NewDatePicker(id)
	if err := d.noNestedBlocks(blk); err != nil {
		return nil, err
	}
	for _, attr := range sortedAttributes(blk.Body.Attributes) {
		switch attr.Name {
		case "value":
			v, err := d.dateAttr(attr)
			if err != nil {
				return nil, err
			}
			node.Value.Set(v)
		default:
			return nil, d.unknownAttribute(blk, attr)
		}
	}
	return node, nil
}

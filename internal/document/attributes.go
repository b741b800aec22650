package document

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// sortedAttributes returns a body's attributes in name order; the parser
// exposes them as a map.
func sortedAttributes(attrs hclsyntax.Attributes) []*hclsyntax.Attribute {
	out := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// literal evaluates attr without any variable scope; only self-contained
// literal expressions are valid attribute values.
func (d *decoder) literal(attr *hclsyntax.Attribute) (cty.Value, error) {
	v, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, &DecodeError{Path: d.path, Diags: diags}
	}
	if v.IsNull() {
		return cty.NilVal, d.errAt(attr.SrcRange, "invalid attribute value",
			fmt.Sprintf("%q must not be null", attr.Name))
	}
	return v, nil
}

// stringAttr evaluates attr as a string.
func (d *decoder) stringAttr(attr *hclsyntax.Attribute) (string, error) {
	v, err := d.literal(attr)
	if err != nil {
		return "", err
	}
	conv, cerr := convert.Convert(v, cty.String)
	if cerr != nil {
		return "", d.errAt(attr.SrcRange, "invalid attribute value",
			fmt.Sprintf("%q must be a string: %s", attr.Name, cerr))
	}
	return conv.AsString(), nil
}

// intAttr evaluates attr as a whole number.
func (d *decoder) intAttr(attr *hclsyntax.Attribute) (int, error) {
	v, err := d.literal(attr)
	if err != nil {
		return 0, err
	}
	var out int
	if cerr := gocty.FromCtyValue(v, &out); cerr != nil {
		return 0, d.errAt(attr.SrcRange, "invalid attribute value",
			fmt.Sprintf("%q must be an integer: %s", attr.Name, cerr))
	}
	return out, nil
}

// floatAttr evaluates attr as a number.
func (d *decoder) floatAttr(attr *hclsyntax.Attribute) (float64, error) {
	v, err := d.literal(attr)
	if err != nil {
		return 0, err
	}
	var out float64
	if cerr := gocty.FromCtyValue(v, &out); cerr != nil {
		return 0, d.errAt(attr.SrcRange, "invalid attribute value",
			fmt.Sprintf("%q must be a number: %s", attr.Name, cerr))
	}
	return out, nil
}

// boolAttr evaluates attr as a boolean.
func (d *decoder) boolAttr(attr *hclsyntax.Attribute) (bool, error) {
	v, err := d.literal(attr)
	if err != nil {
		return false, err
	}
	var out bool
	if cerr := gocty.FromCtyValue(v, &out); cerr != nil {
		return false, d.errAt(attr.SrcRange, "invalid attribute value",
			fmt.Sprintf("%q must be a boolean: %s", attr.Name, cerr))
	}
	return out, nil
}

// dateAttr evaluates attr as an RFC 3339 timestamp string.
func (d *decoder) dateAttr(attr *hclsyntax.Attribute) (time.Time, error) {
	s, err := d.stringAttr(attr)
	if err != nil {
		return time.Time{}, err
	}
	when, perr := time.Parse(time.RFC3339, s)
	if perr != nil {
		return time.Time{}, d.errAt(attr.SrcRange, "invalid attribute value",
			fmt.Sprintf("%q must be an RFC 3339 timestamp: %s", attr.Name, perr))
	}
	return when, nil
}

// noNestedBlocks rejects child blocks on leaf controls.
func (d *decoder) noNestedBlocks(blk *hclsyntax.Block) error {
	if len(blk.Body.Blocks) == 0 {
		return nil
	}
	child := blk.Body.Blocks[0]
	return d.errAt(child.TypeRange, "unexpected block",
		fmt.Sprintf("%s does not accept nested blocks", blk.Type))
}

// unknownAttribute rejects an attribute the block type does not declare.
func (d *decoder) unknownAttribute(blk *hclsyntax.Block, attr *hclsyntax.Attribute) error {
	return d.errAt(attr.NameRange, "unsupported attribute",
		fmt.Sprintf("%s does not support attribute %q", blk.Type, attr.Name))
}

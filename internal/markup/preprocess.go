package markup

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/hclview/internal/ctxlog"
)

// DefaultPrefix is the reserved attribute family used when the caller does
// not configure one.
const DefaultPrefix = "bind"

// The recognized directive keys. An attribute under the reserved prefix
// whose suffix is none of these is a preprocessing error.
const (
	KeyTarget    = "target"
	KeyDirection = "direction"
	KeySource    = "source"
)

// autoIDFormat shapes synthesized node identifiers. The counter is scoped to
// one preprocessing pass.
const autoIDFormat = "auto_id_%d"

// Record maps directive keys to their raw string values for one node.
type Record map[string]string

// Table maps node identifiers to their metadata records. Only nodes that
// carried at least one reserved attribute have an entry.
type Table map[string]Record

// Result is the outcome of one preprocessing pass.
type Result struct {
	// Cleaned is the document text with every reserved attribute removed
	// and synthesized labels written in.
	Cleaned []byte
	// Meta is the identifier-keyed directive table.
	Meta Table
	// Synthesized lists the identifiers this pass generated, in document
	// order.
	Synthesized []string
}

// Preprocess scans src for reserved binding attributes, strips them, and
// assigns stable identifiers to directive-carrying blocks that lack one.
// filename is used for diagnostics only; an empty prefix falls back to
// DefaultPrefix.
func Preprocess(ctx context.Context, src []byte, filename, prefix string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if prefix == "" {
		prefix = DefaultPrefix
	}

	file, diags := hclwrite.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, &ParseError{Path: filename, Diags: diags}
	}

	p := &pass{
		path:     filename,
		reserved: prefix + "_",
		used:     make(map[string]bool),
		meta:     make(Table),
	}

	// Labels are collected up front so synthesized identifiers can never
	// collide with an explicit one later in the document.
	collectLabels(file.Body(), p.used)

	if err := p.walk(file.Body()); err != nil {
		return nil, err
	}

	logger.Debug("Preprocessing pass finished.",
		"path", filename, "records", len(p.meta), "synthesized", len(p.synthesized))
	return &Result{
		Cleaned:     file.Bytes(),
		Meta:        p.meta,
		Synthesized: p.synthesized,
	}, nil
}

// pass holds the working state of one preprocessing run.
type pass struct {
	path        string
	reserved    string
	used        map[string]bool
	meta        Table
	synthesized []string
	counter     int
}

// collectLabels records every explicit block label in the document.
func collectLabels(body *hclwrite.Body, used map[string]bool) {
	for _, blk := range body.Blocks() {
		for _, label := range blk.Labels() {
			used[label] = true
		}
		collectLabels(blk.Body(), used)
	}
}

// walk visits every block in document order, strips its reserved attributes
// into a record, and labels it when the record is non-empty.
func (p *pass) walk(body *hclwrite.Body) error {
	for _, blk := range body.Blocks() {
		rec, err := p.stripAttributes(blk)
		if err != nil {
			return err
		}
		if len(rec) > 0 {
			id, err := p.identify(blk)
			if err != nil {
				return err
			}
			if _, dup := p.meta[id]; dup {
				return p.errorf("duplicate node identifier",
					"the identifier %q is used by more than one directive-carrying block", id)
			}
			p.meta[id] = rec
		}
		if err := p.walk(blk.Body()); err != nil {
			return err
		}
	}
	return nil
}

// stripAttributes removes the block's reserved attributes and returns them
// as a record. Attribute names are visited in sorted order; the underlying
// editor exposes them as a map.
func (p *pass) stripAttributes(blk *hclwrite.Block) (Record, error) {
	attrs := blk.Body().Attributes()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var rec Record
	for _, name := range names {
		if !strings.HasPrefix(name, p.reserved) {
			continue
		}
		key := strings.TrimPrefix(name, p.reserved)
		switch key {
		case KeyTarget, KeyDirection, KeySource:
		default:
			return nil, p.errorf("unknown binding attribute",
				"%q is not a recognized directive; expected %s{%s,%s,%s}",
				name, p.reserved, KeyTarget, KeyDirection, KeySource)
		}
		value, err := p.literalString(attrs[name], name)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			rec = make(Record)
		}
		rec[key] = value
		blk.Body().RemoveAttribute(name)
	}
	return rec, nil
}

// identify returns the block's explicit label, or synthesizes and writes
// back a fresh one when it has none.
func (p *pass) identify(blk *hclwrite.Block) (string, error) {
	if labels := blk.Labels(); len(labels) > 0 {
		return labels[0], nil
	}
	for {
		p.counter++
		id := fmt.Sprintf(autoIDFormat, p.counter)
		if p.used[id] {
			continue
		}
		p.used[id] = true
		blk.SetLabels([]string{id})
		p.synthesized = append(p.synthesized, id)
		return id, nil
	}
}

// literalString evaluates a reserved attribute's expression, which must be
// a self-contained literal, and renders it as a string.
func (p *pass) literalString(attr *hclwrite.Attribute, name string) (string, error) {
	raw := attr.Expr().BuildTokens(nil).Bytes()
	expr, diags := hclsyntax.ParseExpression(raw, p.path, hcl.InitialPos)
	if diags.HasErrors() {
		return "", &ParseError{Path: p.path, Diags: diags}
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", p.errorf("invalid directive value",
			"%q must be a literal value: %s", name, diags.Error())
	}
	if val.IsNull() {
		return "", p.errorf("invalid directive value", "%q must not be null", name)
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", p.errorf("invalid directive value",
			"%q cannot be read as a string: %s", name, err)
	}
	return str.AsString(), nil
}

// errorf builds a ParseError carrying a synthesized diagnostic.
func (p *pass) errorf(summary, detail string, args ...any) error {
	return &ParseError{
		Path: p.path,
		Diags: hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   fmt.Sprintf(detail, args...),
		}},
	}
}

// Package engine runs the view-loading pipeline end to end.
//
// A load reads the document, strips the binding directives, parses the
// cleaned markup from a scratch file, decodes the control tree, builds the
// model's property store, constructs referenced controllers through the
// dependency registry, and resolves the collected directives against the
// tree. Nested views recurse through the same pipeline; every level gets
// fresh per-load state, so loads never contaminate each other.
package engine

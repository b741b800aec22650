// Package markup implements the metadata preprocessing pass over view
// documents.
//
// Binding directives ride on ordinary HCL attributes under a reserved
// prefix (bind_target, bind_direction, bind_source by default). The
// structural decoder must never see them, so Preprocess runs first: it
// strips every reserved attribute into a per-node metadata record, labels
// directive-carrying blocks that have no stable identifier, and returns the
// cleaned document text together with the identifier-keyed metadata table.
// The pass edits the document at the token level. Everything outside the
// reserved attributes survives, though the printer re-aligns attribute
// padding where a removal changed a run.
package markup

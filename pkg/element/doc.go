// Package element defines the document-head element model: the closed set of
// declaration kinds (meta, link, script, style), one attribute record per
// kind, and the Declaration/Sequence types the builder accumulates.
//
// Attributes is a sealed union. Callers narrow a Declaration with the As*
// helpers, which check the kind discriminant and the concrete record
// together. Attribute shape is enforced by the Go type system only; nothing
// in this package validates attribute values.
package element

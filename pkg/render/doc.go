// Package render defines the Renderer contract that serialises a declaration
// sequence into bytes, the per-call RenderOptions, and a name-keyed Registry
// for selecting renderers at runtime.
package render

// Package resolve is an opt-in adapter that applies a base URL to relative
// link and script references. The builder records a base URL but never
// applies it; callers that want resolution run this adapter explicitly.
package resolve

// Package markup renders a declaration sequence as HTML head markup using an
// embedded pongo2 template. Attribute values are HTML-escaped by the template;
// inline script and style bodies are emitted verbatim.
package markup

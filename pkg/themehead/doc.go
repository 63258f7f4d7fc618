// Package themehead turns a go-theme renderer configuration into head
// declarations: a theme-color meta, stylesheet links for theme assets and a
// :root block carrying the theme CSS variables.
package themehead

// Package templnode is the element-tree adapter: it maps every declaration to
// a github.com/a-h/templ component whose props are the declaration attributes
// plus a stable identity key derived from kind and position.
package templnode

// Package templ renders a declaration sequence through the templnode
// element-tree adapter, producing the same markup a templ page would emit for
// the nodes.
package templ

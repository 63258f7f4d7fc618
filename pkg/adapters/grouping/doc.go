// Package grouping reshapes a flat declaration sequence into per-kind buckets
// (meta, links, scripts, styles), the shape router head-configuration
// contracts expect.
package grouping

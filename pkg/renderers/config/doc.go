// Package config provides the structured renderers: JSON and YAML encodings
// of the grouping adapter output, for router head-configuration files.
package config

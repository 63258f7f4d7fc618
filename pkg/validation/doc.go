// Package validation lints declaration sequences for attribute combinations
// browsers ignore or reject, such as a link without href or a script with both
// src and an inline body. Validation never changes how a sequence renders.
package validation

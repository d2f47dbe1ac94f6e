// Package types defines the public data model produced by the decoder:
// hash-backed names, the closed Value union, Document, decode options and
// typed errors.
//
// Design goals:
//   - Names compare by hash only; labels are for display.
//   - Values are plain, immutable-by-convention Go values with no cycles.
//   - Typed errors with stable kinds, byte offsets and parsing stages.
//
// This package has no dependencies beyond the standard library.
package types

// Package transform rewrites the strings inside decoded data values (maps,
// slices and scalars as produced by encoding/json or yaml.v3) before they
// are validated against a [jsonschema.Schema]. The input is never modified.
package transform

// Package loader reads schema documents and data values from JSON or YAML
// into the generic value model accepted by [jsonschema.New] and
// [jsonschema.Schema.Validate].
package loader

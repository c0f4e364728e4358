// Package jsonschema validates generic data values against JSON-Schema-like
// documents.
//
// A schema document is the value model produced by encoding/json or yaml.v3:
// nested map[string]any, []any, strings, numbers, booleans and nil. [New]
// decodes and checks it once; the returned [Schema] is immutable and can be
// shared by any number of goroutines:
//
//	s, err := jsonschema.New(map[string]any{
//	    "type": "object",
//	    "properties": map[string]any{
//	        "name":  map[string]any{"type": "string", "required": true},
//	        "price": map[string]any{"type": "number", "minimum": 35, "maximum": 40},
//	    },
//	})
//
//	err = s.Validate(map[string]any{"name": "Eggs", "price": 34.99})
//	// price: must be no less than 35 (got 34.99)
//
// Validation stops at the first violation. Errors are typed: a
// [*ValidationError] is a defect in the data, a [*SchemaError] a defect in the
// schema document and a [*PathError] a failed [Schema.GetByPath] lookup.
//
// "format" keywords are resolved against a [Registry]. [DefaultRegistry]
// holds the built-in formats; use [WithRegistry] to supply another one.
//
// Sub-packages:
//   - loader – reading schema and data documents from JSON and YAML files
//   - openapi – publishing schemas in OpenAPI 3 documents and a Swagger UI
//   - transform – string normalisation of generic value trees before validation
package jsonschema

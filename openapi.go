package jsonschema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI converts the schema document into an OpenAPI 3 schema. Properties
// declaring required: true are listed in the parent's "required" array.
func (s *Schema) OpenAPI() *openapi3.SchemaRef {
	return NodeToOpenAPI(s.root)
}

// NodeToOpenAPI converts a Node tree into an OpenAPI 3 schema.
func NodeToOpenAPI(n *Node) *openapi3.SchemaRef {
	if n == nil {
		return openapi3.NewSchemaRef("", openapi3.NewSchema())
	}

	schema := openapi3.NewSchema()
	if n.Type != "" {
		schema.Type = &openapi3.Types{string(n.Type)}
	}
	schema.Title = n.Title
	schema.Description = n.Description
	schema.Default = n.Default
	schema.Min = n.Minimum
	schema.Max = n.Maximum
	schema.Pattern = n.Pattern
	schema.Format = n.Format
	schema.Enum = n.Enum
	schema.UniqueItems = n.UniqueItems

	if n.MinLength != nil {
		schema.MinLength = uint64(*n.MinLength)
	}
	if n.MaxLength != nil {
		v := uint64(*n.MaxLength)
		schema.MaxLength = &v
	}
	if n.MinItems != nil {
		schema.MinItems = uint64(*n.MinItems)
	}
	if n.MaxItems != nil {
		v := uint64(*n.MaxItems)
		schema.MaxItems = &v
	}

	if len(n.Properties) > 0 {
		schema.Properties = make(openapi3.Schemas, len(n.Properties))
		for _, name := range sortedKeys(n.Properties) {
			child := n.Properties[name]
			schema.Properties[name] = NodeToOpenAPI(child)
			if child != nil && child.Required {
				schema.Required = append(schema.Required, name)
			}
		}
	}
	if n.Items != nil {
		schema.Items = NodeToOpenAPI(n.Items)
	}

	schema.OneOf = toSchemaRefs(n.OneOf)
	schema.AnyOf = toSchemaRefs(n.AnyOf)
	schema.AllOf = toSchemaRefs(n.AllOf)

	return openapi3.NewSchemaRef("", schema)
}

func toSchemaRefs(nodes []*Node) openapi3.SchemaRefs {
	if len(nodes) == 0 {
		return nil
	}
	refs := make(openapi3.SchemaRefs, len(nodes))
	for i, n := range nodes {
		refs[i] = NodeToOpenAPI(n)
	}
	return refs
}

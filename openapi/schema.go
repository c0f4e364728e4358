package openapi

import (
	"github.com/Gobd/jsonschema"
	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaRef converts s into an OpenAPI schema. A nil s yields an empty
// schema that accepts anything.
func SchemaRef(s *jsonschema.Schema) *openapi3.SchemaRef {
	if s == nil {
		return jsonschema.NodeToOpenAPI(nil)
	}
	return s.OpenAPI()
}

package openapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gobd/jsonschema"
	"github.com/getkin/kin-openapi/openapi3"
)

const contentType = "application/json"

// Response describes an HTTP response with a description and the schemas its
// body may follow.
type Response struct {
	Desc   string
	Bodies []*jsonschema.Schema
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     *jsonschema.Schema   // single request body schema (convenience)
	Requests    []*jsonschema.Schema // multiple request body schemas (oneOf)
	Response    *jsonschema.Schema   // single 200 response schema (convenience)
	Responses   map[string]Response  // full response map (overrides Response if both set)
}

// bodySchema wraps several schemas in a oneOf, or returns the only one.
func bodySchema(schemas []*jsonschema.Schema) *openapi3.SchemaRef {
	refs := make(openapi3.SchemaRefs, len(schemas))
	for i := range schemas {
		refs[i] = SchemaRef(schemas[i])
	}
	if len(refs) == 1 {
		return refs[0]
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
}

// NewRequest builds an OpenAPI request body from one or more schemas.
func NewRequest(schemas ...*jsonschema.Schema) (*openapi3.RequestBodyRef, error) {
	if len(schemas) == 0 {
		return nil, errors.New("no schemas given")
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Content: openapi3.Content{
				contentType: &openapi3.MediaType{Schema: bodySchema(schemas)},
			},
		},
	}, nil
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no responses given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		desc := r.Desc
		resp := &openapi3.Response{Description: &desc}
		if len(r.Bodies) > 0 {
			resp.Content = openapi3.Content{
				contentType: &openapi3.MediaType{Schema: bodySchema(r.Bodies)},
			}
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// Validate checks doc against the OpenAPI 3 specification.
func Validate(ctx context.Context, doc *openapi3.T) error {
	return doc.Validate(ctx)
}

// AddPath adds an operation to the OpenAPI document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	requests := ep.Requests
	if len(requests) == 0 && ep.Request != nil {
		requests = []*jsonschema.Schema{ep.Request}
	}
	if len(requests) > 0 {
		body, err := NewRequest(requests...)
		if err != nil {
			return err
		}
		op.RequestBody = body
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []*jsonschema.Schema{ep.Response}},
		}
	}
	if responses != nil {
		r, err := NewResponse(responses)
		if err != nil {
			return err
		}
		op.Responses = r
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
	return nil
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}

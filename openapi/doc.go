// Package openapi publishes [jsonschema.Schema] documents in OpenAPI 3
// specifications, as request and response bodies of endpoints.
//
// Use [DocBase] to create a base document and register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete]:
//
//	doc := openapi.DocBase("omv-config", "Configuration RPC", "1.0")
//	openapi.Post(doc, "/config/network", "setNetwork", openapi.Endpoint{
//	    Request:  networkSchema,
//	    Response: networkSchema,
//	})
//
// [SwaggerHandler] serves a Swagger UI page and the document itself:
//
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))
package openapi

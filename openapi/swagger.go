package openapi

import (
	"bytes"
	"context"
	"net/http"
	"text/template"

	"github.com/getkin/kin-openapi/openapi3"
)

// swaggerUIVersion pins the swagger-ui-dist release the index page loads.
const swaggerUIVersion = "5.17.14"

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@{{.Version}}/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: "docs.json", dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`))

// SwaggerHandler returns an http.Handler that serves a Swagger UI page for
// doc at the prefix root and the document itself at docs.json. The prefix is
// stripped automatically, so just mount it:
//
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))
func SwaggerHandler(prefix string, doc *openapi3.T) (http.Handler, error) {
	if err := Validate(context.Background(), doc); err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, map[string]any{
		"Title":   doc.Info.Title,
		"Version": swaggerUIVersion,
	}); err != nil {
		return nil, err
	}
	index := buf.Bytes()

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(index)
		case "docs.json", "/docs.json":
			w.Header().Set("Content-Type", contentType)
			_, _ = w.Write(specJSON)
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// SwaggerHandlerMust is like SwaggerHandler but panics on error.
func SwaggerHandlerMust(prefix string, doc *openapi3.T) http.Handler {
	h, err := SwaggerHandler(prefix, doc)
	if err != nil {
		panic(err)
	}
	return h
}

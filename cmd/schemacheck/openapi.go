package main

import (
	"encoding/json"
	"fmt"

	"github.com/Gobd/jsonschema/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"
)

// docFlags describe the single-endpoint document built around the schema.
type docFlags struct {
	title   string
	version string
	path    string
	opID    string
}

func (f *docFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "schemacheck", "API title")
	cmd.Flags().StringVar(&f.version, "version", "1.0.0", "API version")
	cmd.Flags().StringVar(&f.path, "path", "/", "endpoint path")
	cmd.Flags().StringVar(&f.opID, "operation-id", "submit", "operation id")
}

// buildDoc loads --schema and publishes it as the POST body of one endpoint.
func (a *app) buildDoc(f *docFlags) (*openapi3.T, error) {
	s, err := a.loadSchema()
	if err != nil {
		return nil, err
	}
	doc := openapi.DocBase(f.title, s.Get().Description, f.version)
	if err := openapi.Post(doc, f.path, f.opID, openapi.Endpoint{
		Summary: s.Get().Title,
		Request: s,
		Responses: map[string]openapi.Response{
			"204": {Desc: "Accepted"},
			"400": {Desc: "Validation error"},
		},
	}); err != nil {
		return nil, err
	}
	return doc, nil
}

func newOpenAPICmd(a *app) *cobra.Command {
	var f docFlags
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print an OpenAPI 3 document accepting the schema as a POST body",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			doc, err := a.buildDoc(&f)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, string(out))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

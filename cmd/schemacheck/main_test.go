package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Gobd/jsonschema/internal/logging"
	"github.com/Gobd/jsonschema/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"title": "Product",
	"properties": {
		"name": { "type": "string", "required": true, "maxLength": 10 },
		"price": { "type": "number", "minimum": 35, "maximum": 40 }
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", testSchema)
	good := writeFile(t, dir, "good.yaml", "name: Apple\nprice: 38\n")
	bad := writeFile(t, dir, "bad.json", `{"name": "Apple", "price": 41}`)

	out, _, err := run(t, "validate", "--schema", schema, good)
	require.NoError(t, err)
	assert.Equal(t, good+": valid\n", out)

	out, _, err = run(t, "validate", "-s", schema, good, bad)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, good+": valid\n")
	assert.Contains(t, out, bad+": price: must be no greater than 40 (got 41)\n")
}

func TestValidateCommandTrim(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", testSchema)
	padded := writeFile(t, dir, "padded.json", `{"name": "   Apple    "}`)

	_, _, err := run(t, "validate", "--schema", schema, padded)
	require.ErrorIs(t, err, errInvalid)

	out, _, err := run(t, "validate", "--schema", schema, "--trim", padded)
	require.NoError(t, err)
	assert.Equal(t, padded+": valid\n", out)
}

func TestValidateCommandVerboseLogs(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", testSchema)
	bad := writeFile(t, dir, "bad.json", `{"price": 38}`)

	_, stderr, err := run(t, "validate", "--verbose", "--schema", schema, bad)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, stderr, "schema loaded")
	assert.Contains(t, stderr, "document rejected")
	assert.Contains(t, stderr, "err=")
}

func TestValidateCommandRequiresSchema(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.json", `{}`)

	_, _, err := run(t, "validate", data)
	require.EqualError(t, err, "--schema is required")
}

func TestGetCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", testSchema)

	out, _, err := run(t, "get", "--schema", schema, "properties.price")
	require.NoError(t, err)
	assert.Equal(t, "type: number\nminimum: 35\nmaximum: 40\n", out)

	_, _, err = run(t, "get", "--schema", schema, "a.b.c")
	require.EqualError(t, err, `schema path "a.b.c": segment "a" not found (resolved "")`)
}

func TestFormatCommand(t *testing.T) {
	out, _, err := run(t, "format", "host-name", "myvault")
	require.NoError(t, err)
	assert.Equal(t, "\"myvault\" is a valid host-name\n", out)

	_, _, err = run(t, "format", "host-name", "myvault.local")
	require.ErrorIs(t, err, errInvalid)

	out, _, err = run(t, "format", "abc", "abc")
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, `unknown format "abc"`)
}

func TestFormatsCommand(t *testing.T) {
	out, _, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "email\n")
	assert.Contains(t, out, "host-name\n")
	assert.Contains(t, out, "regex\n")
}

func TestOpenAPICommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", testSchema)

	out, _, err := run(t, "openapi", "--schema", schema, "--path", "/products", "--operation-id", "createProduct")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	post := doc["paths"].(map[string]any)["/products"].(map[string]any)["post"].(map[string]any)
	assert.Equal(t, "createProduct", post["operationId"])
	assert.Equal(t, "Product", post["summary"])
}

func TestServeCommandStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.json", testSchema)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd(io.Discard, io.Discard)
	cmd.SetArgs([]string{"serve", "--schema", schema, "--addr", "127.0.0.1:0", "--path", "/products"})
	require.NoError(t, cmd.ExecuteContext(ctx))
}

func TestServeCommandRequiresSchema(t *testing.T) {
	_, _, err := run(t, "serve", "--addr", "127.0.0.1:0")
	require.EqualError(t, err, "--schema is required")
}

func TestServeSwaggerUI(t *testing.T) {
	dir := t.TempDir()
	a := &app{stdout: io.Discard, stderr: io.Discard, log: logging.NewNop(), schemaPath: writeFile(t, dir, "schema.json", testSchema)}

	doc, err := a.buildDoc(&docFlags{title: "Products", version: "1.0.0", path: "/products", opID: "createProduct"})
	require.NoError(t, err)
	mux := http.NewServeMux()
	mux.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- a.serve(ctx, ln, mux) }()

	res, err := http.Get("http://" + ln.Addr().String() + "/swagger/docs.json")
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `"operationId":"createProduct"`)

	cancel()
	require.NoError(t, <-errc)
}

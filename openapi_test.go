package jsonschema_test

import (
	"context"
	"testing"

	"github.com/Gobd/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPI(t *testing.T) {
	s := jsonschema.MustNew(map[string]any{
		"type":  "object",
		"title": "Product",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "required": true, "minLength": 1, "maxLength": 64},
			"price": map[string]any{"type": "number", "minimum": 35, "maximum": 40},
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string", "enum": []any{"fruit", "dairy"}},
				"maxItems":    4,
				"uniqueItems": true,
			},
			"address": map[string]any{
				"oneOf": []any{
					map[string]any{"type": "string", "format": "ipv4"},
					map[string]any{"type": "string", "format": "ipv6"},
				},
			},
		},
	})

	ref := s.OpenAPI()
	require.NotNil(t, ref.Value)
	require.NoError(t, ref.Value.Validate(context.Background()))

	root := ref.Value
	assert.True(t, root.Type.Is("object"))
	assert.Equal(t, "Product", root.Title)
	assert.Equal(t, []string{"name"}, root.Required)
	assert.Len(t, root.Properties, 4)

	name := root.Properties["name"].Value
	assert.Equal(t, uint64(1), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(64), *name.MaxLength)

	price := root.Properties["price"].Value
	assert.InDelta(t, 35.0, *price.Min, 0)
	assert.InDelta(t, 40.0, *price.Max, 0)

	tags := root.Properties["tags"].Value
	assert.True(t, tags.UniqueItems)
	assert.Equal(t, uint64(4), *tags.MaxItems)
	assert.Equal(t, []any{"fruit", "dairy"}, tags.Items.Value.Enum)

	address := root.Properties["address"].Value
	require.Len(t, address.OneOf, 2)
	assert.Equal(t, "ipv6", address.OneOf[1].Value.Format)
}

func TestOpenAPIAgreesOnData(t *testing.T) {
	s := jsonschema.MustNew(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "required": true},
			"price": map[string]any{"type": "number", "minimum": 35, "maximum": 40},
		},
	})
	oas := s.OpenAPI().Value

	for _, data := range []map[string]any{
		{"name": "Apple", "price": 38.0},
		{"name": "Apple"},
	} {
		require.NoError(t, s.Validate(data))
		require.NoError(t, oas.VisitJSON(data))
	}
	for _, data := range []map[string]any{
		{"price": 38.0},
		{"name": "Apple", "price": 41.0},
	} {
		require.Error(t, s.Validate(data))
		require.Error(t, oas.VisitJSON(data))
	}
}

func TestNodeToOpenAPINil(t *testing.T) {
	ref := jsonschema.NodeToOpenAPI(nil)
	require.NotNil(t, ref.Value)
	assert.Nil(t, ref.Value.Type)
}

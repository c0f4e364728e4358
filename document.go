package jsonschema

import (
	"regexp"
)

// Type is the value of the "type" keyword.
type Type string

// Supported types.
const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNull    Type = "null"
)

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeObject, TypeArray, TypeNull:
		return true
	}
	return false
}

// Keywords lists every keyword a Node understands. Anything else in a schema
// document is rejected when the document is decoded.
var Keywords = []string{
	"type", "required", "properties", "items",
	"minimum", "maximum",
	"minLength", "maxLength", "minItems", "maxItems", "uniqueItems",
	"pattern", "enum", "format",
	"oneOf", "anyOf", "allOf",
	"title", "description", "default",
}

type (
	// Node is one level of a schema document. Every supported keyword is an
	// explicit field; a nil pointer or empty value means the keyword is absent.
	//
	// Nodes returned by [Schema.Get] and [Schema.GetByPath] are shared with the
	// Schema and must be treated as read-only.
	Node struct {
		Type        Type             `mapstructure:"type" json:"type,omitempty" yaml:"type,omitempty"`
		Required    bool             `mapstructure:"required" json:"required,omitempty" yaml:"required,omitempty"`
		Properties  map[string]*Node `mapstructure:"properties" json:"properties,omitempty" yaml:"properties,omitempty"`
		Items       *Node            `mapstructure:"items" json:"items,omitempty" yaml:"items,omitempty"`
		Minimum     *float64         `mapstructure:"minimum" json:"minimum,omitempty" yaml:"minimum,omitempty"`
		Maximum     *float64         `mapstructure:"maximum" json:"maximum,omitempty" yaml:"maximum,omitempty"`
		MinLength   *int             `mapstructure:"minLength" json:"minLength,omitempty" yaml:"minLength,omitempty"`
		MaxLength   *int             `mapstructure:"maxLength" json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
		MinItems    *int             `mapstructure:"minItems" json:"minItems,omitempty" yaml:"minItems,omitempty"`
		MaxItems    *int             `mapstructure:"maxItems" json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
		UniqueItems bool             `mapstructure:"uniqueItems" json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
		Pattern     string           `mapstructure:"pattern" json:"pattern,omitempty" yaml:"pattern,omitempty"`
		Enum        []any            `mapstructure:"enum" json:"enum,omitempty" yaml:"enum,omitempty"`
		Format      string           `mapstructure:"format" json:"format,omitempty" yaml:"format,omitempty"`
		OneOf       []*Node          `mapstructure:"oneOf" json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
		AnyOf       []*Node          `mapstructure:"anyOf" json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
		AllOf       []*Node          `mapstructure:"allOf" json:"allOf,omitempty" yaml:"allOf,omitempty"`

		// Annotations, never evaluated.
		Title       string `mapstructure:"title" json:"title,omitempty" yaml:"title,omitempty"`
		Description string `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
		Default     any    `mapstructure:"default" json:"default,omitempty" yaml:"default,omitempty"`

		re *regexp.Regexp
	}

	// Option configures a [Schema].
	Option func(*Schema)
)

// WithRegistry makes the Schema resolve "format" keywords against r instead
// of [DefaultRegistry].
func WithRegistry(r *Registry) Option {
	return func(s *Schema) {
		s.formats = r
	}
}

// hasCombinator reports whether the node declares oneOf, anyOf or allOf.
func (n *Node) hasCombinator() bool {
	return len(n.OneOf) > 0 || len(n.AnyOf) > 0 || len(n.AllOf) > 0
}

// describesObject reports whether "properties" is interpreted on this node.
func (n *Node) describesObject() bool {
	return n.Type == "" || n.Type == TypeObject
}

package jsonschema

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// ParseNode decodes a schema document from the generic value model (as
// produced by encoding/json or yaml.v3) into a Node tree and checks it.
// Keywords are case-sensitive. Unsupported keywords, wrongly typed keyword
// values (including fractional lengths and counts), unknown type names and
// patterns that do not compile are reported as *SchemaError.
func ParseNode(doc map[string]any) (*Node, error) {
	if doc == nil {
		return nil, &SchemaError{Err: errors.New("document is nil")}
	}

	var n Node
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  rejectFraction,
		ErrorUnused: true,
		MatchName:   exactName,
		Result:      &n,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(doc); err != nil {
		return nil, &SchemaError{Err: err}
	}

	if err := checkNode(&n, ""); err != nil {
		return nil, err
	}
	return &n, nil
}

// MustParseNode is like [ParseNode] but panics on error.
func MustParseNode(doc map[string]any) *Node {
	n, err := ParseNode(doc)
	if err != nil {
		panic(err)
	}
	return n
}

func exactName(key, field string) bool {
	return key == field
}

// rejectFraction stops mapstructure from truncating 3.7 to 3 when decoding
// into the integer keywords.
func rejectFraction(_, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	f, ok := toFloat(data)
	if !ok || f == math.Trunc(f) {
		return data, nil
	}
	return nil, fmt.Errorf("expected an integer, got %v", data)
}

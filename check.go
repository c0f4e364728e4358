package jsonschema

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// checkNode verifies the invariants a node tree must hold and compiles its
// patterns. A tree that contains itself is rejected. Nodes shared between
// branches are allowed.
func checkNode(n *Node, path string) error {
	return checkTree(n, path, map[*Node]bool{})
}

// checkTree checks n at path. ancestors holds the nodes on the way down from
// the root.
func checkTree(n *Node, path string, ancestors map[*Node]bool) error { //nolint:revive // one branch per keyword
	if ancestors[n] {
		return &SchemaError{Path: path, Err: errors.New("schema contains itself")}
	}
	ancestors[n] = true
	defer delete(ancestors, n)

	if n.Type != "" && !n.Type.Valid() {
		return &SchemaError{Path: path, Keyword: "type", Err: fmt.Errorf("unknown type %q", n.Type)}
	}

	if n.Minimum != nil && n.Maximum != nil && *n.Minimum > *n.Maximum {
		return &SchemaError{Path: path, Keyword: "minimum", Err: fmt.Errorf("%g is greater than maximum %g", *n.Minimum, *n.Maximum)}
	}
	for _, bound := range []struct {
		keyword string
		v       *int
	}{
		{"minLength", n.MinLength},
		{"maxLength", n.MaxLength},
		{"minItems", n.MinItems},
		{"maxItems", n.MaxItems},
	} {
		if bound.v != nil && *bound.v < 0 {
			return &SchemaError{Path: path, Keyword: bound.keyword, Err: fmt.Errorf("must not be negative, got %d", *bound.v)}
		}
	}
	if n.MinLength != nil && n.MaxLength != nil && *n.MinLength > *n.MaxLength {
		return &SchemaError{Path: path, Keyword: "minLength", Err: fmt.Errorf("%d is greater than maxLength %d", *n.MinLength, *n.MaxLength)}
	}
	if n.MinItems != nil && n.MaxItems != nil && *n.MinItems > *n.MaxItems {
		return &SchemaError{Path: path, Keyword: "minItems", Err: fmt.Errorf("%d is greater than maxItems %d", *n.MinItems, *n.MaxItems)}
	}

	if n.Enum != nil && len(n.Enum) == 0 {
		return &SchemaError{Path: path, Keyword: "enum", Err: errors.New("must list at least one value")}
	}

	if n.Pattern != "" {
		re, err := regexp.Compile(n.Pattern)
		if err != nil {
			return &SchemaError{Path: path, Keyword: "pattern", Err: err}
		}
		n.re = re
	}

	for _, name := range sortedKeys(n.Properties) {
		child := n.Properties[name]
		childPath := joinPath(path, "properties", name)
		if child == nil {
			return &SchemaError{Path: childPath, Err: errors.New("property schema is null")}
		}
		if err := checkTree(child, childPath, ancestors); err != nil {
			return err
		}
	}

	if n.Items != nil {
		if err := checkTree(n.Items, joinPath(path, "items"), ancestors); err != nil {
			return err
		}
	}

	for _, group := range []struct {
		keyword string
		nodes   []*Node
	}{
		{"oneOf", n.OneOf},
		{"anyOf", n.AnyOf},
		{"allOf", n.AllOf},
	} {
		for i, child := range group.nodes {
			childPath := joinPath(path, group.keyword, strconv.Itoa(i))
			if child == nil {
				return &SchemaError{Path: childPath, Err: errors.New("alternative schema is null")}
			}
			if err := checkTree(child, childPath, ancestors); err != nil {
				return err
			}
		}
	}
	return nil
}

package jsonschema

import (
	"regexp"
)

// checkPattern requires a string value to contain a match of the node's
// pattern, written in RE2 syntax. The pattern is not anchored; use ^ and $ to
// match the whole value.
func checkPattern(n *Node, value any, loc location) error {
	if n.Pattern == "" {
		return nil
	}
	re := n.re
	if re == nil {
		// Nodes built as literals skip ParseNode and arrive uncompiled.
		var err error
		if re, err = regexp.Compile(n.Pattern); err != nil {
			return &SchemaError{Path: loc.schema, Keyword: "pattern", Err: err}
		}
	}
	s, _ := toString(value)
	if re.MatchString(s) {
		return nil
	}
	return validationError(loc.data, "pattern", value, ErrPatternMismatch.SetParams(map[string]any{
		"pattern": n.Pattern,
	}))
}

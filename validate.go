package jsonschema

import (
	"errors"
	"strconv"
)

// location tracks where the evaluator is, both in the data (for validation
// errors) and in the schema document (for schema errors).
type location struct {
	data   string
	schema string
}

func (l location) property(name string) location {
	return location{data: joinPath(l.data, name), schema: joinPath(l.schema, "properties", name)}
}

func (l location) item(i int) location {
	return location{data: joinPath(l.data, strconv.Itoa(i)), schema: joinPath(l.schema, "items")}
}

func (l location) alternative(keyword string, i int) location {
	return location{data: l.data, schema: joinPath(l.schema, keyword, strconv.Itoa(i))}
}

// checkFunc evaluates a node against a value.
type checkFunc func(n *Node, value any, loc location) error

// evaluator holds the read-only state of a single Validate or CheckFormat
// call.
type evaluator struct {
	formats *Registry
}

// check applies every constraint of n to value and returns the first
// violation. Keywords are evaluated in a fixed order: combinators, type,
// required, bounds, lengths, pattern, enum, format, then nested properties
// and items.
func (e *evaluator) check(n *Node, value any, loc location) error {
	if n.hasCombinator() {
		return e.combine(n, value, loc, e.check)
	}

	if err := checkType(n, value, loc); err != nil {
		return err
	}

	k := kindOf(value)
	object := k == kindObject && n.describesObject()
	if object {
		if err := checkRequired(n, value, loc); err != nil {
			return err
		}
	}

	switch k {
	case kindNumber:
		if err := checkBounds(n, value, loc); err != nil {
			return err
		}
	case kindString:
		if err := checkLength(n, value, loc); err != nil {
			return err
		}
		if err := checkPattern(n, value, loc); err != nil {
			return err
		}
	case kindArray:
		if err := checkLength(n, value, loc); err != nil {
			return err
		}
		if err := checkItemCount(n, value, loc); err != nil {
			return err
		}
		if err := checkUnique(n, value, loc); err != nil {
			return err
		}
	}

	if err := checkEnum(n, value, loc); err != nil {
		return err
	}

	if k == kindString && n.Format != "" {
		if err := e.formats.apply(n.Format, value, loc); err != nil {
			return err
		}
	}

	if object {
		if err := e.checkProperties(n, value, loc); err != nil {
			return err
		}
	}
	if k == kindArray && n.Items != nil {
		return e.checkItems(n, value, loc)
	}
	return nil
}

// checkFormat evaluates only the format keywords of n, following
// combinators.
func (e *evaluator) checkFormat(n *Node, value any, loc location) error {
	if n.hasCombinator() {
		return e.combine(n, value, loc, e.checkFormat)
	}
	if n.Format == "" {
		return nil
	}
	return e.formats.apply(n.Format, value, loc)
}

// combine evaluates oneOf, anyOf and allOf. oneOf and anyOf succeed when at
// least one alternative succeeds; allOf requires all of them. Schema errors
// from any child are returned as is.
func (e *evaluator) combine(n *Node, value any, loc location, fn checkFunc) error {
	for _, group := range []struct {
		keyword string
		nodes   []*Node
	}{
		{"oneOf", n.OneOf},
		{"anyOf", n.AnyOf},
	} {
		if len(group.nodes) == 0 {
			continue
		}
		matched, err := e.matchAny(group.keyword, group.nodes, value, loc, fn)
		if err != nil {
			return err
		}
		if !matched {
			return validationError(loc.data, group.keyword, value, ErrNoAlternative.SetParams(map[string]any{
				"count": len(group.nodes),
			}))
		}
	}

	for i, child := range n.AllOf {
		if err := fn(child, value, loc.alternative("allOf", i)); err != nil {
			return err
		}
	}
	return nil
}

// matchAny reports whether value satisfies at least one of nodes. Validation
// failures of individual alternatives are outcomes, not errors.
func (e *evaluator) matchAny(keyword string, nodes []*Node, value any, loc location, fn checkFunc) (bool, error) {
	for i, child := range nodes {
		err := fn(child, value, loc.alternative(keyword, i))
		if err == nil {
			return true, nil
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return false, err
		}
	}
	return false, nil
}

func checkType(n *Node, value any, loc location) error {
	if n.Type == "" {
		return nil
	}
	k := kindOf(value)
	var ok bool
	switch n.Type {
	case TypeString:
		ok = k == kindString
	case TypeNumber:
		ok = k == kindNumber
	case TypeInteger:
		ok = k == kindNumber && isInteger(value)
	case TypeBoolean:
		ok = k == kindBoolean
	case TypeObject:
		ok = k == kindObject
	case TypeArray:
		ok = k == kindArray
	case TypeNull:
		ok = k == kindNull
	default:
		return &SchemaError{Path: loc.schema, Keyword: "type", Err: errors.New("unknown type " + strconv.Quote(string(n.Type)))}
	}
	if ok {
		return nil
	}
	return validationError(loc.data, "type", value, ErrTypeInvalid.SetParams(map[string]any{"type": n.Type}))
}

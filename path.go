package jsonschema

import (
	"strconv"
	"strings"
)

// pathCursor is the position reached while walking a dotted path: a node, a
// properties mapping or a combinator list.
type pathCursor struct {
	node  *Node
	props map[string]*Node
	list  []*Node
}

// resolvePath walks path from root. At a node, the segments "properties",
// "items", "oneOf", "anyOf" and "allOf" select that keyword when the node
// declares it; any other segment is looked up in the node's properties.
// Inside a properties mapping a segment is a property name, inside a
// combinator list a zero-based index.
func resolvePath(root *Node, path string) (*Node, error) {
	if path == "" {
		return root, nil
	}

	segments := strings.Split(path, ".")
	cur := pathCursor{node: root}
	for i, seg := range segments {
		next, ok := cur.step(seg)
		if !ok {
			return nil, &PathError{Path: path, Segment: seg, Traversed: strings.Join(segments[:i], ".")}
		}
		cur = next
	}

	if cur.node == nil {
		last := len(segments) - 1
		return nil, &PathError{
			Path:      path,
			Segment:   segments[last],
			Traversed: strings.Join(segments[:last], "."),
			Reason:    "does not address a schema node",
		}
	}
	return cur.node, nil
}

func (c pathCursor) step(seg string) (pathCursor, bool) {
	switch {
	case c.props != nil:
		child, ok := c.props[seg]
		return pathCursor{node: child}, ok && child != nil
	case c.list != nil:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(c.list) || c.list[i] == nil {
			return pathCursor{}, false
		}
		return pathCursor{node: c.list[i]}, true
	}

	n := c.node
	switch {
	case seg == "properties" && len(n.Properties) > 0:
		return pathCursor{props: n.Properties}, true
	case seg == "items" && n.Items != nil:
		return pathCursor{node: n.Items}, true
	case seg == "oneOf" && len(n.OneOf) > 0:
		return pathCursor{list: n.OneOf}, true
	case seg == "anyOf" && len(n.AnyOf) > 0:
		return pathCursor{list: n.AnyOf}, true
	case seg == "allOf" && len(n.AllOf) > 0:
		return pathCursor{list: n.AllOf}, true
	}
	// A keyword the node does not declare may still name a property.
	child, ok := n.Properties[seg]
	return pathCursor{node: child}, ok && child != nil
}

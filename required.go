package jsonschema

// checkRequired fails on the first property (in name order) that declares
// required: true and is missing from the object value.
func checkRequired(n *Node, value any, loc location) error {
	for _, name := range sortedKeys(n.Properties) {
		child := n.Properties[name]
		if child == nil || !child.Required {
			continue
		}
		if _, ok := lookup(value, name); !ok {
			return validationError(loc.property(name).data, "required", nil, ErrPropertyRequired)
		}
	}
	return nil
}

package jsonschema

// checkProperties recurses into every declared property present in the
// object value, in name order. Members without a declared schema are not
// checked.
func (e *evaluator) checkProperties(n *Node, value any, loc location) error {
	for _, name := range sortedKeys(n.Properties) {
		child := n.Properties[name]
		if child == nil {
			continue
		}
		member, ok := lookup(value, name)
		if !ok {
			continue
		}
		if err := e.check(child, member, loc.property(name)); err != nil {
			return err
		}
	}
	return nil
}

// checkItems applies the items schema to each array element in order.
func (e *evaluator) checkItems(n *Node, value any, loc location) error {
	for i, item := range elements(value) {
		if err := e.check(n.Items, item, loc.item(i)); err != nil {
			return err
		}
	}
	return nil
}

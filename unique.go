package jsonschema

// checkUnique fails on the first array element equal to an earlier one when
// uniqueItems is set.
func checkUnique(n *Node, value any, loc location) error {
	if !n.UniqueItems {
		return nil
	}
	items := elements(value)
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if equal(items[i], items[j]) {
				return validationError(loc.data, "uniqueItems", value, ErrItemsNotUnique.SetParams(map[string]any{
					"index": i,
				}))
			}
		}
	}
	return nil
}

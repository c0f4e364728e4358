package jsonschema

import (
	"fmt"
	"strings"
)

// checkEnum requires value to equal one of the declared enum members.
func checkEnum(n *Node, value any, loc location) error {
	if len(n.Enum) == 0 {
		return nil
	}
	for _, member := range n.Enum {
		if equal(member, value) {
			return nil
		}
	}
	want := make([]string, len(n.Enum))
	for i := range n.Enum {
		want[i] = fmt.Sprintf("'%v'", n.Enum[i])
	}
	return validationError(loc.data, "enum", value, ErrEnumInvalid.SetParams(map[string]any{
		"values": strings.Join(want, ", "),
	}))
}

package jsonschema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// checkBounds applies the inclusive minimum and maximum to a numeric value.
func checkBounds(n *Node, value any, loc location) error {
	f, ok := toFloat(value)
	if !ok {
		return nil
	}
	if n.Minimum != nil && f < *n.Minimum {
		return validationError(loc.data, "minimum", value, validation.ErrMinGreaterEqualThanRequired.SetParams(map[string]any{
			"threshold": *n.Minimum,
		}))
	}
	if n.Maximum != nil && f > *n.Maximum {
		return validationError(loc.data, "maximum", value, validation.ErrMaxLessEqualThanRequired.SetParams(map[string]any{
			"threshold": *n.Maximum,
		}))
	}
	return nil
}

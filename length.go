package jsonschema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// checkLength applies minLength and maxLength. Strings are measured in runes,
// arrays in elements.
func checkLength(n *Node, value any, loc location) error {
	if n.MinLength == nil && n.MaxLength == nil {
		return nil
	}
	l, ok := length(value)
	if !ok {
		return nil
	}
	return checkCount(l, n.MinLength, n.MaxLength, "minLength", "maxLength", value, loc)
}

// checkItemCount applies minItems and maxItems to an array.
func checkItemCount(n *Node, value any, loc location) error {
	if n.MinItems == nil && n.MaxItems == nil {
		return nil
	}
	return checkCount(len(elements(value)), n.MinItems, n.MaxItems, "minItems", "maxItems", value, loc)
}

func checkCount(l int, lo, hi *int, loKeyword, hiKeyword string, value any, loc location) error {
	if lo != nil && l < *lo {
		return validationError(loc.data, loKeyword, value, validation.ErrLengthTooShort.SetParams(map[string]any{
			"min": *lo,
		}))
	}
	if hi != nil && l > *hi {
		return validationError(loc.data, hiKeyword, value, validation.ErrLengthTooLong.SetParams(map[string]any{
			"max": *hi,
		}))
	}
	return nil
}

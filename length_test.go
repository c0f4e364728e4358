package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckLength(t *testing.T) {
	n := &Node{MinLength: ptr(0), MaxLength: ptr(100)}

	err := checkLength(n, "Richard-Breslau-Straße 2, 12345 Hintertupfingen", location{})
	require.NoError(t, err)

	// 100 runes, 200 bytes.
	err = checkLength(n, stringOf('ß', 100), location{})
	require.NoError(t, err)

	err = checkLength(n, stringOf('ß', 101), location{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "maxLength", verr.Keyword)
	require.Equal(t, "validation_length_too_long", verr.Code())
}

func TestCheckLengthIgnoresOtherKinds(t *testing.T) {
	n := &Node{MinLength: ptr(2)}
	require.NoError(t, checkLength(n, 1, location{}))
	require.NoError(t, checkLength(n, map[string]any{}, location{}))
	require.Error(t, checkLength(n, []int{1}, location{}))
}

func TestCheckItemCount(t *testing.T) {
	n := &Node{MinItems: ptr(1), MaxItems: ptr(2)}
	require.NoError(t, checkItemCount(n, []string{"a"}, location{}))
	require.NoError(t, checkItemCount(n, [2]int{1, 2}, location{}))

	var verr *ValidationError
	require.ErrorAs(t, checkItemCount(n, []any{}, location{data: "tags"}), &verr)
	require.Equal(t, "minItems", verr.Keyword)
	require.Equal(t, "validation_length_too_short", verr.Code())
	require.EqualError(t, verr, "tags: the length must be no less than 1 (got [])")

	require.ErrorAs(t, checkItemCount(n, []any{1, 2, 3}, location{}), &verr)
	require.Equal(t, "maxItems", verr.Keyword)
}

func stringOf(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

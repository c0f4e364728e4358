package jsonschema

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	s := "x"
	var nilPtr *string
	tests := []struct {
		value any
		want  kind
	}{
		{value: nil, want: kindNull},
		{value: nilPtr, want: kindNull},
		{value: true, want: kindBoolean},
		{value: 1, want: kindNumber},
		{value: uint16(1), want: kindNumber},
		{value: 1.5, want: kindNumber},
		{value: json.Number("1"), want: kindNumber},
		{value: "a", want: kindString},
		{value: &s, want: kindString},
		{value: map[string]any{}, want: kindObject},
		{value: map[int]any{}, want: kindInvalid},
		{value: []any{}, want: kindArray},
		{value: [0]int{}, want: kindArray},
		{value: struct{}{}, want: kindInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kindOf(tt.value), "%T", tt.value)
	}
}

func TestIsInteger(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{value: 1, want: true},
		{value: int64(-7), want: true},
		{value: 2.0, want: true},
		{value: float32(2.5), want: false},
		{value: json.Number("10"), want: true},
		{value: json.Number("10.0"), want: true},
		{value: json.Number("10.5"), want: false},
		{value: math.Inf(1), want: false},
		{value: math.NaN(), want: false},
		{value: "1", want: false},
		{value: nil, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isInteger(tt.value), "%T(%v)", tt.value, tt.value)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{a: 1, b: 1.0, want: true},
		{a: json.Number("2"), b: uint8(2), want: true},
		{a: 1, b: "1", want: false},
		{a: true, b: true, want: true},
		{a: true, b: 1, want: false},
		{a: nil, b: nil, want: true},
		{a: nil, b: "", want: false},
		{a: "a", b: "a", want: true},
		{a: []any{1, "a"}, b: []any{1.0, "a"}, want: true},
		{a: []any{1, "a"}, b: []any{"a", 1}, want: false},
		{a: []any{1}, b: []any{1, 1}, want: false},
		{a: []string{"x"}, b: []any{"x"}, want: true},
		{a: map[string]any{"a": 1, "b": []any{}}, b: map[string]any{"b": []any{}, "a": 1.0}, want: true},
		{a: map[string]any{"a": 1}, b: map[string]any{"a": 1, "b": nil}, want: false},
		{a: map[string]string{"a": "x"}, b: map[string]any{"a": "x"}, want: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v=%v", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, equal(tt.a, tt.b))
			assert.Equal(t, tt.want, equal(tt.b, tt.a))
		})
	}
}

func TestLength(t *testing.T) {
	l, ok := length("äöü")
	assert.True(t, ok)
	assert.Equal(t, 3, l)

	l, ok = length([]int{1, 2})
	assert.True(t, ok)
	assert.Equal(t, 2, l)

	_, ok = length(json.Number("12"))
	assert.False(t, ok)

	_, ok = length(12)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	v, ok := lookup(map[string]int{"a": 1}, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = lookup(map[string]any{"a": 1}, "b")
	assert.False(t, ok)

	_, ok = lookup([]any{1}, "0")
	assert.False(t, ok)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "a", joinPath("", "a"))
	assert.Equal(t, "a.b.c", joinPath("a", "b", "c"))
	assert.Equal(t, "properties.x", joinPath("", "properties", "x"))
	assert.Equal(t, "a", joinPath("a"))
}

func TestRegexLiteral(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{in: `^\d+$`, want: `^\d+$`},
		{in: `/^\d+$/`, want: `^\d+$`},
		{in: `/abc/i`, want: `(?i)abc`},
		{in: `/a.b/ms`, want: `(?ms)a.b`},
		{in: `/a/b/`, want: `a/b`},
		{in: `/`, want: `/`},
		{in: `/abc/g`, wantErr: true},
	}
	for _, tt := range tests {
		got, err := regexLiteral(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

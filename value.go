package jsonschema

import (
	"encoding/json"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// kind is the JSON kind of a data value.
type kind int

const (
	kindInvalid kind = iota
	kindNull
	kindBoolean
	kindNumber
	kindString
	kindObject
	kindArray
)

func (k kind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBoolean:
		return "boolean"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	case kindObject:
		return "object"
	case kindArray:
		return "array"
	}
	return "unsupported"
}

var (
	jsonNumberType = reflect.TypeOf(json.Number(""))
	floatType      = reflect.TypeOf(float64(0))
)

// indirect follows pointers and interfaces. The returned value is invalid
// when v is nil or ends in a nil pointer.
func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func kindOf(v any) kind {
	rv := indirect(v)
	if !rv.IsValid() {
		return kindNull
	}
	if rv.Type() == jsonNumberType {
		return kindNumber
	}
	switch rv.Kind() {
	case reflect.Bool:
		return kindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.String:
		return kindString
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return kindObject
		}
	case reflect.Slice, reflect.Array:
		return kindArray
	}
	return kindInvalid
}

// toFloat converts a numeric value (any Go number kind or json.Number).
func toFloat(v any) (float64, bool) {
	rv := indirect(v)
	if !rv.IsValid() {
		return 0, false
	}
	if rv.Type() == jsonNumberType {
		f, err := strconv.ParseFloat(rv.String(), 64)
		return f, err == nil
	}
	if kindOf(rv.Interface()) != kindNumber || !rv.Type().ConvertibleTo(floatType) {
		return 0, false
	}
	return rv.Convert(floatType).Float(), true
}

// isInteger reports whether v is a number without a fractional part.
func isInteger(v any) bool {
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	if rv.Type() == jsonNumberType {
		if _, err := strconv.ParseInt(rv.String(), 10, 64); err == nil {
			return true
		}
	}
	f, ok := toFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}

func toString(v any) (string, bool) {
	rv := indirect(v)
	if !rv.IsValid() || rv.Kind() != reflect.String || rv.Type() == jsonNumberType {
		return "", false
	}
	return rv.String(), true
}

// lookup returns the member key of an object value.
func lookup(v any, key string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		e, found := m[key]
		return e, found
	}
	rv := indirect(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	e := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !e.IsValid() {
		return nil, false
	}
	return e.Interface(), true
}

// objectKeys returns the member names of an object value.
func objectKeys(v any) []string {
	rv := indirect(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return keys
}

// elements returns the elements of an array value.
func elements(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := indirect(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range rv.Len() {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// length is the rune count of a string or the element count of an array.
func length(v any) (int, bool) {
	if s, ok := toString(v); ok {
		return utf8.RuneCountInString(s), true
	}
	if kindOf(v) == kindArray {
		return indirect(v).Len(), true
	}
	return 0, false
}

// equal compares two values the way JSON does: numbers by numeric value
// regardless of Go type, objects and arrays member by member.
func equal(a, b any) bool {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case kindNull:
		return true
	case kindBoolean:
		return indirect(a).Bool() == indirect(b).Bool()
	case kindNumber:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return fa == fb
	case kindString:
		sa, _ := toString(a)
		sb, _ := toString(b)
		return sa == sb
	case kindObject:
		ak, bk := objectKeys(a), objectKeys(b)
		if !slices.Equal(ak, bk) {
			return false
		}
		for _, k := range ak {
			av, _ := lookup(a, k)
			bv, _ := lookup(b, k)
			if !equal(av, bv) {
				return false
			}
		}
		return true
	case kindArray:
		ae, be := elements(a), elements(b)
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !equal(ae[i], be[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// joinPath appends segments to a dotted path.
func joinPath(base string, segments ...string) string {
	if base == "" {
		return strings.Join(segments, ".")
	}
	if len(segments) == 0 {
		return base
	}
	return base + "." + strings.Join(segments, ".")
}

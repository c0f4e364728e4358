package transform

import (
	"strings"
)

// TrimSpace returns a copy of v with [strings.TrimSpace] applied to every
// string, including map values and slice elements at any depth.
func TrimSpace(v any) any {
	return StringFunc(v, strings.TrimSpace)
}

// ToLower returns a copy of v with [strings.ToLower] applied to every string.
func ToLower(v any) any {
	return StringFunc(v, strings.ToLower)
}

// Multi runs fns over v in order, feeding each result to the next.
func Multi(v any, fns ...func(any) any) any {
	for _, f := range fns {
		v = f(v)
	}
	return v
}

// StringFunc returns a copy of v with f applied to every string. Map keys are
// left untouched. Values of other types are returned as is.
func StringFunc(v any, f func(string) string) any {
	switch t := v.(type) {
	case string:
		return f(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = StringFunc(e, f)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = StringFunc(e, f)
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = f(e)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, e := range t {
			out[k] = f(e)
		}
		return out
	}
	return v
}

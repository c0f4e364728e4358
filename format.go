package jsonschema

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type (
	// Format binds a format name, as used by the "format" keyword, to the
	// rule a string value must satisfy.
	Format struct {
		Name string
		Rule validation.Rule
	}

	// Registry maps format names to rules. A Registry never changes after it
	// is built, so one value can be shared by any number of schemas and
	// goroutines. Use [Registry.With] to derive an extended registry.
	Registry struct {
		rules map[string]validation.Rule
	}
)

// NewRegistry builds a registry from formats. Later entries replace earlier
// ones with the same name.
func NewRegistry(formats ...Format) *Registry {
	r := &Registry{rules: make(map[string]validation.Rule, len(formats))}
	for _, f := range formats {
		r.rules[f.Name] = f.Rule
	}
	return r
}

// With returns a new registry holding r's formats plus formats. r itself is
// left unchanged.
func (r *Registry) With(formats ...Format) *Registry {
	out := &Registry{rules: maps.Clone(r.rules)}
	if out.rules == nil {
		out.rules = make(map[string]validation.Rule, len(formats))
	}
	for _, f := range formats {
		out.rules[f.Name] = f.Rule
	}
	return out
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (validation.Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.rules))
}

// DefaultRegistry holds the built-in formats. It is used by every [Schema]
// not configured with [WithRegistry].
//
// The empty string never satisfies a format. An optional formatted value is
// written as anyOf: [{format: ...}, {maxLength: 0}].
var DefaultRegistry = NewRegistry(
	Format{Name: "regex", Rule: Regex},
	Format{Name: "email", Rule: is.EmailFormat},
	Format{Name: "host-name", Rule: HostLabel},
	Format{Name: "hostname", Rule: HostName},
	Format{Name: "ipv4", Rule: is.IPv4},
	Format{Name: "ipv6", Rule: is.IPv6},
	Format{Name: "uuidv4", Rule: is.UUIDv4},
	Format{Name: "uri", Rule: is.URL},
	Format{Name: "date-time", Rule: DateTime},
	Format{Name: "port", Rule: Port},
	Format{Name: "mac", Rule: is.MAC},
)

// apply runs the format called name against value. A name missing from the
// registry is a schema defect. Empty strings fail before the rule runs, since
// ozzo rules treat them as absent.
func (r *Registry) apply(name string, value any, loc location) error {
	rule, ok := r.Lookup(name)
	if !ok {
		return &SchemaError{Path: loc.schema, Keyword: "format", Err: fmt.Errorf("unknown format %q", name)}
	}
	if s, ok := toString(value); ok && s == "" {
		return validationError(loc.data, "format", value, ErrFormatInvalid.SetParams(map[string]any{
			"format": name,
			"reason": "must not be empty",
		}))
	}
	err := rule.Validate(value)
	if err == nil {
		return nil
	}
	var ie validation.InternalError
	if errors.As(err, &ie) {
		return &SchemaError{Path: loc.schema, Keyword: "format", Err: ie.InternalError()}
	}
	return validationError(loc.data, "format", value, ErrFormatInvalid.SetParams(map[string]any{
		"format": name,
		"reason": err.Error(),
	}))
}

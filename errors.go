package jsonschema

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// rootName is how the document root is shown in error messages.
const rootName = "(root)"

func displayPath(path string) string {
	if path == "" {
		return rootName
	}
	return path
}

// SchemaError reports a defect in the schema document itself: an unsupported
// keyword, an invalid type name, a pattern that does not compile or a format
// name missing from the registry. It is never caused by the data being
// validated.
type SchemaError struct {
	Path    string // dotted location inside the schema document
	Keyword string // offending keyword, empty when not attributable
	Err     error
}

func (e *SchemaError) Error() string {
	if e.Keyword == "" {
		return fmt.Sprintf("invalid schema at %s: %v", displayPath(e.Path), e.Err)
	}
	return fmt.Sprintf("invalid schema at %s: %s: %v", displayPath(e.Path), e.Keyword, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// PathError is returned by [Schema.GetByPath] when a segment cannot be
// resolved.
type PathError struct {
	Path      string // the full path that was requested
	Segment   string // first segment that could not be resolved
	Traversed string // prefix resolved before Segment
	Reason    string
}

func (e *PathError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "not found"
	}
	return fmt.Sprintf("schema path %q: segment %q %s (resolved %q)", e.Path, e.Segment, reason, e.Traversed)
}

// ValidationError reports the first constraint the data violates.
type ValidationError struct {
	Path    string // dotted location of the offending value, empty for the root
	Keyword string // keyword whose constraint failed
	Value   any    // the offending value, nil when it is absent
	Err     validation.Error
}

func (e *ValidationError) Error() string {
	if e.Value == nil || e.Value == "" || e.Keyword == "required" {
		return fmt.Sprintf("%s: %s", displayPath(e.Path), e.Err.Error())
	}
	return fmt.Sprintf("%s: %s (got %v)", displayPath(e.Path), e.Err.Error(), e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code returns the stable error code of the failed constraint, for example
// "validation_min_greater_equal_than_required".
func (e *ValidationError) Code() string {
	return e.Err.Code()
}

// Error codes without an ozzo-validation counterpart.
var (
	ErrTypeInvalid      = validation.NewError("validation_type_invalid", "must be of type {{.type}}")
	ErrPatternMismatch  = validation.NewError("validation_pattern_mismatch", "must match pattern {{.pattern}}")
	ErrEnumInvalid      = validation.NewError("validation_enum_invalid", "must be one of {{.values}}")
	ErrFormatInvalid    = validation.NewError("validation_format_invalid", "invalid {{.format}} format: {{.reason}}")
	ErrNoAlternative    = validation.NewError("validation_no_alternative", "does not match any of the {{.count}} alternatives")
	ErrItemsNotUnique   = validation.NewError("validation_items_not_unique", "items must be unique, index {{.index}} repeats an earlier item")
	ErrPropertyRequired = validation.ErrRequired.SetMessage("is required")
)

func validationError(path, keyword string, value any, err validation.Error) *ValidationError {
	return &ValidationError{Path: path, Keyword: keyword, Value: value, Err: err}
}

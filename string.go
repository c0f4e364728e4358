package jsonschema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Format errors for the rules defined in this package.
var (
	ErrRegex     = validation.NewError("validation_is_regex", "must be a valid regular expression")
	ErrHostLabel = validation.NewError("validation_is_host_label", "must be a valid host name without domain")
	ErrHostName  = validation.NewError("validation_is_host_name", "must be a valid DNS name")
	ErrPort      = validation.NewError("validation_is_port", "must be a valid port number")
)

var (
	// HostLabel accepts a single DNS label (RFC 952 / RFC 1123): letters,
	// digits and inner hyphens, at most 63 characters. Names containing a dot
	// are rejected.
	HostLabel = validation.NewStringRuleWithError(isHostLabel, ErrHostLabel)

	// HostName accepts a DNS name, fully qualified or not.
	HostName = validation.NewStringRuleWithError(govalidator.IsDNSName, ErrHostName)

	// Port accepts a TCP/UDP port number between 1 and 65535.
	Port = validation.NewStringRuleWithError(govalidator.IsPort, ErrPort)

	// Regex accepts strings that are well-formed regular expressions in Go's
	// RE2 syntax (package regexp). Lookaround and backreferences, valid in
	// PCRE and JavaScript, are rejected. The expression may be wrapped in
	// slashes and followed by flags, as in /^\d{4}$/i.
	Regex = validation.By(checkRegex)
)

var hostLabelRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

func isHostLabel(s string) bool {
	return !strings.Contains(s, ".") && hostLabelRegexp.MatchString(s)
}

// regexFlags maps delimited-literal flags onto Go inline flags.
var regexFlags = map[rune]string{
	'i': "i",
	'm': "m",
	's': "s",
	'U': "U",
}

func checkRegex(value any) error {
	s, ok := toString(value)
	if !ok {
		return validation.NewError("validation_is_string", "must be a string")
	}
	if s == "" {
		return nil
	}
	expr, err := regexLiteral(s)
	if err != nil {
		return ErrRegex.SetMessage(fmt.Sprintf("must be a valid regular expression: %v", err))
	}
	if _, err := regexp.Compile(expr); err != nil {
		return ErrRegex.SetMessage(fmt.Sprintf("must be a valid regular expression: %v", err))
	}
	return nil
}

// regexLiteral turns "/body/flags" into a Go expression. Strings that are
// not slash-delimited are returned unchanged.
func regexLiteral(s string) (string, error) {
	last := strings.LastIndex(s, "/")
	if len(s) < 2 || s[0] != '/' || last == 0 {
		return s, nil
	}
	body, flags := s[1:last], s[last+1:]
	if flags == "" {
		return body, nil
	}
	var inline strings.Builder
	for _, f := range flags {
		g, ok := regexFlags[f]
		if !ok {
			return "", fmt.Errorf("unsupported flag %q", f)
		}
		inline.WriteString(g)
	}
	return "(?" + inline.String() + ")" + body, nil
}

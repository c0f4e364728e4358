package jsonschema

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateTime accepts RFC 3339 timestamps such as 2017-03-09T14:12:00+01:00.
var DateTime = validation.Date(time.RFC3339).Error("must be a valid RFC 3339 date-time")

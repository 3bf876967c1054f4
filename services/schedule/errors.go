package schedule

import (
	"errors"
	"fmt"
)

// InvalidRequestError reports a structurally invalid availability request
// (missing hall, inverted range, bad time text). It is a usage error,
// distinct from a conflict, which is a normal ok=false result.
type InvalidRequestError struct {
	Field   string
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
}

// NewInvalidRequest builds an InvalidRequestError for one request field.
func NewInvalidRequest(field, msg string) error {
	return &InvalidRequestError{
		Field:   field,
		Message: msg,
	}
}

// IsInvalidRequest reports whether err is an InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var ire *InvalidRequestError
	return errors.As(err, &ire)
}

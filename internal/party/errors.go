package party

import (
	"errors"
	"fmt"
)

// ErrChildNotFound is returned when a patch targets a child id that does not
// belong to the aggregate. A missing-id patch is a hard error, never a
// silent create.
var ErrChildNotFound = errors.New("child record not found")

// ValidationError reports a child-record field that blocks the submission:
// a required field absent from an insert, or a value outside its enum.
type ValidationError struct {
	Field   string
	Invalid bool
}

func (e *ValidationError) Error() string {
	if e.Invalid {
		return fmt.Sprintf("invalid value for field %s", e.Field)
	}
	return fmt.Sprintf("missing required field %s", e.Field)
}

func missingField(field string) error {
	return &ValidationError{Field: field}
}

func invalidField(field string) error {
	return &ValidationError{Field: field, Invalid: true}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) *ValidationError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	return nil
}

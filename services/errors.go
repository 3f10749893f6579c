package services

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when an identity field matched a user but the
// password did not verify. Kept distinct from store.ErrNotFound so handlers
// answer 401 instead of 404.
var ErrUnauthorized = errors.New("invalid credentials")

// ValidationError marks input that failed shape/format checks before any
// storage call was made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

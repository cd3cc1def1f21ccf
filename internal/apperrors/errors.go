// Package apperrors defines the error kinds the service layer reports and
// the handlers translate into HTTP statuses: NotFoundError (404),
// ForbiddenError (403) and InternalError (500).
package apperrors

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func Forbidden(message string) error {
	return &ForbiddenError{Message: message}
}

// InternalError wraps unexpected faults (store connectivity, broken
// invariants) so they surface as 500 instead of leaking into the 403 path.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func Internal(message string, err error) error {
	return &InternalError{Message: message, Err: err}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsForbidden(err error) bool {
	var fb *ForbiddenError
	return errors.As(err, &fb)
}

package constants

import (
	"errors"
	"net/http"
)

// CodedError is an error that knows which HTTP status it should be reported with.
type CodedError struct {
	code    int
	message string
}

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{code: code, message: message}
}

// NewClientError reports malformed or out-of-domain input.
func NewClientError(message string) *CodedError {
	return NewCodedError(http.StatusUnprocessableEntity, message)
}

// NewNotFoundError reports a well-formed request whose target does not exist.
func NewNotFoundError(message string) *CodedError {
	return NewCodedError(http.StatusNotFound, message)
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewNotFoundError("resource not found")
)

// IsNotFound reports whether err carries a 404 code anywhere in its chain.
func IsNotFound(err error) bool {
	var ce *CodedError
	return errors.As(err, &ce) && ce.Code() == http.StatusNotFound
}

// Package errorsx carries typed request errors from services up to the HTTP
// boundary, where HandleError maps them onto status codes without leaking
// internal detail.
package errorsx

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

// RequestError pairs an error with the HTTP status it should surface as.
type RequestError struct {
	Status int
	Err    error
}

func (e *RequestError) Error() string { return e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

func NewBadRequestError(err error) error {
	return &RequestError{Status: http.StatusBadRequest, Err: err}
}

func NewNotFoundError(err error) error {
	return &RequestError{Status: http.StatusNotFound, Err: err}
}

func NewConflictError(err error) error {
	return &RequestError{Status: http.StatusConflict, Err: err}
}

// Status returns the HTTP status for err: the carried status for a
// RequestError, 400 for field-violation sets, 500 otherwise.
func Status(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status
	}
	var violations validation.Errors
	if errors.As(err, &violations) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Violations returns the structured field-level violation set carried by err,
// or nil when err is not a validation failure.
func Violations(err error) validation.Errors {
	var violations validation.Errors
	if errors.As(err, &violations) {
		return violations
	}
	return nil
}

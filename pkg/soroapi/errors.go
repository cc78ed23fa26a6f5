/*
Package soroapi contains a set of types used for HTTP communication with
SoroScan servers. It defines the error and pagination models shared by all
endpoints as well as request parameter and body types for specific calls.
*/
package soroapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an error emitted by the SoroScan API in response to a
// request that reached the server but could not be satisfied. It mirrors the
// JSON error body the server produces for any non-success HTTP status.
type Error struct {
	// StatusCode is the HTTP status the server responded with. It is not a
	// part of the JSON body, the client fills it in from the response line.
	StatusCode int `json:"-"`
	// Code is a machine-readable error identifier, see the Code* constants
	// for well-known values.
	Code string `json:"code"`
	// Message is a human-readable error description.
	Message string `json:"message"`
	// Details carries optional structured data clarifying the error (field
	// validation problems, quota numbers and suchlike).
	Details map[string]any `json:"details,omitempty"`
}

// Well-known error codes returned by the SoroScan API.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeRateLimited  = "RATE_LIMITED"
	// CodeUnknown is used by the client when the server responds with a
	// failure status but no conforming JSON error body.
	CodeUnknown = "UNKNOWN_ERROR"
)

// NewError creates an Error with the given contents.
func NewError(statusCode int, code, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// NewUnknownError synthesizes an Error from a bare HTTP status for responses
// that carry no usable error body.
func NewUnknownError(statusCode int) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       CodeUnknown,
		Message:    fmt.Sprintf("HTTP %d %s", statusCode, http.StatusText(statusCode)),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Is implements the errors.Is interface allowing comparison by Code (and by
// StatusCode when the target specifies one).
func (e *Error) Is(target error) bool {
	clone, ok := target.(*Error)
	if !ok {
		return false
	}
	if clone.StatusCode != 0 && clone.StatusCode != e.StatusCode {
		return false
	}
	return clone.Code == e.Code
}

// IsNotFound reports whether the given error is an API Error carrying the
// NOT_FOUND code (a request against a missing or deleted resource), however
// deeply wrapped.
func IsNotFound(err error) bool {
	apiErr := new(Error)
	return errors.As(err, &apiErr) && apiErr.Code == CodeNotFound
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a classified failure: an HTTP status code paired with the error
// that caused it.
//
// Code is always a valid HTTP status (100..599). Err is never nil for values
// built by this package.
type Error struct {
	// Code is the HTTP status the failure is rendered with.
	Code int

	// Err is the underlying error. Unless Public is set, its message is the
	// client-visible message; anything it wraps is only ever logged.
	Err error

	// Public, when non-empty, replaces Err's message in responses. Err is
	// then only ever logged.
	Public string
}

// New builds a classified error from a status code and a message.
func New(code int, message string) *Error {
	return Wrap(code, errors.New(message))
}

// Wrap classifies err with the given status code. An invalid status code is
// replaced with 500; a nil err is replaced with the status text of code.
func Wrap(code int, err error) *Error {
	if !validCode(code) {
		code = http.StatusInternalServerError
	}
	if err == nil {
		err = errors.New(http.StatusText(code))
	}
	return &Error{Code: code, Err: err}
}

// Conceal classifies cause with the given status code but exposes only the
// status text to clients. cause stays available to logs and [errors.Is].
func Conceal(code int, cause error) *Error {
	classified := Wrap(code, cause)
	classified.Public = http.StatusText(classified.Code)
	return classified
}

// Classify normalizes err into a classified error.
//
// A nil err yields nil. If err is, or wraps, an [*Error] with a valid code
// that value is returned unchanged, so classifying twice is a no-op; one with
// an invalid code is returned as a 500 copy. Any other error is concealed as
// 500 Internal Server Error: its text is logged, never sent.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) && classified != nil {
		if validCode(classified.Code) {
			return classified
		}
		repaired := *classified
		repaired.Code = http.StatusInternalServerError
		return &repaired
	}

	return Conceal(http.StatusInternalServerError, err)
}

// Error returns the message of the underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to [errors.Is] and [errors.As].
func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the human-readable text sent to clients: Public if set,
// otherwise the message of Err.
func (e *Error) Message() string {
	if e.Public != "" {
		return e.Public
	}
	return e.Error()
}

// IsServerError reports whether the failure is a 5xx.
func (e *Error) IsServerError() bool {
	return e.Code >= http.StatusInternalServerError
}

// String renders the code together with the message, e.g. "401: No
// authentication header provided.".
func (e *Error) String() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message())
}

func validCode(code int) bool {
	return code >= 100 && code <= 599
}

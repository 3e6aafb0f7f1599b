package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrLookup indicates that the price oracle was unreachable or returned no price.
var ErrLookup = errors.New("price lookup error")

// ErrConversion indicates that a fiat amount could not be converted into token units.
var ErrConversion = errors.New("conversion error")

// ErrFormat indicates that a raw balance could not be parsed for display.
var ErrFormat = errors.New("format error")

// ErrUpstream indicates that the payments API failed or rejected a request.
var ErrUpstream = errors.New("upstream error")

// UpstreamError carries the details of a failed payments API call.
// It matches ErrUpstream with errors.Is.
type UpstreamError struct {
	Service    string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s returned status %d: %s", ErrUpstream, e.Service, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrUpstream, e.Service, msg)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// Rejected reports whether the upstream refused the request because of the caller's input.
// Credential and throttling failures are ours, not the caller's.
func (e *UpstreamError) Rejected() bool {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return false
	}
	return e.StatusCode >= 400 && e.StatusCode < 500
}

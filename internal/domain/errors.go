package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes of a search request
var (
	ErrTransport        = errors.New("transport error")
	ErrHTTPStatus       = errors.New("unexpected http status")
	ErrMalformedPayload = errors.New("malformed payload")
)

// TransportError means the request never produced a response (network, timeout, canceled)
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// HTTPStatusError is a non-2xx response
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Message    string // "message" field of the API error body, if any
}

func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d for %s: %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("http %d for %s", e.StatusCode, e.URL)
}

func (e *HTTPStatusError) Is(target error) bool { return target == ErrHTTPStatus }

// MalformedPayloadError is a body that could not be decoded into a SearchResult
type MalformedPayloadError struct {
	Reason string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed payload: %s: %v", e.Reason, e.Err)
	}
	return "malformed payload: " + e.Reason
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

func (e *MalformedPayloadError) Is(target error) bool { return target == ErrMalformedPayload }

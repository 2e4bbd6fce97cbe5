package api

import (
	"fmt"
	"net/http"
)

// TransportError wraps a network-level failure (connection refused, DNS,
// timeout) where no HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response from the backend. Message is taken from
// the body's "error" field when present, else from the generic status text.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, msg)
}

// ParseError is a response body that could not be decoded as JSON. Only the
// mockups endpoint treats this as fatal; section endpoints degrade an
// unknown-shaped success body to its raw JSON text instead.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

package api

import (
	"errors"
	"fmt"
)

var (
	ErrTransport        = errors.New("transport failure")
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrDeserialization  = errors.New("response could not be deserialized")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNoCredentials    = errors.New("no credentials configured")
)

// APICallError reports a call that did not produce a 2xx response. StatusCode is zero when
// the transport failed before a response arrived; Err then holds the transport's error.
type APICallError struct {
	Endpoint   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *APICallError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("[%s] API call failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("[%s] API call returned HTTP %d: %s", e.Endpoint, e.StatusCode, truncate(e.Body, 256))
}

func (e *APICallError) Unwrap() error {
	return e.Err
}

func (e *APICallError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.StatusCode == 0
	case ErrUnexpectedStatus:
		return e.StatusCode != 0
	}
	return false
}

// HTTPCode returns the status code of the response, or zero for transport failures.
func (e *APICallError) HTTPCode() int {
	return e.StatusCode
}

// DeserializationError reports a 2xx response body that did not match the expected shape,
// including an action outside the response's declared set.
type DeserializationError struct {
	Endpoint string
	Body     []byte
	Err      error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("[%s] failed to deserialize response: %v", e.Endpoint, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (e *DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}

// RequestValidationError reports a request rejected before any I/O.
type RequestValidationError struct {
	Endpoint string
	Err      error
}

func (e *RequestValidationError) Error() string {
	return fmt.Sprintf("[%s] invalid request: %v", e.Endpoint, e.Err)
}

func (e *RequestValidationError) Unwrap() error {
	return e.Err
}

func (e *RequestValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func truncate(body []byte, max int) string {
	if len(body) <= max {
		return string(body)
	}
	return string(body[:max]) + "..."
}

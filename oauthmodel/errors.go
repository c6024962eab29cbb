package oauthmodel

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField               = errors.New("required field is missing")
	ErrInvalidField               = errors.New("invalid field value")
	ErrInvalidCodeChallenge       = errors.New("invalid code challenge")
	ErrInvalidCodeChallengeMethod = errors.New("invalid code challenge method")
	ErrInvalidRedirectUri         = errors.New("invalid or no redirect uri")
	ErrInvalidResponseType        = errors.New("unsupported response type")
	ErrInvalidGrantType           = errors.New("unsupported grant type")
)

// FieldError reports a request field that failed validation before it was sent.
type FieldError struct {
	Request string
	Field   string
	Reason  string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Request, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func requiredField(request, field string) error {
	return &FieldError{Request: request, Field: field, Reason: "is required", Err: ErrMissingField}
}

func invalidField(request, field, reason string) error {
	return &FieldError{Request: request, Field: field, Reason: reason, Err: ErrInvalidField}
}

func requireString(request, field, value string) error {
	if value == "" {
		return requiredField(request, field)
	}
	return nil
}

func validateRange(request string, start, end int) error {
	if start < 0 {
		return invalidField(request, "start", "must not be negative")
	}
	if end != 0 && end < start {
		return invalidField(request, "end", fmt.Sprintf("%d is before start %d", end, start))
	}
	return nil
}

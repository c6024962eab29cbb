package errors

import (
	"errors"
	"fmt"
)

// Common error types for configuration and the command line
var (
	// Configuration errors
	ErrMissingBaseURL     = errors.New("base URL is not configured")
	ErrInvalidAPIVersion  = errors.New("invalid API version")
	ErrMissingCredentials = errors.New("credentials are not configured")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrInvalidLogLevel    = errors.New("invalid log level")

	// Command errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownKind     = errors.New("unknown constant kind")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

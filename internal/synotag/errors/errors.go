// Package errors defines sentinel errors shared across synotag packages.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyURL           = errors.New("URL cannot be empty")
	ErrLoginFailed        = errors.New("login failed")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Configuration errors
	ErrMissingConfig  = errors.New("missing required configuration")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNoTeamsDefined = errors.New("no teams defined in mapping")

	// API errors
	ErrAPIConnection = errors.New("API connection failed")
	ErrAPIResponse   = errors.New("invalid API response")
	ErrTagNotFound   = errors.New("tag not found")
)

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

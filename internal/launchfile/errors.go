// SPDX-License-Identifier: MPL-2.0

package launchfile

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the sentinel error wrapped by ParseError.
	ErrParse = errors.New("malformed launch document")

	// ErrInvalidURL is the sentinel error wrapped by InvalidURLError.
	ErrInvalidURL = errors.New("invalid launch URL")

	// ErrInvalidEntry is the sentinel error wrapped by InvalidEntryError.
	ErrInvalidEntry = errors.New("invalid launch entry")

	// ErrUnsafeValue is the sentinel error wrapped by UnsafeValueError.
	ErrUnsafeValue = errors.New("unsafe launch value")
)

type (
	// ParseError is returned when the launch document cannot be read, is not
	// well-formed, or lacks one of the required fields.
	ParseError struct {
		Filename string
		Err      error
	}

	// InvalidURLError is returned when the url field is not an absolute URL.
	InvalidURLError struct {
		Value  string
		Reason string
		// Err is the url.Parse failure, if any.
		Err error
	}

	// InvalidEntryError is returned when the entry field is empty, absolute,
	// or escapes the installation root.
	InvalidEntryError struct {
		Value  string
		Reason string
	}

	// UnsafeValueError is returned by untrusted-source validation when a value
	// would not be interpolated into the build script as a single literal word.
	UnsafeValueError struct {
		Field  string
		Value  string
		Reason string
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed launch document %s: %v", e.Filename, e.Err)
}

// Unwrap returns ErrParse and the underlying cause for errors.Is/As.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Error implements the error interface.
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid launch URL %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidURL and, when present, the url.Parse error.
func (e *InvalidURLError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidURL}
	}
	return []error{ErrInvalidURL, e.Err}
}

// Error implements the error interface.
func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid launch entry %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidEntry for errors.Is() compatibility.
func (e *InvalidEntryError) Unwrap() error { return ErrInvalidEntry }

// Error implements the error interface.
func (e *UnsafeValueError) Error() string {
	return fmt.Sprintf("unsafe %s value %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrUnsafeValue for errors.Is() compatibility.
func (e *UnsafeValueError) Unwrap() error { return ErrUnsafeValue }

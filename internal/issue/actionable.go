// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strconv"
	"strings"
)

type (
	// ActionableError is a failed launcher step described for the user: the
	// step, the file or image it acted on, hints for fixing it, and optionally
	// the catalog entry that explains it in depth.
	//
	// Build one with ErrorContext:
	//
	//	return issue.NewErrorContext().
	//		WithOperation("build container image").
	//		WithResource("pycharm").
	//		WithIssue(issue.ImageBuildFailedId).
	//		Wrap(err).
	//		BuildError()
	ActionableError struct {
		// Operation is the failed step as a verb phrase ("load config").
		Operation string
		// Resource is the file, directory or image involved, if any.
		Resource string
		// Suggestions are printed below the message, one per line.
		Suggestions []string
		// Cause is the underlying error.
		Cause error
		// Issue selects the catalog entry rendered in verbose mode.
		Issue Id
	}

	// ErrorContext accumulates the fields of an ActionableError.
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext creates an empty ErrorContext.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WithOperation sets the failed step.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource sets the file, directory or image the step acted on.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends a hint. Empty hints are ignored.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	if sug != "" {
		c.err.Suggestions = append(c.err.Suggestions, sug)
	}
	return c
}

// WithIssue links the error to a catalog entry.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.Issue = id
	return c
}

// Wrap sets the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// BuildError returns the accumulated ActionableError, or nil when no
// operation was set. The context can keep being used afterwards; the
// returned error does not share its suggestion slice.
func (c *ErrorContext) BuildError() error {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	ae.Suggestions = append([]string(nil), c.err.Suggestions...)
	return &ae
}

// Error returns "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// CatalogIssue returns the linked catalog entry, or nil when none is set
// or the id is unknown.
func (e *ActionableError) CatalogIssue() *Issue {
	if e.Issue == 0 {
		return nil
	}
	return Get(e.Issue)
}

// Format renders the message followed by the suggestions as a bullet list.
// In verbose mode the cause chain is appended, one numbered line per error.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, sug := range e.Suggestions {
			sb.WriteString("\n  • " + sug)
		}
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\nError chain:")
		for i, err := 1, e.Cause; err != nil; i, err = i+1, errors.Unwrap(err) {
			sb.WriteString("\n  " + strconv.Itoa(i) + ". " + err.Error())
		}
	}

	return sb.String()
}

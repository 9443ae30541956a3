// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context for the CLI layer.
// An ActionableError pairs the failing operation with the resource
// involved and concrete suggestions for fixing the problem.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with context for user-facing messages:
	// what was attempted, what resource was involved, and how to fix it.
	//
	// Use the Context builder for construction:
	//
	//	err := issue.NewContext().
	//		WithOperation("write manifest").
	//		WithResource(manifestPath).
	//		WithSuggestion("Check that the output directory is writable").
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation describes what was being attempted, as a verb phrase
		// (e.g., "write manifest", "provision uv").
		Operation string

		// Resource identifies the file, path, or entity involved (optional).
		Resource string

		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string

		// Cause is the underlying error (optional).
		Cause error
	}

	// Context is a fluent builder for ActionableError values.
	Context struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewContext creates a new Context builder.
func NewContext() *Context {
	return &Context{}
}

// WrapWithOperation wraps err with operation context. Returns nil when
// err is nil so it can be used directly on return paths.
func WrapWithOperation(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// Error implements the error interface with a concise single-line message.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the display form of the error. Suggestions are listed
// as bullets; verbose additionally renders the full error chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, s := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// WithOperation sets the operation being performed.
func (c *Context) WithOperation(op string) *Context {
	c.operation = op
	return c
}

// WithResource sets the resource (file, path, entity) involved.
func (c *Context) WithResource(res string) *Context {
	c.resource = res
	return c
}

// WithSuggestion adds one suggestion. May be called repeatedly.
func (c *Context) WithSuggestion(sug string) *Context {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// Wrap records the underlying cause.
func (c *Context) Wrap(err error) *Context {
	c.cause = err
	return c
}

// Build creates the ActionableError. Returns nil when no operation is
// set; the operation is required.
func (c *Context) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError is Build returned as the error interface, for direct use
// in return statements. A nil *ActionableError must not leak into a
// non-nil error interface value.
func (c *Context) BuildError() error {
	e := c.Build()
	if e == nil {
		return nil
	}
	return e
}

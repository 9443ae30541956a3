// SPDX-License-Identifier: MPL-2.0

package uvtool

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolUnavailable is the sentinel wrapped by AcquisitionError.
	ErrToolUnavailable = errors.New("uv could not be acquired")

	// ErrToolFailed is the sentinel wrapped by ExecError.
	ErrToolFailed = errors.New("uv exited with a failure status")
)

type (
	// AcquisitionError is returned when every provisioning strategy has
	// been exhausted. Attempts holds the per-strategy failures in the
	// order they were tried.
	AcquisitionError struct {
		Attempts []error
	}

	// ExecError is returned when the tool was invoked but exited
	// non-zero. Code carries the child process exit code for display.
	ExecError struct {
		Args []string
		Code int
	}
)

// Error implements the error interface.
func (e *AcquisitionError) Error() string {
	var b strings.Builder
	b.WriteString("uv could not be acquired after trying all strategies")
	for i, attempt := range e.Attempts {
		fmt.Fprintf(&b, "\n  %d. %v", i+1, attempt)
	}
	return b.String()
}

// Unwrap returns ErrToolUnavailable so callers can use errors.Is.
func (e *AcquisitionError) Unwrap() error { return ErrToolUnavailable }

// Error implements the error interface.
func (e *ExecError) Error() string {
	return fmt.Sprintf("uv %s exited with code %d", strings.Join(e.Args, " "), e.Code)
}

// Unwrap returns ErrToolFailed so callers can use errors.Is.
func (e *ExecError) Unwrap() error { return ErrToolFailed }

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "scan sources"},
			want: "failed to scan sources",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "write manifest", Resource: "/tmp/requirements.txt"},
			want: "failed to write manifest: /tmp/requirements.txt",
		},
		{
			name: "full chain",
			err: &ActionableError{
				Operation: "provision uv",
				Resource:  "~/.pywand/bin",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to provision uv: ~/.pywand/bin: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextBuild(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewContext().
		WithOperation("create environment").
		WithResource(".venv").
		WithSuggestion("Check that uv is on your PATH").
		WithSuggestion("Re-run with --verbose for details").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build returned nil for a populated context")
	}
	if err.Operation != "create environment" || err.Resource != ".venv" {
		t.Errorf("unexpected fields: %+v", err)
	}
	if len(err.Suggestions) != 2 {
		t.Errorf("got %d suggestions, want 2", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
}

func TestBuildErrorNilWithoutOperation(t *testing.T) {
	t.Parallel()

	// A typed nil must not leak into a non-nil error interface.
	if err := NewContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() = %v, want nil", err)
	}
}

func TestFormatVerboseRendersChain(t *testing.T) {
	t.Parallel()

	inner := errors.New("disk full")
	mid := fmt.Errorf("copying file: %w", inner)
	err := NewContext().
		WithOperation("export bundle").
		WithSuggestion("Free up disk space").
		Wrap(mid).
		Build()

	out := err.Format(true)
	if !strings.Contains(out, "• Free up disk space") {
		t.Errorf("Format missing suggestion bullet:\n%s", out)
	}
	if !strings.Contains(out, "Error chain:") || !strings.Contains(out, "disk full") {
		t.Errorf("verbose Format missing error chain:\n%s", out)
	}

	if strings.Contains(err.Format(false), "Error chain:") {
		t.Error("non-verbose Format should not render the error chain")
	}
}

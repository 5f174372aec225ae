// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load config"},
			want: "failed to load config",
		},
		{
			name: "resource without cause",
			err:  &ActionableError{Operation: "write build file", Resource: "Dockerfile"},
			want: "failed to write build file: Dockerfile",
		},
		{
			name: "cause without resource",
			err:  &ActionableError{Operation: "start container", Cause: errors.New("exec: not found")},
			want: "failed to start container: exec: not found",
		},
		{
			name: "resource and cause",
			err: &ActionableError{
				Operation: "build container image",
				Resource:  "pycharm",
				Cause:     errors.New("exit status 1"),
			},
			want: "failed to build container image: pycharm: exit status 1",
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

func TestActionableError_UnwrapReachesCause(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load config").
		Wrap(fs.ErrPermission).
		BuildError()

	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("errors.Is(%v, fs.ErrPermission) = false", err)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("no space left on device")
	err := &ActionableError{
		Operation:   "write build file",
		Resource:    "Dockerfile",
		Suggestions: []string{"Free some disk space", "Run from another directory"},
		Cause:       &fs.PathError{Op: "open", Path: "Dockerfile", Err: inner},
	}

	quiet := err.Format(false)
	wantQuiet := "failed to write build file: Dockerfile: open Dockerfile: no space left on device\n" +
		"\n  • Free some disk space" +
		"\n  • Run from another directory"
	if quiet != wantQuiet {
		t.Errorf("Format(false) = %q, want %q", quiet, wantQuiet)
	}

	verbose := err.Format(true)
	if !strings.HasPrefix(verbose, wantQuiet+"\n\nError chain:") {
		t.Errorf("Format(true) should extend the quiet output with the chain, got %q", verbose)
	}
	for _, want := range []string{"\n  1. open Dockerfile: no space left on device", "\n  2. no space left on device"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("Format(true) missing %q in %q", want, verbose)
		}
	}

	bare := (&ActionableError{Operation: "load config"}).Format(true)
	if bare != "failed to load config" {
		t.Errorf("Format(true) without cause or suggestions = %q", bare)
	}
}

func TestErrorContext_BuildError(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("Dockerfile").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("start container").
		WithResource("pycharm").
		WithSuggestion("Check the engine is running").
		WithSuggestion("").
		WithIssue(ContainerStartFailedId).
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() = %T, want *ActionableError", err)
	}
	if ae.Operation != "start container" || ae.Resource != "pycharm" || ae.Cause != cause {
		t.Errorf("BuildError() = %+v", ae)
	}
	if len(ae.Suggestions) != 1 {
		t.Errorf("Suggestions = %q, empty hints should be dropped", ae.Suggestions)
	}
	if ae.Issue != ContainerStartFailedId {
		t.Errorf("Issue = %d, want %d", ae.Issue, ContainerStartFailedId)
	}
}

func TestErrorContext_ReuseDoesNotShareSuggestions(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithOperation("build container image").WithSuggestion("first")

	var first *ActionableError
	errors.As(ctx.BuildError(), &first)
	ctx.WithSuggestion("second")

	if len(first.Suggestions) != 1 {
		t.Errorf("earlier error changed after reuse: %q", first.Suggestions)
	}
}

func TestActionableError_CatalogIssue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     Id
		wantID Id
	}{
		{name: "unset", id: 0, wantID: 0},
		{name: "unknown", id: Id(999), wantID: 0},
		{name: "catalogued", id: ImageBuildFailedId, wantID: ImageBuildFailedId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := (&ActionableError{Operation: "x", Issue: tt.id}).CatalogIssue()
			if tt.wantID == 0 {
				if got != nil {
					t.Errorf("CatalogIssue() = %v, want nil", got.Id())
				}
				return
			}
			if got == nil || got.Id() != tt.wantID {
				t.Errorf("CatalogIssue() = %v, want issue %d", got, tt.wantID)
			}
		})
	}
}

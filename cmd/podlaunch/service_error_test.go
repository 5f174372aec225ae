// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/podlaunch/podlaunch/internal/config"
	"github.com/podlaunch/podlaunch/internal/container"
	"github.com/podlaunch/podlaunch/internal/issue"
	"github.com/podlaunch/podlaunch/internal/launcher"
	"github.com/podlaunch/podlaunch/internal/launchfile"
	"github.com/podlaunch/podlaunch/pkg/types"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"parse", &launchfile.ParseError{Filename: "launch.json", Err: errors.New("eof")}, issue.LaunchDocumentParseFailedId},
		{"url", &launchfile.InvalidURLError{Value: "a", Reason: "missing scheme"}, issue.InvalidURLId},
		{"entry", &launchfile.InvalidEntryError{Value: "/a", Reason: "absolute"}, issue.InvalidEntryId},
		{"unsafe", &launchfile.UnsafeValueError{Field: "pkgs[0]", Value: "a;b", Reason: "not a word"}, issue.UnsafeValueId},
		{"write", &launcher.WriteError{Path: "Dockerfile", Err: errors.New("disk full")}, issue.BuildFileWriteFailedId},
		{"write permission", &launcher.WriteError{Path: "Dockerfile", Err: fs.ErrPermission}, issue.PermissionDeniedId},
		{"build", &launcher.BuildError{Engine: "podman", Image: "pycharm", Err: errors.New("exit status 1")}, issue.ImageBuildFailedId},
		{"spawn", &launcher.SpawnError{Engine: "podman", Image: "pycharm", Err: errors.New("no such file")}, issue.ContainerStartFailedId},
		{"engine", &container.EngineNotAvailableError{Engine: "docker", Reason: "missing"}, issue.ContainerEngineNotFoundId},
		{"actionable", issue.NewErrorContext().WithOperation("load configuration").WithIssue(issue.ConfigLoadFailedId).BuildError(), issue.ConfigLoadFailedId},
		{"actionable unknown issue", issue.NewErrorContext().WithOperation("load configuration").WithIssue(issue.Id(999)).BuildError(), 0},
		{"wrapped", fmt.Errorf("outer: %w", &launcher.BuildError{Err: errors.New("x")}), issue.ImageBuildFailedId},
		{"unknown", errors.New("boom"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := classifyError(tt.err); got != tt.want {
				t.Errorf("classifyError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewServiceError_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("newServiceError(nil) should panic")
		}
	}()
	_ = newServiceError(nil, 0)
}

func TestRenderServiceError(t *testing.T) {
	t.Parallel()

	err := issue.NewErrorContext().
		WithOperation("build container image").
		WithSuggestion("Check the build output above for the failing step").
		Wrap(errors.New("exit status 1")).
		BuildError()
	svcErr := newServiceError(err, issue.ImageBuildFailedId)

	var quiet bytes.Buffer
	renderServiceError(&quiet, svcErr, false, config.ColorSchemeAuto)
	if !strings.Contains(quiet.String(), "Check the build output above") {
		t.Errorf("suggestions should always be shown, got %q", quiet.String())
	}

	var verbose bytes.Buffer
	renderServiceError(&verbose, svcErr, true, config.ColorSchemeLight)
	if verbose.Len() <= quiet.Len() {
		t.Error("verbose output should include the catalog entry")
	}

	if !errors.Is(svcErr, err) {
		t.Error("ServiceError should unwrap to its cause")
	}
}

func TestGlamourStyle(t *testing.T) {
	t.Parallel()

	for scheme, want := range map[config.ColorScheme]string{
		config.ColorSchemeAuto:  "dark",
		config.ColorSchemeDark:  "dark",
		config.ColorSchemeLight: "light",
	} {
		if got := glamourStyle(scheme); got != want {
			t.Errorf("glamourStyle(%q) = %q, want %q", scheme, got, want)
		}
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	if got := exitCodeFor(errors.New("plain")); got != types.ExitCodeFailure {
		t.Errorf("exitCodeFor(plain) = %d, want 1", got)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestHelperProcess") //nolint:gosec,noctx // test helper
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1", "GO_HELPER_EXIT_CODE=3"}
	runErr := cmd.Run()

	err := &launcher.BuildError{Engine: "podman", Image: "pycharm", Err: runErr}
	if got := exitCodeFor(err); got != 3 {
		t.Errorf("exitCodeFor(build exit 3) = %d, want 3", got)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	if got := (&ExitError{Code: 2, Err: cause}).Error(); got != "boom" {
		t.Errorf("Error() = %q, want boom", got)
	}
	if got := (&ExitError{Code: 2}).Error(); got != "exit status 2" {
		t.Errorf("Error() = %q, want exit status 2", got)
	}
	if !errors.Is(&ExitError{Code: 1, Err: cause}, cause) {
		t.Error("ExitError should unwrap to its cause")
	}
}

// TestHelperProcess exits with GO_HELPER_EXIT_CODE when run as a child of TestExitCodeFor.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	code := 0
	fmt.Sscanf(os.Getenv("GO_HELPER_EXIT_CODE"), "%d", &code)
	os.Exit(code)
}

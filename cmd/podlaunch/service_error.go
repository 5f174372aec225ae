// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/podlaunch/podlaunch/internal/config"
	"github.com/podlaunch/podlaunch/internal/container"
	"github.com/podlaunch/podlaunch/internal/issue"
	"github.com/podlaunch/podlaunch/internal/launcher"
	"github.com/podlaunch/podlaunch/internal/launchfile"
)

// ServiceError is an error that carries optional rendering information for
// the CLI layer. When the CLI layer receives a ServiceError, it renders the
// styled suggestions and, in verbose mode, the catalog entry.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{Err: err, IssueID: issueID}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// classifyError maps a stage error to its issue catalog entry, or 0 when none fits.
func classifyError(err error) issue.Id {
	switch {
	case errors.Is(err, launchfile.ErrParse):
		return issue.LaunchDocumentParseFailedId
	case errors.Is(err, launchfile.ErrInvalidURL):
		return issue.InvalidURLId
	case errors.Is(err, launchfile.ErrInvalidEntry):
		return issue.InvalidEntryId
	case errors.Is(err, launchfile.ErrUnsafeValue):
		return issue.UnsafeValueId
	case errors.Is(err, launcher.ErrWrite) && errors.Is(err, fs.ErrPermission):
		return issue.PermissionDeniedId
	case errors.Is(err, launcher.ErrWrite):
		return issue.BuildFileWriteFailedId
	case errors.Is(err, launcher.ErrBuild):
		return issue.ImageBuildFailedId
	case errors.Is(err, launcher.ErrSpawn):
		return issue.ContainerStartFailedId
	case errors.Is(err, container.ErrEngineNotAvailable):
		return issue.ContainerEngineNotFoundId
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if entry := ae.CatalogIssue(); entry != nil {
			return entry.Id()
		}
	}
	return 0
}

// glamourStyle maps the configured color scheme to a glamour standard style.
func glamourStyle(scheme config.ColorScheme) string {
	if scheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// renderServiceError renders a ServiceError in the CLI layer.
// It prints any suggestions carried by the error, then, in verbose mode, the
// catalog entry. The error message itself is printed by the command runner.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, verbose bool, scheme config.ColorScheme) {
	if svcErr == nil {
		return
	}

	var ae *issue.ActionableError
	if errors.As(svcErr.Err, &ae) {
		for _, suggestion := range ae.Suggestions {
			fmt.Fprintf(stderr, "  %s %s\n", WarningStyle.Render("•"), suggestion)
		}
	}

	if !verbose || svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(glamourStyle(scheme))
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}

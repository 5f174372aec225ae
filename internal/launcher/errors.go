// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrWrite is the sentinel error wrapped by WriteError.
	ErrWrite = errors.New("failed to write build file")

	// ErrBuild is the sentinel error wrapped by BuildError.
	ErrBuild = errors.New("image build failed")

	// ErrSpawn is the sentinel error wrapped by SpawnError.
	ErrSpawn = errors.New("failed to start container")
)

type (
	// WriteError is returned when the build file cannot be created or written.
	WriteError struct {
		Path string
		Err  error
	}

	// BuildError is returned when the engine build command cannot be run or
	// exits with a non-zero status.
	BuildError struct {
		Engine string
		Image  string
		Err    error
	}

	// SpawnError is returned when the engine run command cannot be started.
	SpawnError struct {
		Engine string
		Image  string
		Err    error
	}
)

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write build file %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrWrite and the underlying cause.
func (e *WriteError) Unwrap() []error { return []error{ErrWrite, e.Err} }

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("%s build of image %q failed: %v", e.Engine, e.Image, e.Err)
}

// Unwrap returns ErrBuild and the underlying cause.
func (e *BuildError) Unwrap() []error { return []error{ErrBuild, e.Err} }

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s run of image %q could not be started: %v", e.Engine, e.Image, e.Err)
}

// Unwrap returns ErrSpawn and the underlying cause.
func (e *SpawnError) Unwrap() []error { return []error{ErrSpawn, e.Err} }

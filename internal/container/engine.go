// SPDX-License-Identifier: MPL-2.0

package container

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	// EngineTypePodman selects the Podman CLI.
	EngineTypePodman EngineType = "podman"
	// EngineTypeDocker selects the Docker CLI.
	EngineTypeDocker EngineType = "docker"
)

var (
	// ErrEngineNotAvailable is the sentinel error wrapped by EngineNotAvailableError.
	ErrEngineNotAvailable = errors.New("container engine not available")

	// ErrInvalidEngineType is the sentinel error wrapped by InvalidEngineTypeError.
	ErrInvalidEngineType = errors.New("invalid container engine type")
)

type (
	// Engine defines the container operations used by the launcher.
	Engine interface {
		// Name returns the engine name (docker or podman).
		Name() string
		// Available checks if the engine is installed and responding.
		Available() bool
		// Version returns the engine version.
		Version(ctx context.Context) (string, error)
		// Build builds an image and blocks until the engine exits.
		// A non-zero exit status is returned as an error.
		Build(ctx context.Context, opts BuildOptions) error
		// Start starts a container without waiting for it to finish.
		// Only failures to start the engine process are reported.
		Start(ctx context.Context, opts RunOptions) (*RunHandle, error)
	}

	// BuildOptions contains options for building an image.
	BuildOptions struct {
		// ContextDir is the build context directory.
		ContextDir HostFilesystemPath
		// Dockerfile is the build file, relative to ContextDir. Empty means the
		// engine default (ContextDir/Dockerfile) and emits no -f flag.
		Dockerfile HostFilesystemPath
		// Tag is the image tag.
		Tag ImageTag
		// Stdout is where to write build output.
		Stdout io.Writer
		// Stderr is where to write build errors.
		Stderr io.Writer
	}

	// RunOptions contains options for starting a container.
	RunOptions struct {
		// Image is the image to run.
		Image ImageTag
		// Remove automatically removes the container after exit.
		Remove bool
		// EnvPassthrough lists host variables forwarded by name ("-e NAME").
		EnvPassthrough []string
		// Volumes are bind mounts.
		Volumes []VolumeMount
		// SecurityOpts are passed as --security-opt values.
		SecurityOpts []string
		// Stdin, Stdout and Stderr are handed to the engine process. Use *os.File
		// values: the process is never waited on, so other readers and writers
		// would not be drained.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// RunHandle identifies a started engine process.
	RunHandle struct {
		// PID is the process ID of the engine client that runs the container.
		PID int
	}

	// EngineType identifies the container engine type.
	EngineType string

	// InvalidEngineTypeError is returned when an EngineType is not recognized.
	InvalidEngineTypeError struct {
		Value EngineType
	}

	// EngineNotAvailableError is returned when a container engine is not available.
	EngineNotAvailableError struct {
		Engine EngineType
		Reason string
	}
)

// String returns the string representation of the EngineType.
func (t EngineType) String() string { return string(t) }

// Validate returns an error if the EngineType is not podman or docker.
func (t EngineType) Validate() error {
	switch t {
	case EngineTypePodman, EngineTypeDocker:
		return nil
	default:
		return &InvalidEngineTypeError{Value: t}
	}
}

// Error implements the error interface.
func (e *InvalidEngineTypeError) Error() string {
	return fmt.Sprintf("invalid container engine %q (valid: podman, docker)", e.Value)
}

// Unwrap returns ErrInvalidEngineType for errors.Is() compatibility.
func (e *InvalidEngineTypeError) Unwrap() error { return ErrInvalidEngineType }

// Error implements the error interface.
func (e *EngineNotAvailableError) Error() string {
	return fmt.Sprintf("container engine '%s' is not available: %s", e.Engine, e.Reason)
}

// Unwrap returns ErrEngineNotAvailable for errors.Is() compatibility.
func (e *EngineNotAvailableError) Unwrap() error { return ErrEngineNotAvailable }

// NewEngine creates the requested container engine. It fails when the engine
// binary cannot be found on PATH or does not answer a version query; there is
// no fallback to another engine.
func NewEngine(engineType EngineType, opts ...BaseCLIEngineOption) (Engine, error) {
	if err := engineType.Validate(); err != nil {
		return nil, err
	}

	var engine interface {
		Engine
		BinaryPath() string
	}
	switch engineType {
	case EngineTypeDocker:
		engine = NewDockerEngine(opts...)
	default:
		engine = NewPodmanEngine(opts...)
	}

	if engine.BinaryPath() == "" {
		return nil, &EngineNotAvailableError{
			Engine: engineType,
			Reason: engineType.String() + " is not installed or not on PATH",
		}
	}
	if !engine.Available() {
		return nil, &EngineNotAvailableError{
			Engine: engineType,
			Reason: engine.BinaryPath() + " did not respond to a version query",
		}
	}

	return engine, nil
}

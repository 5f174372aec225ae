// SPDX-License-Identifier: MPL-2.0

// Package container provides a thin abstraction over container engine CLIs (Podman/Docker).
//
// The Engine interface exposes the two operations a launch needs, with deliberately
// different blocking behavior:
//
//   - Build runs "<engine> build" and waits for it to exit.
//   - Start runs "<engine> run" and returns as soon as the process is started; the
//     container is never waited on and outlives cancellation of the caller's context.
//
// PodmanEngine and DockerEngine both embed BaseCLIEngine for CLI argument
// construction and command execution. NewEngine selects exactly one engine and
// never falls back to the other.
package container

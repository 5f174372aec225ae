// SPDX-License-Identifier: MPL-2.0

// Package launcher writes a rendered build file, builds the image from it and
// starts the resulting container.
//
// A launch has two phases. The preparation phase (Prepare, then Build) is
// synchronous and blocking: its failures are returned as *WriteError or
// *BuildError. The start phase (Start) hands the container to the engine and
// returns as soon as the engine process is running; the container's own exit
// status is never observed and only a failure to start the process is
// reported, as *SpawnError.
package launcher

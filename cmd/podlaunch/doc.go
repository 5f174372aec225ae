// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the podlaunch CLI commands.
//
// The root command runs the whole pipeline: load the launch document, validate
// it, render the build file, then write, build and start it with the configured
// container engine. The render and validate subcommands stop after their stage
// and have no side effects.
package cmd

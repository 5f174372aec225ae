// SPDX-License-Identifier: MPL-2.0

// Package launchfile loads and validates the launch document.
//
// A launch document names a downloadable archive (url), its SHA-256 digest (hash),
// the program to run relative to the installation root (entry), and the system
// packages the image needs (pkgs). Loading is a two-step process:
//
//	raw, err := launchfile.Load(ctx, launchfile.Embedded())
//	cfg, err := launchfile.Validate(raw)
//
// Load only checks structure (all four fields present and well-typed) against the
// embedded #Launch CUE schema. Validate enforces the semantic rules: the URL must be
// absolute and the entry must be a relative path that stays inside the installation
// root. The hash and package list are passed through untouched.
//
// The embedded document is trusted. Documents from any other source should be
// validated with WithUntrustedSource, which additionally requires every value that
// ends up in the generated build script to be a single literal shell word.
package launchfile

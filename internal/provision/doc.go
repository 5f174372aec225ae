// SPDX-License-Identifier: MPL-2.0

// Package provision renders the container build file for a launch document.
//
// The generated Dockerfile always has the same shape: a fixed Fedora base image,
// one RUN step that downloads the archive, verifies its SHA-256 digest and unpacks
// it under /opt, one RUN step that installs the requested packages with dnf, and a
// CMD pointing at the entry below /opt:
//
//	cfg, _ := launchfile.Validate(raw)
//	dockerfile := provision.RenderDockerfile(cfg)
//
// Rendering is pure. Values are interpolated verbatim; callers that accept launch
// documents from outside the binary must validate them with
// launchfile.WithUntrustedSource first.
package provision

// SPDX-License-Identifier: MPL-2.0

package provision

import (
	"fmt"
	"path"
	"strings"

	"github.com/podlaunch/podlaunch/internal/launchfile"
)

const (
	// BaseImage is the image every generated Dockerfile starts from.
	BaseImage = "fedora"
	// ArchiveName is the file the downloaded archive is saved as during the build.
	ArchiveName = "1.tar.gz"
	// InstallRoot is where the archive is unpacked inside the image.
	InstallRoot = "/opt"
)

// RenderDockerfile creates the Dockerfile content for cfg.
// The result does not end with a newline. The URL is written as cfg.URL.String(),
// so it appears in parsed form: a lowercased scheme and escaped path.
func RenderDockerfile(cfg *launchfile.ValidatedConfiguration) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "FROM %s\n", BaseImage)

	// Download, verify and unpack in one layer so a digest mismatch fails the build
	// before anything is extracted. sha256sum --status prints nothing on success.
	fmt.Fprintf(&sb, "RUN curl -L -o %s %s && \\\n", ArchiveName, cfg.URL)
	fmt.Fprintf(&sb, "echo \"%s %s\" | sha256sum -c --status && \\\n", cfg.Hash, ArchiveName)
	fmt.Fprintf(&sb, "tar -xzf %s -C %s\n", ArchiveName, InstallRoot)

	sb.WriteString("RUN dnf in -y ")
	for _, pkg := range cfg.Pkgs {
		sb.WriteString(pkg)
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "CMD %s", EntrypointPath(cfg.Entry))

	return sb.String()
}

// EntrypointPath returns the absolute in-image path of entry.
func EntrypointPath(entry string) string {
	return path.Join(InstallRoot, entry)
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	LaunchDocumentParseFailedId Id = iota + 1
	InvalidURLId
	InvalidEntryId
	UnsafeValueId
	BuildFileWriteFailedId
	ImageBuildFailedId
	ContainerStartFailedId
	ContainerEngineNotFoundId
	ConfigLoadFailedId
	PermissionDeniedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
		extLinks []HttpLink // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue's Markdown with glamour using the given style
// ("dark", "light", "notty", "auto" or a JSON style path).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range slices.Concat(i.docLinks, i.extLinks) {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	launchDocumentParseFailedIssue = &Issue{
		id: LaunchDocumentParseFailedId,
		mdMsg: `
# Failed to parse the launch document!

The launch document could not be decoded into url, hash, entry and pkgs.

## Common issues:
- Invalid JSON, CUE or TOML syntax
- A missing required field (all four are required)
- A field of the wrong type (pkgs must be a list of strings)

## Things you can try:
- Check the error message above for the field path
- Validate the document without launching anything:
~~~
$ podlaunch validate --file launch.json
~~~

## Example launch document:
~~~json
{
  "url": "https://example.com/app.tar.gz",
  "hash": "<sha256 of the archive>",
  "entry": "app/bin/run.sh",
  "pkgs": ["git", "which"]
}
~~~`,
	}

	invalidURLIssue = &Issue{
		id: InvalidURLId,
		mdMsg: `
# Invalid download URL!

The ` + "`url`" + ` field must be an absolute URL, including its scheme.

## Things you can try:
- Use a full URL such as ` + "`https://example.com/app.tar.gz`" + `
- Relative references like ` + "`downloads/app.tar.gz`" + ` are not accepted`,
		extLinks: []HttpLink{"https://url.spec.whatwg.org/"},
	}

	invalidEntryIssue = &Issue{
		id: InvalidEntryId,
		mdMsg: `
# Invalid entry point!

The ` + "`entry`" + ` field must be a relative path that names a file inside the
unpacked archive. Being relative is not enough: after cleaning, the path must not
be empty or ` + "`.`" + ` and must not start with ` + "`..`" + `. It is resolved against
` + "`/opt`" + ` inside the image.

## Things you can try:
- Remove any leading ` + "`/`" + ` from the entry
- Make sure the entry does not climb out of the archive with ` + "`..`" + `
- List the archive to find the launcher script:
~~~
$ tar -tzf app.tar.gz | grep bin/
~~~`,
	}

	unsafeValueIssue = &Issue{
		id: UnsafeValueId,
		mdMsg: `
# Unsafe value in launch document!

Launch documents read with ` + "`--file`" + ` are checked before their values are
placed into the generated build file.

## Rules for external documents:
- ` + "`hash`" + ` must be a 64 character lowercase hex SHA-256 digest
- ` + "`url`" + `, ` + "`entry`" + ` and every package name must be a single plain shell word
  (no spaces, quotes, globs, redirections or substitutions)

## Things you can try:
- Compute the digest:
~~~
$ sha256sum app.tar.gz
~~~
- Remove shell metacharacters from the reported field`,
	}

	buildFileWriteFailedIssue = &Issue{
		id: BuildFileWriteFailedId,
		mdMsg: `
# Failed to write the build file!

The generated Dockerfile could not be written to the working directory.

## Things you can try:
- Check that the current directory is writable
- Check for a read-only ` + "`Dockerfile`" + ` left by a previous run
- Run podlaunch from a directory you own`,
	}

	imageBuildFailedIssue = &Issue{
		id: ImageBuildFailedId,
		mdMsg: `
# Image build failed!

The container engine exited with an error while building the image.

## Common causes:
- The archive download failed (network, proxy or a wrong URL)
- ` + "`sha256sum`" + ` reported a mismatch: the hash does not match the archive
- A package name is not available in the Fedora repositories

## Things you can try:
- Read the build output above for the failing step
- Preview the generated build file:
~~~
$ podlaunch render
~~~`,
	}

	containerStartFailedIssue = &Issue{
		id: ContainerStartFailedId,
		mdMsg: `
# Failed to start the container!

The image was built, but the container engine could not be started to run it.

## Things you can try:
- Check that the engine binary is still on your PATH
- Start it by hand to see the engine's own error:
~~~
$ podman run --rm -e DISPLAY -v /tmp/.X11-unix:/tmp/.X11-unix pycharm
~~~`,
	}

	containerEngineNotFoundIssue = &Issue{
		id: ContainerEngineNotFoundId,
		mdMsg: `
# Container engine not found!

podlaunch builds and runs the application with a container engine, but none was found.

## Supported container engines:
- **Podman** (the default)
- **Docker**

## Things you can try:
- Install Podman:
  - Linux: ` + "`sudo dnf install podman`" + ` or ` + "`sudo apt install podman`" + `
  - macOS: ` + "`brew install podman`" + `

- Configure your preferred engine in ~/.config/podlaunch/config.cue:
~~~cue
container_engine: "podman"  // or "docker"
~~~`,
		extLinks: []HttpLink{"https://podman.io/docs/installation"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the podlaunch configuration file.

## Configuration file locations:
- ` + "`$XDG_CONFIG_HOME/podlaunch/config.cue`" + ` (usually ~/.config/podlaunch/config.cue)
- ` + "`./config.cue`" + ` in the current directory

## Things you can try:
- Create a default configuration:
~~~
$ podlaunch config init
~~~

- Remove the config file to use defaults

## Example configuration:
~~~cue
container_engine: "podman"
image: "pycharm"
build_file: "Dockerfile"

ui: {
  verbose: false
}
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Things you can try:
- Check file/directory permissions
- For Docker, ensure you're in the docker group:
~~~
$ sudo usermod -aG docker $USER
~~~

- Use rootless containers with Podman`,
	}

	issues = map[Id]*Issue{
		launchDocumentParseFailedIssue.Id(): launchDocumentParseFailedIssue,
		invalidURLIssue.Id():                invalidURLIssue,
		invalidEntryIssue.Id():              invalidEntryIssue,
		unsafeValueIssue.Id():               unsafeValueIssue,
		buildFileWriteFailedIssue.Id():      buildFileWriteFailedIssue,
		imageBuildFailedIssue.Id():          imageBuildFailedIssue,
		containerStartFailedIssue.Id():      containerStartFailedIssue,
		containerEngineNotFoundIssue.Id():   containerEngineNotFoundIssue,
		configLoadFailedIssue.Id():          configLoadFailedIssue,
		permissionDeniedIssue.Id():          permissionDeniedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}

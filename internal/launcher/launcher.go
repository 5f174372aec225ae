// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/podlaunch/podlaunch/internal/container"
)

const (
	// DefaultBuildFile is the name of the generated build file.
	DefaultBuildFile = "Dockerfile"
	// DefaultImage is the tag given to the built image.
	DefaultImage container.ImageTag = "pycharm"

	// buildFilePerm is the permission of a newly created build file.
	buildFilePerm os.FileMode = 0o644

	displayEnv      = "DISPLAY"
	x11SocketDir    = "/tmp/.X11-unix"
	runSecurityOpts = "label=type:container_runtime_t"
)

type (
	// Option configures a Launcher.
	Option func(*Launcher)

	// Launcher runs the write, build and start steps against one container engine.
	Launcher struct {
		engine    container.Engine
		dir       string
		buildFile string
		image     container.ImageTag

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
	}
)

// WithDir sets the directory the build file is written to, which is also the
// build context. Defaults to the current directory.
func WithDir(dir string) Option {
	return func(l *Launcher) {
		l.dir = dir
	}
}

// WithBuildFile sets the build file name, relative to the directory.
func WithBuildFile(name string) Option {
	return func(l *Launcher) {
		l.buildFile = name
	}
}

// WithImage sets the image tag used for both build and run.
func WithImage(tag container.ImageTag) Option {
	return func(l *Launcher) {
		l.image = tag
	}
}

// WithStdio sets the streams handed to the engine. Defaults to the process's own.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// New creates a Launcher that drives the given engine.
func New(engine container.Engine, opts ...Option) *Launcher {
	l := &Launcher{
		engine:    engine,
		dir:       ".",
		buildFile: DefaultBuildFile,
		image:     DefaultImage,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// BuildFilePath returns the path the build file is written to.
func (l *Launcher) BuildFilePath() string {
	return filepath.Join(l.dir, l.buildFile)
}

// Prepare writes the rendered build file, replacing any existing file.
func (l *Launcher) Prepare(ctx context.Context, rendered string) error {
	path := l.BuildFilePath()
	if err := ctx.Err(); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	slog.Debug("writing build file", "path", path, "bytes", len(rendered))
	if err := os.WriteFile(path, []byte(rendered), buildFilePerm); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Build builds the image from the prepared build file and blocks until the
// engine exits.
func (l *Launcher) Build(ctx context.Context) error {
	opts := container.BuildOptions{
		ContextDir: container.HostFilesystemPath(l.dir),
		Tag:        l.image,
		Stdout:     l.stdout,
		Stderr:     l.stderr,
	}
	if l.buildFile != DefaultBuildFile {
		opts.Dockerfile = container.HostFilesystemPath(l.buildFile)
	}

	slog.Info("building image", "engine", l.engine.Name(), "image", l.image)
	if err := l.engine.Build(ctx, opts); err != nil {
		return &BuildError{Engine: l.engine.Name(), Image: string(l.image), Err: err}
	}
	return nil
}

// RunOptions returns the options used to start the container: removed on
// exit, with the host display forwarded.
func (l *Launcher) RunOptions() container.RunOptions {
	return container.RunOptions{
		Image:          l.image,
		Remove:         true,
		EnvPassthrough: []string{displayEnv},
		Volumes: []container.VolumeMount{
			{HostPath: x11SocketDir, ContainerPath: x11SocketDir},
		},
		SecurityOpts: []string{runSecurityOpts},
		Stdin:        l.stdin,
		Stdout:       l.stdout,
		Stderr:       l.stderr,
	}
}

// Start starts the container and returns without waiting for it.
func (l *Launcher) Start(ctx context.Context) (*container.RunHandle, error) {
	handle, err := l.engine.Start(ctx, l.RunOptions())
	if err != nil {
		return nil, &SpawnError{Engine: l.engine.Name(), Image: string(l.image), Err: err}
	}
	slog.Debug("container started", "engine", l.engine.Name(), "image", l.image, "pid", handle.PID)
	return handle, nil
}

// Launch runs Prepare, Build and Start in order, stopping at the first error.
func (l *Launcher) Launch(ctx context.Context, rendered string) (*container.RunHandle, error) {
	if err := l.Prepare(ctx, rendered); err != nil {
		return nil, err
	}
	if err := l.Build(ctx); err != nil {
		return nil, err
	}
	return l.Start(ctx)
}

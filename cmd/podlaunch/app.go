// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/podlaunch/podlaunch/internal/config"
	"github.com/podlaunch/podlaunch/internal/container"
)

type (
	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// EngineFactory returns the container engine selected by configuration.
	EngineFactory func(engine config.ContainerEngine) (container.Engine, error)

	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference.
	App struct {
		Config    ConfigProvider
		NewEngine EngineFactory
		workDir   string
		configDir string
		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Zero fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config    ConfigProvider
		NewEngine EngineFactory
		// WorkDir receives the build file and is the build context. Defaults to ".".
		WorkDir string
		// ConfigDir overrides the XDG config directory lookup.
		ConfigDir string
		Stdin     io.Reader
		Stdout    io.Writer
		Stderr    io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:    deps.Config,
		NewEngine: deps.NewEngine,
		workDir:   deps.WorkDir,
		configDir: deps.ConfigDir,
		stdin:     deps.Stdin,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.NewEngine == nil {
		app.NewEngine = defaultEngineFactory
	}
	if app.workDir == "" {
		app.workDir = "."
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// configOptions returns the load options for the given --config value.
func (a *App) configOptions(cfgFile string) config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: cfgFile,
		ConfigDirPath:  a.configDir,
		WorkDir:        a.workDir,
	}
}

func defaultEngineFactory(engine config.ContainerEngine) (container.Engine, error) {
	return container.NewEngine(container.EngineType(engine))
}

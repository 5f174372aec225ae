// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/podlaunch/podlaunch/internal/container"
	"github.com/podlaunch/podlaunch/internal/launcher"
)

// runLaunch runs the whole pipeline. Nothing is written or executed unless the
// launch document loads and validates.
func runLaunch(ctx context.Context, app *App, s *cliState) error {
	p, err := prepare(ctx, s.file)
	if err != nil {
		return s.fail(app, err)
	}

	engine, err := app.NewEngine(s.cfg.ContainerEngine)
	if err != nil {
		return s.fail(app, err)
	}

	l := launcher.New(engine,
		launcher.WithDir(app.workDir),
		launcher.WithBuildFile(string(s.cfg.BuildFile)),
		launcher.WithImage(container.ImageTag(s.cfg.Image)),
		launcher.WithStdio(app.stdin, app.stdout, app.stderr),
	)

	handle, err := l.Launch(ctx, p.rendered)
	if err != nil {
		return s.fail(app, err)
	}

	fmt.Fprintf(app.stderr, "%s Started %s with %s (pid %d)\n",
		SuccessStyle.Render("✓"), CmdStyle.Render(string(s.cfg.Image)), engine.Name(), handle.PID)
	return nil
}

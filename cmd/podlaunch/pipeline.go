// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"log/slog"

	"github.com/podlaunch/podlaunch/internal/launchfile"
	"github.com/podlaunch/podlaunch/internal/provision"
)

// prepared is the output of the load, validate and render stages.
type prepared struct {
	source   launchfile.Source
	config   *launchfile.ValidatedConfiguration
	rendered string
}

// launchSource returns the document source for the --file value. Only the
// embedded document is trusted; any other source gets the unsafe-value checks.
func launchSource(file string) (launchfile.Source, []launchfile.ValidateOption) {
	if file == "" {
		return launchfile.Embedded(), nil
	}
	return launchfile.FromFile(file), []launchfile.ValidateOption{launchfile.WithUntrustedSource()}
}

// prepare runs the load, validate and render stages. It has no side effects.
func prepare(ctx context.Context, file string) (*prepared, error) {
	src, opts := launchSource(file)

	slog.Debug("loading launch document", "source", src.Name(), "format", src.Format())
	raw, err := launchfile.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	slog.Debug("validating launch document", "untrusted", len(opts) > 0)
	cfg, err := launchfile.Validate(raw, opts...)
	if err != nil {
		return nil, err
	}

	slog.Debug("rendering build file", "packages", len(cfg.Pkgs))
	return &prepared{
		source:   src,
		config:   cfg,
		rendered: provision.RenderDockerfile(cfg),
	}, nil
}

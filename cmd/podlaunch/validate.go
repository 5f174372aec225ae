// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCommand(app *App, s *cliState) *cobra.Command {
	var checkEngine bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the launch document",
		Long: `Load and validate the launch document and print a summary of it.
Documents given with --file are also checked for values that are unsafe to
place into a Dockerfile.

With --engine the configured container engine is queried as well, and its
version is added to the summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := prepare(cmd.Context(), s.file)
			if err != nil {
				return s.fail(app, err)
			}

			var engineLine string
			if checkEngine {
				if engineLine, err = engineSummary(cmd.Context(), app, s); err != nil {
					return s.fail(app, err)
				}
			}

			printSummary(app.stdout, p, engineLine)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkEngine, "engine", false, "also check the container engine responds and report its version")

	return cmd
}

// engineSummary returns "<name> <version>" for the configured engine.
func engineSummary(ctx context.Context, app *App, s *cliState) (string, error) {
	engine, err := app.NewEngine(s.cfg.ContainerEngine)
	if err != nil {
		return "", err
	}
	version, err := engine.Version(ctx)
	if err != nil {
		return "", err
	}
	return engine.Name() + " " + version, nil
}

func printSummary(w io.Writer, p *prepared, engineLine string) {
	pkgs := SubtitleStyle.Render("(none)")
	if len(p.config.Pkgs) > 0 {
		pkgs = strings.Join(p.config.Pkgs, " ")
	}

	fmt.Fprintf(w, "%s %s is valid\n\n", SuccessStyle.Render("✓"), TitleStyle.Render(p.source.Name()))
	fmt.Fprintf(w, "%s %s\n", summaryKeyStyle.Render("url"), p.config.URL)
	fmt.Fprintf(w, "%s %s\n", summaryKeyStyle.Render("hash"), p.config.Hash)
	fmt.Fprintf(w, "%s %s\n", summaryKeyStyle.Render("entry"), p.config.Entry)
	fmt.Fprintf(w, "%s %s\n", summaryKeyStyle.Render("pkgs"), pkgs)
	if engineLine != "" {
		fmt.Fprintf(w, "%s %s\n", summaryKeyStyle.Render("engine"), engineLine)
	}
}

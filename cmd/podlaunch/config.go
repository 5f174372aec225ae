// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/podlaunch/podlaunch/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `podlaunch config` command tree.
func newConfigCommand(app *App, s *cliState) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage podlaunch configuration",
		Long: `Manage podlaunch configuration.

Configuration is read from $XDG_CONFIG_HOME/podlaunch/config.cue
(usually ~/.config/podlaunch/config.cue), then ./config.cue.
PODLAUNCH_* environment variables override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app, s)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(app, s)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(app.stdout, filepath.Join(userConfigDir(app), config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	return cfgCmd
}

// userConfigDir is the directory config init writes to.
func userConfigDir(app *App) string {
	if app.configDir != "" {
		return app.configDir
	}
	return config.ConfigDir()
}

func showConfig(ctx context.Context, app *App, s *cliState) error {
	loaded, err := config.LoadWithSource(ctx, app.configOptions(s.cfgFile))
	if err != nil {
		return s.fail(app, err)
	}
	cfg := loaded.Config

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	source := SubtitleStyle.Render("(using defaults)")
	if loaded.Path != "" {
		source = loaded.Path
	}
	fmt.Fprintf(app.stdout, "%s: %s\n\n", keyStyle.Render("Config file"), source)

	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("container_engine"), valueStyle.Render(cfg.ContainerEngine.String()))
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("image"), valueStyle.Render(string(cfg.Image)))
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("build_file"), valueStyle.Render(string(cfg.BuildFile)))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(app.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))

	return nil
}

func initConfig(app *App, s *cliState) error {
	path, created, err := config.CreateDefaultConfig(userConfigDir(app))
	if err != nil {
		return s.fail(app, err)
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

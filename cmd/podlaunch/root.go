// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/podlaunch/podlaunch/internal/config"
	"github.com/podlaunch/podlaunch/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// cliState holds flag values and the configuration resolved before a command runs.
type cliState struct {
	verbose bool
	cfgFile string
	file    string
	cfg     *config.Config
}

// NewRootCommand builds the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	state := &cliState{cfg: config.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "podlaunch",
		Short: "Build and run a desktop application in a container",
		Long: TitleStyle.Render("podlaunch") + SubtitleStyle.Render(" - build and run a desktop application in a container") + `

podlaunch reads a launch document (download URL, SHA-256 hash, entry point and
packages), renders a Dockerfile from it, builds the image and starts the
container with the host X11 display forwarded.

` + SubtitleStyle.Render("Examples:") + `
  podlaunch                       Launch the built-in application
  podlaunch --file launch.toml    Launch from an external document
  podlaunch render                Print the generated Dockerfile
  podlaunch validate              Check the launch document
  podlaunch config show           Show current configuration`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			state.load(cmd.Context(), app)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLaunch(cmd.Context(), app, state)
		},
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&state.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/podlaunch/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&state.file, "file", "f", "", "launch document to use instead of the built-in one (.json, .cue or .toml)")

	rootCmd.AddCommand(newRenderCommand(app, state))
	rootCmd.AddCommand(newValidateCommand(app, state))
	rootCmd.AddCommand(newConfigCommand(app, state))

	return rootCmd
}

// load resolves configuration and installs the logger. A configuration that
// fails to load is reported and replaced by the defaults.
func (s *cliState) load(ctx context.Context, app *App) {
	cfg, err := app.Config.Load(ctx, app.configOptions(s.cfgFile))
	if err != nil {
		fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, s.verbose))
		cfg = config.DefaultConfig()
	}
	s.cfg = cfg

	// Apply verbose from config if not set via flag
	if !s.verbose {
		s.verbose = cfg.UI.Verbose
	}

	slog.SetDefault(newLogger(app.stderr, s.verbose))
}

// fail wraps a command error for display and exit-code selection.
func (s *cliState) fail(app *App, err error) error {
	svcErr := newServiceError(err, classifyError(err))
	renderServiceError(app.stderr, svcErr, s.verbose, s.cfg.UI.ColorScheme)
	return &ExitError{Code: exitCodeFor(err), Err: svcErr}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(NewApp(Dependencies{})),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

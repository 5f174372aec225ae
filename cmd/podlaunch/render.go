// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCommand(app *App, s *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the generated Dockerfile",
		Long: `Load and validate the launch document, then print the Dockerfile that
would be written. Nothing is written and no container engine is run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := prepare(cmd.Context(), s.file)
			if err != nil {
				return s.fail(app, err)
			}
			fmt.Fprintln(app.stdout, p.rendered)
			return nil
		},
	}
}

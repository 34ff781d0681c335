package cmd

import (
	"github.com/bnema/vpnc/internal/adapters/render/screen"
	"github.com/spf13/cobra"
)

func newUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.openSession(sessionOptions{clipboard: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer s.Close()

			return screen.Run(cmd.Context(), s.controller, screen.RunOptions{
				Input:     cmd.InOrStdin(),
				Output:    cmd.OutOrStdout(),
				AltScreen: true,
			})
		},
	}
}
